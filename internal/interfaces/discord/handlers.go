package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	guilduc "helpdesk/internal/application/guild/usecases"
	ticketuc "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// handlerTimeout bounds every gateway event end to end, including the
// Discord API calls the usecases make.
const handlerTimeout = 30 * time.Second

const msgSomethingWentWrong = "Something went wrong, please try again later."

// EventHandlers routes gateway events into the application usecases. One
// instance is registered on the session for the bot's lifetime.
type EventHandlers struct {
	openTicket        ticketuc.OpenTicketExecutor
	captureMessage    ticketuc.CaptureMessageExecutor
	requestClose      ticketuc.RequestCloseExecutor
	recordRating      ticketuc.RecordRatingExecutor
	registerGuild     guilduc.RegisterGuildExecutor
	removeGuild       guilduc.RemoveGuildExecutor
	setIntakeChannel  guilduc.SetIntakeChannelExecutor
	setArchiveChannel guilduc.SetArchiveChannelExecutor
	setModeratorRole  guilduc.SetModeratorRoleExecutor
	txManager         *db.TransactionManager
	logger            logger.Interface
}

func NewEventHandlers(
	openTicket ticketuc.OpenTicketExecutor,
	captureMessage ticketuc.CaptureMessageExecutor,
	requestClose ticketuc.RequestCloseExecutor,
	recordRating ticketuc.RecordRatingExecutor,
	registerGuild guilduc.RegisterGuildExecutor,
	removeGuild guilduc.RemoveGuildExecutor,
	setIntakeChannel guilduc.SetIntakeChannelExecutor,
	setArchiveChannel guilduc.SetArchiveChannelExecutor,
	setModeratorRole guilduc.SetModeratorRoleExecutor,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *EventHandlers {
	return &EventHandlers{
		openTicket:        openTicket,
		captureMessage:    captureMessage,
		requestClose:      requestClose,
		recordRating:      recordRating,
		registerGuild:     registerGuild,
		removeGuild:       removeGuild,
		setIntakeChannel:  setIntakeChannel,
		setArchiveChannel: setArchiveChannel,
		setModeratorRole:  setModeratorRole,
		txManager:         txManager,
		logger:            logger,
	}
}

func (h *EventHandlers) OnReady(s *discordgo.Session, r *discordgo.Ready) {
	h.logger.Infow("logged in", "username", r.User.Username, "user_id", r.User.ID)
}

func (h *EventHandlers) OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return
	}

	goroutine.SafeCall(h.logger, "discord.interaction_create", func() {
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		data := i.ApplicationCommandData()
		switch data.Name {
		case cmdTicket:
			h.handleTicket(ctx, s, i, data)
		case cmdFinish:
			h.handleFinish(ctx, s, i)
		case cmdSetupTicket:
			h.handleSetupTicketChannel(ctx, s, i, data)
		case cmdSetupFileChannel:
			h.handleSetupFileChannel(ctx, s, i, data)
		case cmdSetupModerator:
			h.handleSetupModeratorRole(ctx, s, i, data)
		}
	})
}

func (h *EventHandlers) handleTicket(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	result, err := h.openTicket.Execute(ctx, ticketuc.OpenTicketCommand{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		UserID:    i.Member.User.ID,
		Username:  i.Member.User.Username,
		Body:      optionString(data, optMessage),
	})
	if err != nil {
		h.respond(s, i, errorReply(err))
		return
	}

	h.respond(s, i, fmt.Sprintf("Your ticket was created successfully at: <#%s>", result.ChannelID))
}

func (h *EventHandlers) handleFinish(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if _, err := h.requestClose.Execute(ctx, ticketuc.RequestCloseCommand{ChannelID: i.ChannelID}); err != nil {
		h.respond(s, i, errorReply(err))
		return
	}

	h.respond(s, i, "Ticket finished successfully.")
}

func (h *EventHandlers) handleSetupTicketChannel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	result, err := h.setIntakeChannel.Execute(ctx, guilduc.SetIntakeChannelCommand{
		GuildID:   i.GuildID,
		GuildName: h.guildName(s, i.GuildID),
		ChannelID: optionString(data, optChannelID),
	})
	if err != nil {
		h.respond(s, i, errorReply(err))
		return
	}

	h.respond(s, i, fmt.Sprintf("Success, bot is ready to receive tickets on channel <#%s>", result.ChannelID))
}

func (h *EventHandlers) handleSetupFileChannel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	result, err := h.setArchiveChannel.Execute(ctx, guilduc.SetArchiveChannelCommand{
		GuildID:   i.GuildID,
		GuildName: h.guildName(s, i.GuildID),
		ChannelID: optionString(data, optChannelID),
	})
	if err != nil {
		h.respond(s, i, errorReply(err))
		return
	}

	h.respond(s, i, fmt.Sprintf("Success, bot is ready to send files on channel <#%s>", result.ChannelID))
}

func (h *EventHandlers) handleSetupModeratorRole(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	result, err := h.setModeratorRole.Execute(ctx, guilduc.SetModeratorRoleCommand{
		GuildID:   i.GuildID,
		GuildName: h.guildName(s, i.GuildID),
		RoleRef:   optionString(data, optRole),
	})
	if err != nil {
		h.respond(s, i, errorReply(err))
		return
	}

	h.respond(s, i, fmt.Sprintf("Success, now <@&%s> are able to manage ticket channels", result.RoleID))
}

// OnMessageCreate records every guild message for the transcript, bot
// authors included: the opening ticket body is posted by the bot itself.
func (h *EventHandlers) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.GuildID == "" {
		return
	}

	goroutine.SafeCall(h.logger, "discord.message_create", func() {
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		_, err := h.captureMessage.Execute(ctx, ticketuc.CaptureMessageCommand{
			ChannelID:  m.ChannelID,
			AuthorID:   m.Author.ID,
			AuthorName: m.Author.Username,
			Content:    m.Content,
		})
		if err != nil {
			h.logger.Errorw("failed to capture message", "channel_id", m.ChannelID, "error", err)
		}
	})
}

func (h *EventHandlers) OnMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" {
		return
	}
	if r.UserID == h.botUserID(s) {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}

	goroutine.SafeCall(h.logger, "discord.message_reaction_add", func() {
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		_, err := h.recordRating.Execute(ctx, ticketuc.RecordRatingCommand{
			GuildID:   r.GuildID,
			ChannelID: r.ChannelID,
			UserID:    r.UserID,
			Emoji:     r.Emoji.Name,
		})
		if err != nil {
			h.logger.Errorw("failed to record rating", "channel_id", r.ChannelID, "error", err)
		}
	})
}

func (h *EventHandlers) OnGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	goroutine.SafeCall(h.logger, "discord.guild_create", func() {
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		result, err := h.registerGuild.Execute(ctx, guilduc.RegisterGuildCommand{
			GuildID:         g.ID,
			GuildName:       g.Name,
			SystemChannelID: g.SystemChannelID,
		})
		if err != nil {
			h.logger.Errorw("failed to register guild", "guild_id", g.ID, "error", err)
			return
		}
		if result.AlreadyRegistered {
			h.logger.Debugw("guild already registered", "guild_id", g.ID)
		}
	})
}

func (h *EventHandlers) OnGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	// Unavailable means an outage, not a removal. The guild's data stays.
	if g.Unavailable {
		return
	}

	goroutine.SafeCall(h.logger, "discord.guild_delete", func() {
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		err := h.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			_, err := h.removeGuild.Execute(txCtx, guilduc.RemoveGuildCommand{GuildID: g.ID})
			return err
		})
		if err != nil {
			h.logger.Errorw("failed to remove guild data", "guild_id", g.ID, "error", err)
		}
	})
}

func (h *EventHandlers) respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		h.logger.Errorw("failed to respond to interaction", "error", err)
	}
}

func (h *EventHandlers) guildName(s *discordgo.Session, guildID string) string {
	if g, err := s.State.Guild(guildID); err == nil {
		return g.Name
	}
	return ""
}

func (h *EventHandlers) botUserID(s *discordgo.Session) string {
	if s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}

// errorReply resolves the text sent back to the invoking user. Rejections
// from the usecases carry the exact reply; anything else surfaces as a
// generic failure.
func errorReply(err error) string {
	if errors.IsUserFacing(err) {
		if appErr, ok := errors.GetAppError(err); ok {
			return appErr.Message
		}
	}
	return msgSomethingWentWrong
}

func optionString(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}
