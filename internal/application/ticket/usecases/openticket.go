package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/guild"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const (
	msgIntakeNotConfigured    = "You need to set up a ticket channel to create new tickets, use /setup_ticket_channel to configure it."
	msgModeratorNotConfigured = "You need to set up a moderator role to manage tickets, use /setup_moderator_role to configure it."
)

type OpenTicketCommand struct {
	GuildID   string
	ChannelID string // channel the command was invoked in
	UserID    string
	Username  string
	Body      string // the ticket message supplied with the command
}

type OpenTicketResult struct {
	TicketID  string
	ChannelID string // the provisioned ticket channel
}

// OpenTicketUseCase provisions a private ticket channel and persists the
// ticket record. Preconditions are checked in order; each failure is a
// terminal, user-visible rejection that leaves the registry unchanged.
type OpenTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	settingsRepo guild.SettingsRepository
	gateway      platform.Gateway
	logger       logger.Interface
}

func NewOpenTicketUseCase(
	ticketRepo ticket.TicketRepository,
	settingsRepo guild.SettingsRepository,
	gateway platform.Gateway,
	logger logger.Interface,
) *OpenTicketUseCase {
	return &OpenTicketUseCase{
		ticketRepo:   ticketRepo,
		settingsRepo: settingsRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (uc *OpenTicketUseCase) Execute(ctx context.Context, cmd OpenTicketCommand) (*OpenTicketResult, error) {
	uc.logger.Infow("executing open ticket use case", "guild_id", cmd.GuildID, "user_id", cmd.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid open ticket command", "error", err)
		return nil, err
	}

	settings, err := uc.settingsRepo.FindByGuild(ctx, cmd.GuildID)
	if err != nil {
		// No settings row means no setup has happened yet; same instruction
		// as a missing intake channel.
		if errors.IsType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewConfigurationError(msgIntakeNotConfigured)
		}
		uc.logger.Errorw("failed to load guild settings", "guild_id", cmd.GuildID, "error", err)
		return nil, errors.NewInternalError("failed to load guild settings")
	}

	if !settings.HasIntakeChannel() {
		return nil, errors.NewConfigurationError(msgIntakeNotConfigured)
	}
	if !settings.HasModeratorRole() {
		return nil, errors.NewConfigurationError(msgModeratorNotConfigured)
	}
	if cmd.ChannelID != settings.IntakeChannelID() {
		return nil, errors.NewLocationError(
			fmt.Sprintf("Ticket creation is only available on <#%s>", settings.IntakeChannelID()))
	}

	// The new channel is provisioned under the intake channel's category.
	intakeChannel, err := uc.gateway.FetchChannel(ctx, cmd.ChannelID)
	if err != nil {
		uc.logger.Errorw("failed to fetch intake channel", "channel_id", cmd.ChannelID, "error", err)
		return nil, errors.NewPlatformError("failed to create your ticket, please try again later")
	}

	newTicket, err := ticket.NewTicket(cmd.UserID, cmd.Username, cmd.GuildID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	channel, err := uc.gateway.CreateTicketChannel(ctx, platform.CreateTicketChannelParams{
		GuildID:         cmd.GuildID,
		ParentID:        intakeChannel.ParentID,
		Name:            newTicket.ChannelName(),
		RequesterID:     cmd.UserID,
		ModeratorRoleID: settings.ModeratorRoleID(),
	})
	if err != nil {
		uc.logger.Errorw("failed to provision ticket channel",
			"guild_id", cmd.GuildID, "ticket_id", newTicket.TicketID(), "error", err)
		return nil, errors.NewPlatformError("failed to create your ticket, please try again later")
	}

	if err := newTicket.BindChannel(channel.ID); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	// The channel is already live at this point; a failed save leaves it
	// without a ticket row. Accepted inconsistency, not rolled back.
	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket",
			"ticket_id", newTicket.TicketID(), "channel_id", channel.ID, "error", err)
		return nil, errors.NewInternalError("failed to save your ticket")
	}

	body := fmt.Sprintf("Ticket created by <@%s>\n\n**message**:\n%s", cmd.UserID, cmd.Body)
	if _, err := uc.gateway.SendMessage(ctx, channel.ID, body); err != nil {
		uc.logger.Errorw("failed to post ticket body",
			"ticket_id", newTicket.TicketID(), "channel_id", channel.ID, "error", err)
		return nil, errors.NewPlatformError("your ticket was created but the opening message could not be posted")
	}

	uc.logger.Infow("ticket opened",
		"ticket_id", newTicket.TicketID(), "channel_id", channel.ID, "guild_id", cmd.GuildID)

	return &OpenTicketResult{
		TicketID:  newTicket.TicketID(),
		ChannelID: channel.ID,
	}, nil
}

func (uc *OpenTicketUseCase) validateCommand(cmd OpenTicketCommand) error {
	if cmd.GuildID == "" {
		return errors.NewValidationError("guild ID is required")
	}
	if cmd.ChannelID == "" {
		return errors.NewValidationError("channel ID is required")
	}
	if cmd.UserID == "" {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.Username == "" {
		return errors.NewValidationError("username is required")
	}
	if cmd.Body == "" {
		return errors.NewValidationError("ticket message is required")
	}
	return nil
}
