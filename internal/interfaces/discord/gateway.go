package discord

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const ticketChannelPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory

// Gateway implements platform.Gateway on top of a discordgo session.
type Gateway struct {
	session *discordgo.Session
	logger  logger.Interface
}

var _ platform.Gateway = (*Gateway)(nil)

func NewGateway(session *discordgo.Session, logger logger.Interface) *Gateway {
	return &Gateway{
		session: session,
		logger:  logger,
	}
}

func (g *Gateway) BotUserID() string {
	if g.session.State == nil || g.session.State.User == nil {
		return ""
	}
	return g.session.State.User.ID
}

func (g *Gateway) FetchChannel(ctx context.Context, channelID string) (*platform.Channel, error) {
	ch, err := g.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		if isErrCode(err, discordgo.ErrCodeUnknownChannel) {
			return nil, errors.NewNotFoundError("channel not found", channelID)
		}
		return nil, errors.NewPlatformError("failed to fetch channel", err.Error())
	}

	return &platform.Channel{
		ID:       ch.ID,
		GuildID:  ch.GuildID,
		Name:     ch.Name,
		ParentID: ch.ParentID,
	}, nil
}

func (g *Gateway) FetchRole(ctx context.Context, guildID, roleID string) (*platform.Role, error) {
	roles, err := g.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.NewPlatformError("failed to fetch guild roles", err.Error())
	}

	for _, role := range roles {
		if role.ID == roleID {
			return &platform.Role{ID: role.ID, Name: role.Name}, nil
		}
	}

	return nil, errors.NewNotFoundError("role not found", roleID)
}

func (g *Gateway) CreateTicketChannel(ctx context.Context, params platform.CreateTicketChannelParams) (*platform.Channel, error) {
	overwrites := []*discordgo.PermissionOverwrite{
		{
			// The everyone role shares the guild's ID.
			ID:   params.GuildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    params.RequesterID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketChannelPermissions,
		},
	}

	if botID := g.BotUserID(); botID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    botID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketChannelPermissions,
		})
	}

	if params.ModeratorRoleID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    params.ModeratorRoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: ticketChannelPermissions,
		})
	}

	ch, err := g.session.GuildChannelCreateComplex(params.GuildID, discordgo.GuildChannelCreateData{
		Name:                 params.Name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             params.ParentID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.NewPlatformError("failed to create ticket channel", err.Error())
	}

	return &platform.Channel{
		ID:       ch.ID,
		GuildID:  ch.GuildID,
		Name:     ch.Name,
		ParentID: ch.ParentID,
	}, nil
}

func (g *Gateway) RenameChannel(ctx context.Context, channelID, name string) error {
	_, err := g.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx))
	if err != nil {
		if isErrCode(err, discordgo.ErrCodeUnknownChannel) {
			return errors.NewNotFoundError("unknown channel", channelID)
		}
		return errors.NewPlatformError("failed to rename channel", err.Error())
	}
	return nil
}

func (g *Gateway) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := g.session.ChannelDelete(channelID, discordgo.WithContext(ctx))
	if err != nil {
		if isErrCode(err, discordgo.ErrCodeUnknownChannel) {
			return errors.NewNotFoundError("unknown channel", channelID)
		}
		return errors.NewPlatformError("failed to delete channel", err.Error())
	}
	return nil
}

func (g *Gateway) SendMessage(ctx context.Context, channelID, content string) (string, error) {
	msg, err := g.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return "", errors.NewPlatformError("failed to send message", err.Error())
	}
	return msg.ID, nil
}

func (g *Gateway) SendFile(ctx context.Context, channelID, caption, filename string, data []byte) error {
	_, err := g.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: caption,
		Files: []*discordgo.File{
			{
				Name:        filename,
				ContentType: "text/html",
				Reader:      bytes.NewReader(data),
			},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return errors.NewPlatformError("failed to send file", err.Error())
	}
	return nil
}

func (g *Gateway) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	err := g.session.MessageReactionAdd(channelID, messageID, emoji, discordgo.WithContext(ctx))
	if err != nil {
		return errors.NewPlatformError("failed to add reaction", err.Error())
	}
	return nil
}

func (g *Gateway) RevokeChat(ctx context.Context, channelID, userID string) error {
	err := g.session.ChannelPermissionSet(
		channelID,
		userID,
		discordgo.PermissionOverwriteTypeMember,
		discordgo.PermissionViewChannel|discordgo.PermissionReadMessageHistory,
		discordgo.PermissionSendMessages|discordgo.PermissionAddReactions,
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return errors.NewPlatformError(
			fmt.Sprintf("failed to revoke chat for user %s", userID), err.Error())
	}
	return nil
}

// isErrCode reports whether err is a Discord REST error with the given
// JSON error code.
func isErrCode(err error, code int) bool {
	var restErr *discordgo.RESTError
	if stderrors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == code
	}
	return false
}
