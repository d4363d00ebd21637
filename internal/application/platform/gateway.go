// Package platform defines the port to the chat platform. The lifecycle
// usecases depend on this interface; the Discord implementation lives in
// internal/interfaces/discord.
package platform

import "context"

// Channel is the subset of platform channel state the bot cares about.
type Channel struct {
	ID       string
	GuildID  string
	Name     string
	ParentID string // category the channel sits under, empty at top level
}

// Role is the subset of platform role state the bot cares about.
type Role struct {
	ID   string
	Name string
}

// CreateTicketChannelParams describes a private ticket channel to provision:
// hidden from the everyone role, visible and writable for the requester, the
// bot itself, and the guild's moderator role.
type CreateTicketChannelParams struct {
	GuildID         string
	ParentID        string
	Name            string
	RequesterID     string
	ModeratorRoleID string
}

// Gateway is the narrow surface of the chat platform the lifecycle needs.
// Implementations return shared/errors AppErrors: not-found for unresolvable
// channels/roles, platform errors for API failures.
type Gateway interface {
	// BotUserID returns the bot's own user ID, used in permission grants.
	BotUserID() string

	FetchChannel(ctx context.Context, channelID string) (*Channel, error)
	FetchRole(ctx context.Context, guildID, roleID string) (*Role, error)

	CreateTicketChannel(ctx context.Context, params CreateTicketChannelParams) (*Channel, error)
	RenameChannel(ctx context.Context, channelID, name string) error
	DeleteChannel(ctx context.Context, channelID string) error

	SendMessage(ctx context.Context, channelID, content string) (messageID string, err error)
	SendFile(ctx context.Context, channelID, caption, filename string, data []byte) error
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error

	// RevokeChat denies the user send-message and add-reaction permissions on
	// the channel. Viewing stays allowed.
	RevokeChat(ctx context.Context, channelID, userID string) error
}
