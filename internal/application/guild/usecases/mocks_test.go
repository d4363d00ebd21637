package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/guild"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc              func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
	FindOpenByChannelFunc func(ctx context.Context, channelID string) (*ticket.Ticket, error)
	FindByChannelFunc     func(ctx context.Context, channelID string) (*ticket.Ticket, error)
	FindByTicketIDFunc    func(ctx context.Context, ticketID string) (*ticket.Ticket, error)
	ListByGuildFunc       func(ctx context.Context, guildID string) ([]*ticket.Ticket, error)
	DeleteByGuildFunc     func(ctx context.Context, guildID string) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindOpenByChannel(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	if m.FindOpenByChannelFunc != nil {
		return m.FindOpenByChannelFunc(ctx, channelID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByChannel(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	if m.FindByChannelFunc != nil {
		return m.FindByChannelFunc(ctx, channelID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByTicketID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByGuild(ctx context.Context, guildID string) ([]*ticket.Ticket, error) {
	if m.ListByGuildFunc != nil {
		return m.ListByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockTicketRepository) DeleteByGuild(ctx context.Context, guildID string) error {
	if m.DeleteByGuildFunc != nil {
		return m.DeleteByGuildFunc(ctx, guildID)
	}
	return nil
}

type mockMessageRepository struct {
	SaveFunc             func(ctx context.Context, msg *ticket.TranscriptMessage) error
	ListByChannelFunc    func(ctx context.Context, channelID string) ([]*ticket.TranscriptMessage, error)
	DeleteByChannelsFunc func(ctx context.Context, channelIDs []string) error
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *ticket.TranscriptMessage) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByChannel(ctx context.Context, channelID string) ([]*ticket.TranscriptMessage, error) {
	if m.ListByChannelFunc != nil {
		return m.ListByChannelFunc(ctx, channelID)
	}
	return nil, nil
}

func (m *mockMessageRepository) DeleteByChannels(ctx context.Context, channelIDs []string) error {
	if m.DeleteByChannelsFunc != nil {
		return m.DeleteByChannelsFunc(ctx, channelIDs)
	}
	return nil
}

type mockDeletionRepository struct {
	SaveFunc             func(ctx context.Context, d *ticket.PendingDeletion) error
	ListDueFunc          func(ctx context.Context, now time.Time) ([]*ticket.PendingDeletion, error)
	DeleteFunc           func(ctx context.Context, dbID uint) error
	DeleteByChannelsFunc func(ctx context.Context, channelIDs []string) error
}

func (m *mockDeletionRepository) Save(ctx context.Context, d *ticket.PendingDeletion) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDeletionRepository) ListDue(ctx context.Context, now time.Time) ([]*ticket.PendingDeletion, error) {
	if m.ListDueFunc != nil {
		return m.ListDueFunc(ctx, now)
	}
	return nil, nil
}

func (m *mockDeletionRepository) Delete(ctx context.Context, dbID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, dbID)
	}
	return nil
}

func (m *mockDeletionRepository) DeleteByChannels(ctx context.Context, channelIDs []string) error {
	if m.DeleteByChannelsFunc != nil {
		return m.DeleteByChannelsFunc(ctx, channelIDs)
	}
	return nil
}

type mockSettingsRepository struct {
	SaveFunc          func(ctx context.Context, s *guild.Settings) error
	UpdateFunc        func(ctx context.Context, s *guild.Settings) error
	FindByGuildFunc   func(ctx context.Context, guildID string) (*guild.Settings, error)
	DeleteByGuildFunc func(ctx context.Context, guildID string) error
}

func (m *mockSettingsRepository) Save(ctx context.Context, s *guild.Settings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingsRepository) Update(ctx context.Context, s *guild.Settings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingsRepository) FindByGuild(ctx context.Context, guildID string) (*guild.Settings, error) {
	if m.FindByGuildFunc != nil {
		return m.FindByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockSettingsRepository) DeleteByGuild(ctx context.Context, guildID string) error {
	if m.DeleteByGuildFunc != nil {
		return m.DeleteByGuildFunc(ctx, guildID)
	}
	return nil
}

type mockGateway struct {
	BotUserIDFunc           func() string
	FetchChannelFunc        func(ctx context.Context, channelID string) (*platform.Channel, error)
	FetchRoleFunc           func(ctx context.Context, guildID, roleID string) (*platform.Role, error)
	CreateTicketChannelFunc func(ctx context.Context, params platform.CreateTicketChannelParams) (*platform.Channel, error)
	RenameChannelFunc       func(ctx context.Context, channelID, name string) error
	DeleteChannelFunc       func(ctx context.Context, channelID string) error
	SendMessageFunc         func(ctx context.Context, channelID, content string) (string, error)
	SendFileFunc            func(ctx context.Context, channelID, caption, filename string, data []byte) error
	AddReactionFunc         func(ctx context.Context, channelID, messageID, emoji string) error
	RevokeChatFunc          func(ctx context.Context, channelID, userID string) error
}

func (m *mockGateway) BotUserID() string {
	if m.BotUserIDFunc != nil {
		return m.BotUserIDFunc()
	}
	return "bot-user"
}

func (m *mockGateway) FetchChannel(ctx context.Context, channelID string) (*platform.Channel, error) {
	if m.FetchChannelFunc != nil {
		return m.FetchChannelFunc(ctx, channelID)
	}
	return &platform.Channel{ID: channelID}, nil
}

func (m *mockGateway) FetchRole(ctx context.Context, guildID, roleID string) (*platform.Role, error) {
	if m.FetchRoleFunc != nil {
		return m.FetchRoleFunc(ctx, guildID, roleID)
	}
	return &platform.Role{ID: roleID}, nil
}

func (m *mockGateway) CreateTicketChannel(ctx context.Context, params platform.CreateTicketChannelParams) (*platform.Channel, error) {
	if m.CreateTicketChannelFunc != nil {
		return m.CreateTicketChannelFunc(ctx, params)
	}
	return &platform.Channel{ID: "new-channel", GuildID: params.GuildID, Name: params.Name, ParentID: params.ParentID}, nil
}

func (m *mockGateway) RenameChannel(ctx context.Context, channelID, name string) error {
	if m.RenameChannelFunc != nil {
		return m.RenameChannelFunc(ctx, channelID, name)
	}
	return nil
}

func (m *mockGateway) DeleteChannel(ctx context.Context, channelID string) error {
	if m.DeleteChannelFunc != nil {
		return m.DeleteChannelFunc(ctx, channelID)
	}
	return nil
}

func (m *mockGateway) SendMessage(ctx context.Context, channelID, content string) (string, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, channelID, content)
	}
	return "message-id", nil
}

func (m *mockGateway) SendFile(ctx context.Context, channelID, caption, filename string, data []byte) error {
	if m.SendFileFunc != nil {
		return m.SendFileFunc(ctx, channelID, caption, filename, data)
	}
	return nil
}

func (m *mockGateway) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	if m.AddReactionFunc != nil {
		return m.AddReactionFunc(ctx, channelID, messageID, emoji)
	}
	return nil
}

func (m *mockGateway) RevokeChat(ctx context.Context, channelID, userID string) error {
	if m.RevokeChatFunc != nil {
		return m.RevokeChatFunc(ctx, channelID, userID)
	}
	return nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
