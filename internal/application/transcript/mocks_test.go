package transcript

import (
	"context"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/guild"
	"helpdesk/internal/shared/logger"
)

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
	return &platform.Channel{ID: "new-channel"}, nil
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

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
