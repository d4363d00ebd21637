package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/guild"
	"helpdesk/internal/shared/errors"
)

func existingSettings(t *testing.T) *guild.Settings {
	t.Helper()
	s, err := guild.NewSettings("guild-1", "Test Guild")
	require.NoError(t, err)
	return s
}

func TestSetIntakeChannelUseCase_Execute_Success(t *testing.T) {
	settings := existingSettings(t)
	var updated *guild.Settings

	mockSettings := &mockSettingsRepository{
		FindByGuildFunc: func(ctx context.Context, guildID string) (*guild.Settings, error) {
			return settings, nil
		},
		UpdateFunc: func(ctx context.Context, s *guild.Settings) error {
			updated = s
			return nil
		},
	}
	gateway := &mockGateway{
		FetchChannelFunc: func(ctx context.Context, channelID string) (*platform.Channel, error) {
			return &platform.Channel{ID: channelID, GuildID: "guild-1", Name: "support"}, nil
		},
	}

	useCase := NewSetIntakeChannelUseCase(mockSettings, gateway, &mockLogger{})
	result, err := useCase.Execute(context.Background(), SetIntakeChannelCommand{
		GuildID:   "guild-1",
		GuildName: "Test Guild",
		ChannelID: "intake-1",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "intake-1", result.ChannelID)

	require.NotNil(t, updated)
	assert.Equal(t, "intake-1", updated.IntakeChannelID())
}

func TestSetIntakeChannelUseCase_Execute_OverwritesPriorValue(t *testing.T) {
	settings := existingSettings(t)
	require.NoError(t, settings.SetIntakeChannel("old-intake"))

	mockSettings := &mockSettingsRepository{
		FindByGuildFunc: func(ctx context.Context, guildID string) (*guild.Settings, error) {
			return settings, nil
		},
	}
	gateway := &mockGateway{
		FetchChannelFunc: func(ctx context.Context, channelID string) (*platform.Channel, error) {
			return &platform.Channel{ID: channelID, GuildID: "guild-1"}, nil
		},
	}

	useCase := NewSetIntakeChannelUseCase(mockSettings, gateway, &mockLogger{})
	_, err := useCase.Execute(context.Background(), SetIntakeChannelCommand{
		GuildID:   "guild-1",
		ChannelID: "new-intake",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-intake", settings.IntakeChannelID())
}

func TestSetIntakeChannelUseCase_Execute_UnresolvableChannelKeepsPriorValue(t *testing.T) {
	settings := existingSettings(t)
	require.NoError(t, settings.SetIntakeChannel("old-intake"))

	updated := false
	mockSettings := &mockSettingsRepository{
		FindByGuildFunc: func(ctx context.Context, guildID string) (*guild.Settings, error) {
			return settings, nil
		},
		UpdateFunc: func(ctx context.Context, s *guild.Settings) error {
			updated = true
			return nil
		},
	}
	gateway := &mockGateway{
		FetchChannelFunc: func(ctx context.Context, channelID string) (*platform.Channel, error) {
			return nil, errors.NewNotFoundError("unknown channel")
		},
	}

	useCase := NewSetIntakeChannelUseCase(mockSettings, gateway, &mockLogger{})
	result, err := useCase.Execute(context.Background(), SetIntakeChannelCommand{
		GuildID:   "guild-1",
		ChannelID: "bogus",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "Channel with id bogus not found")
	assert.False(t, updated)
	assert.Equal(t, "old-intake", settings.IntakeChannelID())
}

func TestSetIntakeChannelUseCase_Execute_ChannelFromAnotherGuildRejected(t *testing.T) {
	mockSettings := &mockSettingsRepository{
		FindByGuildFunc: func(ctx context.Context, guildID string) (*guild.Settings, error) {
			return existingSettings(t), nil
		},
	}
	gateway := &mockGateway{
		FetchChannelFunc: func(ctx context.Context, channelID string) (*platform.Channel, error) {
			return &platform.Channel{ID: channelID, GuildID: "other-guild"}, nil
		},
	}

	useCase := NewSetIntakeChannelUseCase(mockSettings, gateway, &mockLogger{})
	result, err := useCase.Execute(context.Background(), SetIntakeChannelCommand{
		GuildID:   "guild-1",
		ChannelID: "foreign-channel",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestSetIntakeChannelUseCase_Execute_CreatesMissingSettingsRow(t *testing.T) {
	var saved *guild.Settings
	mockSettings := &mockSettingsRepository{
		FindByGuildFunc: func(ctx context.Context, guildID string) (*guild.Settings, error) {
			return nil, errors.NewNotFoundError("guild settings not found")
		},
		SaveFunc: func(ctx context.Context, s *guild.Settings) error {
			saved = s
			return nil
		},
	}
	gateway := &mockGateway{
		FetchChannelFunc: func(ctx context.Context, channelID string) (*platform.Channel, error) {
			return &platform.Channel{ID: channelID, GuildID: "guild-1"}, nil
		},
	}

	useCase := NewSetIntakeChannelUseCase(mockSettings, gateway, &mockLogger{})
	result, err := useCase.Execute(context.Background(), SetIntakeChannelCommand{
		GuildID:   "guild-1",
		GuildName: "Test Guild",
		ChannelID: "intake-1",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, saved)
	assert.Equal(t, "guild-1", saved.GuildID())
	assert.Equal(t, "intake-1", saved.IntakeChannelID())
}

func TestSetArchiveChannelUseCase_Execute_Success(t *testing.T) {
	settings := existingSettings(t)
	mockSettings := &mockSettingsRepository{
		FindByGuildFunc: func(ctx context.Context, guildID string) (*guild.Settings, error) {
			return settings, nil
		},
	}
	gateway := &mockGateway{
		FetchChannelFunc: func(ctx context.Context, channelID string) (*platform.Channel, error) {
			return &platform.Channel{ID: channelID, GuildID: "guild-1", Name: "archive"}, nil
		},
	}

	useCase := NewSetArchiveChannelUseCase(mockSettings, gateway, &mockLogger{})
	result, err := useCase.Execute(context.Background(), SetArchiveChannelCommand{
		GuildID:   "guild-1",
		ChannelID: "archive-1",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "archive-1", result.ChannelID)
	assert.Equal(t, "archive-1", settings.ArchiveChannelID())
}

func TestSetArchiveChannelUseCase_Execute_UnresolvableChannel(t *testing.T) {
	settings := existingSettings(t)
	mockSettings := &mockSettingsRepository{
		FindByGuildFunc: func(ctx context.Context, guildID string) (*guild.Settings, error) {
			return settings, nil
		},
	}
	gateway := &mockGateway{
		FetchChannelFunc: func(ctx context.Context, channelID string) (*platform.Channel, error) {
			return nil, errors.NewNotFoundError("unknown channel")
		},
	}

	useCase := NewSetArchiveChannelUseCase(mockSettings, gateway, &mockLogger{})
	result, err := useCase.Execute(context.Background(), SetArchiveChannelCommand{
		GuildID:   "guild-1",
		ChannelID: "bogus",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
	assert.False(t, settings.HasArchiveChannel())
}
