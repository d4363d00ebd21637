package usecases

import (
	"context"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/guild"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const msgGreeting = "Hello! Thanks for adding me to your server! 😊"

type RegisterGuildCommand struct {
	GuildID   string
	GuildName string
	// SystemChannelID is where the greeting goes; empty means the guild has
	// no system channel and the greeting is skipped.
	SystemChannelID string
}

type RegisterGuildResult struct {
	// AlreadyRegistered is true when a settings row survived a previous
	// join/leave cycle and was kept as-is.
	AlreadyRegistered bool
	Greeted           bool
}

// RegisterGuildUseCase runs on guild join: it creates the guild's settings
// row with all optional fields empty and posts a greeting to the system
// channel. Re-joining a guild whose row still exists keeps the old
// configuration.
type RegisterGuildUseCase struct {
	settingsRepo guild.SettingsRepository
	gateway      platform.Gateway
	logger       logger.Interface
}

func NewRegisterGuildUseCase(
	settingsRepo guild.SettingsRepository,
	gateway platform.Gateway,
	logger logger.Interface,
) *RegisterGuildUseCase {
	return &RegisterGuildUseCase{
		settingsRepo: settingsRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (uc *RegisterGuildUseCase) Execute(ctx context.Context, cmd RegisterGuildCommand) (*RegisterGuildResult, error) {
	if cmd.GuildID == "" {
		return nil, errors.NewValidationError("guild ID is required")
	}

	result := &RegisterGuildResult{}

	existing, err := uc.settingsRepo.FindByGuild(ctx, cmd.GuildID)
	switch {
	case err == nil && existing != nil:
		result.AlreadyRegistered = true
		uc.logger.Infow("guild re-joined, keeping existing settings", "guild_id", cmd.GuildID)
	case err != nil && !errors.IsType(err, errors.ErrorTypeNotFound):
		uc.logger.Errorw("failed to look up guild settings", "guild_id", cmd.GuildID, "error", err)
		return nil, errors.NewInternalError("failed to look up guild settings")
	default:
		settings, err := guild.NewSettings(cmd.GuildID, cmd.GuildName)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.settingsRepo.Save(ctx, settings); err != nil {
			uc.logger.Errorw("failed to save guild settings", "guild_id", cmd.GuildID, "error", err)
			return nil, errors.NewInternalError("failed to register guild")
		}
		uc.logger.Infow("guild registered", "guild_id", cmd.GuildID, "guild_name", cmd.GuildName)
	}

	// Greeting is best-effort; a guild without a system channel gets none.
	if cmd.SystemChannelID != "" {
		if _, err := uc.gateway.SendMessage(ctx, cmd.SystemChannelID, msgGreeting); err != nil {
			uc.logger.Warnw("failed to post greeting",
				"guild_id", cmd.GuildID, "channel_id", cmd.SystemChannelID, "error", err)
		} else {
			result.Greeted = true
		}
	}

	return result, nil
}
