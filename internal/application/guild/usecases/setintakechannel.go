package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/guild"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SetIntakeChannelCommand struct {
	GuildID   string
	GuildName string
	ChannelID string
}

type SetIntakeChannelResult struct {
	ChannelID string
}

// SetIntakeChannelUseCase designates the channel where the ticket command is
// accepted. The referenced channel must resolve on the platform; an invalid
// reference leaves the prior value intact.
type SetIntakeChannelUseCase struct {
	settingsRepo guild.SettingsRepository
	gateway      platform.Gateway
	logger       logger.Interface
}

func NewSetIntakeChannelUseCase(
	settingsRepo guild.SettingsRepository,
	gateway platform.Gateway,
	logger logger.Interface,
) *SetIntakeChannelUseCase {
	return &SetIntakeChannelUseCase{
		settingsRepo: settingsRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (uc *SetIntakeChannelUseCase) Execute(ctx context.Context, cmd SetIntakeChannelCommand) (*SetIntakeChannelResult, error) {
	if cmd.GuildID == "" {
		return nil, errors.NewValidationError("guild ID is required")
	}
	if cmd.ChannelID == "" {
		return nil, errors.NewValidationError("channel ID is required")
	}

	channel, err := uc.gateway.FetchChannel(ctx, cmd.ChannelID)
	if err != nil || channel.GuildID != cmd.GuildID {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Channel with id %s not found", cmd.ChannelID))
	}

	settings, err := loadOrCreateSettings(ctx, uc.settingsRepo, cmd.GuildID, cmd.GuildName, uc.logger)
	if err != nil {
		return nil, err
	}

	if err := settings.SetIntakeChannel(cmd.ChannelID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		uc.logger.Errorw("failed to persist intake channel", "guild_id", cmd.GuildID, "error", err)
		return nil, errors.NewInternalError("failed to save guild settings")
	}

	uc.logger.Infow("intake channel configured", "guild_id", cmd.GuildID, "channel_id", cmd.ChannelID)

	return &SetIntakeChannelResult{ChannelID: cmd.ChannelID}, nil
}

// loadOrCreateSettings returns the guild's settings row, creating an empty
// one when the join event that normally creates it was missed.
func loadOrCreateSettings(ctx context.Context, repo guild.SettingsRepository, guildID, guildName string, log logger.Interface) (*guild.Settings, error) {
	settings, err := repo.FindByGuild(ctx, guildID)
	if err == nil {
		return settings, nil
	}
	if !errors.IsType(err, errors.ErrorTypeNotFound) {
		log.Errorw("failed to load guild settings", "guild_id", guildID, "error", err)
		return nil, errors.NewInternalError("failed to load guild settings")
	}

	settings, err = guild.NewSettings(guildID, guildName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := repo.Save(ctx, settings); err != nil {
		log.Errorw("failed to create guild settings", "guild_id", guildID, "error", err)
		return nil, errors.NewInternalError("failed to save guild settings")
	}
	return settings, nil
}
