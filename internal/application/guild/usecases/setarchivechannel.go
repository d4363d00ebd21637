package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/guild"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SetArchiveChannelCommand struct {
	GuildID   string
	GuildName string
	ChannelID string
}

type SetArchiveChannelResult struct {
	ChannelID string
}

// SetArchiveChannelUseCase designates the channel that receives the rendered
// transcript of every closed ticket. Leaving it unset keeps closure working,
// the transcript delivery is simply skipped.
type SetArchiveChannelUseCase struct {
	settingsRepo guild.SettingsRepository
	gateway      platform.Gateway
	logger       logger.Interface
}

func NewSetArchiveChannelUseCase(
	settingsRepo guild.SettingsRepository,
	gateway platform.Gateway,
	logger logger.Interface,
) *SetArchiveChannelUseCase {
	return &SetArchiveChannelUseCase{
		settingsRepo: settingsRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (uc *SetArchiveChannelUseCase) Execute(ctx context.Context, cmd SetArchiveChannelCommand) (*SetArchiveChannelResult, error) {
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

	if err := settings.SetArchiveChannel(cmd.ChannelID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		uc.logger.Errorw("failed to persist archive channel", "guild_id", cmd.GuildID, "error", err)
		return nil, errors.NewInternalError("failed to save guild settings")
	}

	uc.logger.Infow("archive channel configured", "guild_id", cmd.GuildID, "channel_id", cmd.ChannelID)

	return &SetArchiveChannelResult{ChannelID: cmd.ChannelID}, nil
}
