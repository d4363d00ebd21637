package usecases

import (
	"context"

	"helpdesk/internal/domain/guild"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RemoveGuildCommand struct {
	GuildID string
}

type RemoveGuildResult struct {
	TicketsRemoved int
}

// RemoveGuildUseCase runs on guild leave and erases everything the bot
// stored for the guild: captured messages, pending deletions, tickets, and
// the settings row, in that order so a partial failure never orphans child
// rows.
type RemoveGuildUseCase struct {
	ticketRepo   ticket.TicketRepository
	messageRepo  ticket.MessageRepository
	deletionRepo ticket.DeletionRepository
	settingsRepo guild.SettingsRepository
	logger       logger.Interface
}

func NewRemoveGuildUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	deletionRepo ticket.DeletionRepository,
	settingsRepo guild.SettingsRepository,
	logger logger.Interface,
) *RemoveGuildUseCase {
	return &RemoveGuildUseCase{
		ticketRepo:   ticketRepo,
		messageRepo:  messageRepo,
		deletionRepo: deletionRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *RemoveGuildUseCase) Execute(ctx context.Context, cmd RemoveGuildCommand) (*RemoveGuildResult, error) {
	if cmd.GuildID == "" {
		return nil, errors.NewValidationError("guild ID is required")
	}

	tickets, err := uc.ticketRepo.ListByGuild(ctx, cmd.GuildID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets for guild removal", "guild_id", cmd.GuildID, "error", err)
		return nil, errors.NewInternalError("failed to list guild tickets")
	}

	channelIDs := make([]string, 0, len(tickets))
	for _, t := range tickets {
		if t.ChannelID() != "" {
			channelIDs = append(channelIDs, t.ChannelID())
		}
	}

	if len(channelIDs) > 0 {
		if err := uc.messageRepo.DeleteByChannels(ctx, channelIDs); err != nil {
			uc.logger.Errorw("failed to delete captured messages", "guild_id", cmd.GuildID, "error", err)
			return nil, errors.NewInternalError("failed to delete guild data")
		}
		if err := uc.deletionRepo.DeleteByChannels(ctx, channelIDs); err != nil {
			uc.logger.Errorw("failed to delete pending deletions", "guild_id", cmd.GuildID, "error", err)
			return nil, errors.NewInternalError("failed to delete guild data")
		}
	}

	if err := uc.ticketRepo.DeleteByGuild(ctx, cmd.GuildID); err != nil {
		uc.logger.Errorw("failed to delete tickets", "guild_id", cmd.GuildID, "error", err)
		return nil, errors.NewInternalError("failed to delete guild data")
	}

	if err := uc.settingsRepo.DeleteByGuild(ctx, cmd.GuildID); err != nil {
		// The settings row may never have existed if the join event was missed.
		if !errors.IsType(err, errors.ErrorTypeNotFound) {
			uc.logger.Errorw("failed to delete guild settings", "guild_id", cmd.GuildID, "error", err)
			return nil, errors.NewInternalError("failed to delete guild settings")
		}
	}

	uc.logger.Infow("guild data removed", "guild_id", cmd.GuildID, "tickets_removed", len(tickets))

	return &RemoveGuildResult{TicketsRemoved: len(tickets)}, nil
}
