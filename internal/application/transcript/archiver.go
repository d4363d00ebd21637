package transcript

import (
	"context"
	"fmt"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/guild"
	"helpdesk/internal/shared/logger"
)

// Archiver delivers rendered transcripts to the guild's archive channel.
// Archival is optional: a missing archive channel, or one that no longer
// resolves on the platform, is a silent skip rather than an error.
type Archiver struct {
	settingsRepo guild.SettingsRepository
	gateway      platform.Gateway
	logger       logger.Interface
}

func NewArchiver(
	settingsRepo guild.SettingsRepository,
	gateway platform.Gateway,
	logger logger.Interface,
) *Archiver {
	return &Archiver{
		settingsRepo: settingsRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

// Dispatch sends the document as a named attachment with a short caption
// identifying the source ticket.
func (a *Archiver) Dispatch(ctx context.Context, guildID, ticketID string, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("document is required")
	}

	settings, err := a.settingsRepo.FindByGuild(ctx, guildID)
	if err != nil || !settings.HasArchiveChannel() {
		a.logger.Debugw("no archive channel configured, skipping transcript delivery",
			"guild_id", guildID, "ticket_id", ticketID)
		return nil
	}

	channel, err := a.gateway.FetchChannel(ctx, settings.ArchiveChannelID())
	if err != nil {
		a.logger.Warnw("archive channel not resolvable, skipping transcript delivery",
			"guild_id", guildID, "channel_id", settings.ArchiveChannelID(), "error", err)
		return nil
	}

	caption := fmt.Sprintf("History from ticket %s", ticketID)
	if err := a.gateway.SendFile(ctx, channel.ID, caption, doc.FileName, doc.Content); err != nil {
		return fmt.Errorf("failed to deliver transcript: %w", err)
	}

	a.logger.Infow("transcript archived", "ticket_id", ticketID, "channel_id", channel.ID)
	return nil
}
