package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/application/transcript"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RecordRatingCommand struct {
	GuildID   string
	ChannelID string
	UserID    string // the reacting user, never the bot
	Emoji     string
}

type RecordRatingResult struct {
	// Closed is true when this reaction performed the open->closed
	// transition. False when the reaction was ignored or only overrode a
	// stored rating under the last-wins policy.
	Closed     bool
	Overridden bool
	TicketID   string
	Rating     vo.Rating
}

// RecordRatingUseCase is the closure flow. On a recognized rating reaction in
// an open ticket's channel it renames the channel, commits the authoritative
// close transition, acknowledges, locks the rater out of the channel, renders
// and archives the transcript, and schedules the deferred channel deletion.
// Steps other than the close transition itself are best-effort, in order.
type RecordRatingUseCase struct {
	ticketRepo   ticket.TicketRepository
	messageRepo  ticket.MessageRepository
	deletionRepo ticket.DeletionRepository
	gateway      platform.Gateway
	generator    *transcript.Generator
	archiver     *transcript.Archiver
	config       LifecycleConfig
	logger       logger.Interface
}

func NewRecordRatingUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	deletionRepo ticket.DeletionRepository,
	gateway platform.Gateway,
	generator *transcript.Generator,
	archiver *transcript.Archiver,
	config LifecycleConfig,
	logger logger.Interface,
) *RecordRatingUseCase {
	return &RecordRatingUseCase{
		ticketRepo:   ticketRepo,
		messageRepo:  messageRepo,
		deletionRepo: deletionRepo,
		gateway:      gateway,
		generator:    generator,
		archiver:     archiver,
		config:       config,
		logger:       logger,
	}
}

func (uc *RecordRatingUseCase) Execute(ctx context.Context, cmd RecordRatingCommand) (*RecordRatingResult, error) {
	if cmd.ChannelID == "" || cmd.UserID == "" {
		return nil, errors.NewValidationError("channel ID and user ID are required")
	}

	rating, ok := vo.RatingFromEmoji(cmd.Emoji)
	if !ok {
		// Not a rating glyph; the ticket stays open.
		return &RecordRatingResult{Closed: false}, nil
	}

	t, err := uc.ticketRepo.FindOpenByChannel(ctx, cmd.ChannelID)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeNotFound) {
			return uc.handleClosedChannel(ctx, cmd.ChannelID, rating)
		}
		uc.logger.Errorw("failed to look up ticket for rating",
			"channel_id", cmd.ChannelID, "error", err)
		return nil, errors.NewInternalError("failed to look up ticket")
	}

	log := uc.logger.With("ticket_id", t.TicketID(), "channel_id", cmd.ChannelID)

	// (a) rename, best-effort. Creation produces a lowercase "open-" prefix,
	// so the substring replace is a no-op only if someone renamed the channel
	// by hand.
	uc.renameChannel(ctx, cmd.ChannelID, log)

	// (b) the single authoritative transition to closed.
	if err := t.Close(rating); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		log.Errorw("failed to persist ticket closure", "error", err)
		return nil, errors.NewInternalError("failed to close ticket")
	}

	// (c) acknowledgement, best-effort.
	ack := fmt.Sprintf(
		"Thanks for your feedback, it's very important for us! <@%s>\nThis channel will be deleted within %s! Please save your ticket id: %s",
		cmd.UserID, formatDelay(uc.config.DeletionDelay), t.TicketID())
	if _, err := uc.gateway.SendMessage(ctx, cmd.ChannelID, ack); err != nil {
		log.Warnw("failed to post closure acknowledgement", "error", err)
	}

	// (d) lock the rater out of further chat, best-effort.
	if err := uc.gateway.RevokeChat(ctx, cmd.ChannelID, cmd.UserID); err != nil {
		log.Warnw("failed to revoke chat permissions", "user_id", cmd.UserID, "error", err)
	}

	// (e) transcript; failures abort archival only, the ticket stays closed.
	uc.archiveTranscript(ctx, t, log)

	// (f) durable deferred deletion; the reaper executes it after the delay
	// and recovers it across restarts.
	pending, err := ticket.NewPendingDeletion(cmd.ChannelID, t.TicketID(), time.Now().UTC().Add(uc.config.DeletionDelay))
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.deletionRepo.Save(ctx, pending); err != nil {
		log.Errorw("failed to schedule channel deletion", "error", err)
		return nil, errors.NewInternalError("ticket closed but channel deletion could not be scheduled")
	}

	log.Infow("ticket closed", "rating", rating.String())

	return &RecordRatingResult{
		Closed:   true,
		TicketID: t.TicketID(),
		Rating:   rating,
	}, nil
}

// handleClosedChannel applies the configured rating policy when a rating
// reaction arrives for a channel whose ticket is already closed.
func (uc *RecordRatingUseCase) handleClosedChannel(ctx context.Context, channelID string, rating vo.Rating) (*RecordRatingResult, error) {
	if uc.config.Policy != RatingPolicyLastWins {
		return &RecordRatingResult{Closed: false}, nil
	}

	t, err := uc.ticketRepo.FindByChannel(ctx, channelID)
	if err != nil {
		// No ticket at all for this channel; not a ticket channel.
		return &RecordRatingResult{Closed: false}, nil
	}

	if err := t.OverrideRating(rating); err != nil {
		return &RecordRatingResult{Closed: false}, nil
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to override rating",
			"ticket_id", t.TicketID(), "error", err)
		return nil, errors.NewInternalError("failed to override rating")
	}

	uc.logger.Infow("rating overridden under last-wins policy",
		"ticket_id", t.TicketID(), "rating", rating.String())

	return &RecordRatingResult{
		Closed:     false,
		Overridden: true,
		TicketID:   t.TicketID(),
		Rating:     rating,
	}, nil
}

func (uc *RecordRatingUseCase) renameChannel(ctx context.Context, channelID string, log logger.Interface) {
	channel, err := uc.gateway.FetchChannel(ctx, channelID)
	if err != nil {
		log.Warnw("failed to fetch channel for rename", "error", err)
		return
	}
	renamed := ticket.ClosedChannelName(channel.Name)
	if renamed == channel.Name {
		return
	}
	if err := uc.gateway.RenameChannel(ctx, channelID, renamed); err != nil {
		log.Warnw("failed to rename channel", "new_name", renamed, "error", err)
	}
}

func (uc *RecordRatingUseCase) archiveTranscript(ctx context.Context, t *ticket.Ticket, log logger.Interface) {
	messages, err := uc.messageRepo.ListByChannel(ctx, t.ChannelID())
	if err != nil {
		log.Errorw("failed to fetch captured messages for transcript", "error", err)
		return
	}

	doc, err := uc.generator.Render(t, messages)
	if err != nil {
		log.Errorw("failed to render transcript", "error", err)
		return
	}

	if err := uc.archiver.Dispatch(ctx, t.GuildID(), t.TicketID(), doc); err != nil {
		log.Errorw("failed to archive transcript", "error", err)
	}
}

func formatDelay(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		minutes := int(d / time.Minute)
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return d.String()
}
