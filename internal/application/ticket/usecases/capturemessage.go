package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CaptureMessageCommand struct {
	ChannelID  string
	AuthorID   string
	AuthorName string
	Content    string
}

type CaptureMessageResult struct {
	// Captured is false when the channel maps to no open ticket and the
	// message was ignored.
	Captured bool
	TicketID string
}

// CaptureMessageUseCase runs on every message in every guild. Messages in
// channels without an open ticket are a no-op; messages in an open ticket's
// channel are appended to its transcript.
type CaptureMessageUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewCaptureMessageUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *CaptureMessageUseCase {
	return &CaptureMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *CaptureMessageUseCase) Execute(ctx context.Context, cmd CaptureMessageCommand) (*CaptureMessageResult, error) {
	if cmd.ChannelID == "" || cmd.AuthorID == "" {
		return nil, errors.NewValidationError("channel ID and author ID are required")
	}

	t, err := uc.ticketRepo.FindOpenByChannel(ctx, cmd.ChannelID)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeNotFound) {
			return &CaptureMessageResult{Captured: false}, nil
		}
		uc.logger.Errorw("failed to look up ticket for message capture",
			"channel_id", cmd.ChannelID, "error", err)
		return nil, errors.NewInternalError("failed to look up ticket")
	}

	msg, err := ticket.NewTranscriptMessage(cmd.ChannelID, cmd.AuthorID, cmd.AuthorName, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, msg); err != nil {
		uc.logger.Errorw("failed to capture message",
			"channel_id", cmd.ChannelID, "ticket_id", t.TicketID(), "error", err)
		return nil, errors.NewInternalError("failed to capture message")
	}

	return &CaptureMessageResult{Captured: true, TicketID: t.TicketID()}, nil
}
