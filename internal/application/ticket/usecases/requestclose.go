package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const msgNoTicketHere = "There's no ticket open in this channel"

type RequestCloseCommand struct {
	ChannelID string
}

type RequestCloseResult struct {
	TicketID        string
	RequesterID     string
	PromptMessageID string
}

// RequestCloseUseCase posts the feedback prompt with the two rating
// reactions. The ticket stays open; only an observed rating reaction closes
// it.
type RequestCloseUseCase struct {
	ticketRepo ticket.TicketRepository
	gateway    platform.Gateway
	logger     logger.Interface
}

func NewRequestCloseUseCase(
	ticketRepo ticket.TicketRepository,
	gateway platform.Gateway,
	logger logger.Interface,
) *RequestCloseUseCase {
	return &RequestCloseUseCase{
		ticketRepo: ticketRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

func (uc *RequestCloseUseCase) Execute(ctx context.Context, cmd RequestCloseCommand) (*RequestCloseResult, error) {
	if cmd.ChannelID == "" {
		return nil, errors.NewValidationError("channel ID is required")
	}

	t, err := uc.ticketRepo.FindOpenByChannel(ctx, cmd.ChannelID)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewLocationError(msgNoTicketHere)
		}
		uc.logger.Errorw("failed to look up ticket", "channel_id", cmd.ChannelID, "error", err)
		return nil, errors.NewInternalError("failed to look up ticket")
	}

	prompt := fmt.Sprintf("Was your problem solved? <@%s>", t.RequesterID())
	messageID, err := uc.gateway.SendMessage(ctx, cmd.ChannelID, prompt)
	if err != nil {
		uc.logger.Errorw("failed to post feedback prompt",
			"ticket_id", t.TicketID(), "channel_id", cmd.ChannelID, "error", err)
		return nil, errors.NewPlatformError("failed to post the feedback prompt, please try again")
	}

	for _, emoji := range []string{vo.EmojiThumbsUp, vo.EmojiThumbsDown} {
		if err := uc.gateway.AddReaction(ctx, cmd.ChannelID, messageID, emoji); err != nil {
			uc.logger.Errorw("failed to attach rating reaction",
				"ticket_id", t.TicketID(), "emoji", emoji, "error", err)
			return nil, errors.NewPlatformError("failed to attach the rating reactions, please try again")
		}
	}

	uc.logger.Infow("close requested, awaiting rating", "ticket_id", t.TicketID())

	return &RequestCloseResult{
		TicketID:        t.TicketID(),
		RequesterID:     t.RequesterID(),
		PromptMessageID: messageID,
	}, nil
}
