package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:            t.DBID(),
		TicketID:      t.TicketID(),
		RequesterID:   t.RequesterID(),
		RequesterName: t.RequesterName(),
		GuildID:       t.GuildID(),
		ChannelID:     t.ChannelID(),
		Open:          t.IsOpen(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
	}

	if t.Rating() != nil {
		rating := t.Rating().String()
		model.Rating = &rating
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var rating *vo.Rating
	if model.Rating != nil {
		parsed, err := vo.ParseRating(*model.Rating)
		if err != nil {
			return nil, fmt.Errorf("invalid rating on ticket (id=%d): %w", model.ID, err)
		}
		rating = &parsed
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		closed := time.UnixMilli(*model.ClosedAt).UTC()
		closedAt = &closed
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.TicketID,
		model.RequesterID,
		model.RequesterName,
		model.GuildID,
		model.ChannelID,
		model.Open,
		rating,
		time.UnixMilli(model.CreatedAt).UTC(),
		closedAt,
	)
}
