package mappers

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

// PendingDeletionMapper handles the conversion between scheduled channel
// deletions and persistence models.
type PendingDeletionMapper interface {
	ToModel(d *ticket.PendingDeletion) *models.PendingDeletionModel
	ToDomain(model *models.PendingDeletionModel) (*ticket.PendingDeletion, error)
}

type PendingDeletionMapperImpl struct{}

func NewPendingDeletionMapper() PendingDeletionMapper {
	return &PendingDeletionMapperImpl{}
}

func (m *PendingDeletionMapperImpl) ToModel(d *ticket.PendingDeletion) *models.PendingDeletionModel {
	return &models.PendingDeletionModel{
		ID:        d.DBID(),
		ChannelID: d.ChannelID(),
		TicketID:  d.TicketID(),
		DeleteAt:  d.DeleteAt().UnixMilli(),
	}
}

func (m *PendingDeletionMapperImpl) ToDomain(model *models.PendingDeletionModel) (*ticket.PendingDeletion, error) {
	return ticket.ReconstructPendingDeletion(
		model.ID,
		model.ChannelID,
		model.TicketID,
		time.UnixMilli(model.DeleteAt).UTC(),
	)
}
