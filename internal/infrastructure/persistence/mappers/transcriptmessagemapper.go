package mappers

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TranscriptMessageMapper handles the conversion between captured messages
// and persistence models.
type TranscriptMessageMapper interface {
	ToModel(msg *ticket.TranscriptMessage) *models.TranscriptMessageModel
	ToDomain(model *models.TranscriptMessageModel) (*ticket.TranscriptMessage, error)
}

type TranscriptMessageMapperImpl struct{}

func NewTranscriptMessageMapper() TranscriptMessageMapper {
	return &TranscriptMessageMapperImpl{}
}

func (m *TranscriptMessageMapperImpl) ToModel(msg *ticket.TranscriptMessage) *models.TranscriptMessageModel {
	return &models.TranscriptMessageModel{
		ID:         msg.DBID(),
		ChannelID:  msg.ChannelID(),
		AuthorID:   msg.AuthorID(),
		AuthorName: msg.AuthorName(),
		Content:    msg.Content(),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}
}

func (m *TranscriptMessageMapperImpl) ToDomain(model *models.TranscriptMessageModel) (*ticket.TranscriptMessage, error) {
	return ticket.ReconstructTranscriptMessage(
		model.ID,
		model.ChannelID,
		model.AuthorID,
		model.AuthorName,
		model.Content,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
