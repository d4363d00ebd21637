package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type TranscriptMessageRepository struct {
	db     *gorm.DB
	mapper mappers.TranscriptMessageMapper
}

func NewTranscriptMessageRepository(db *gorm.DB) *TranscriptMessageRepository {
	return &TranscriptMessageRepository{
		db:     db,
		mapper: mappers.NewTranscriptMessageMapper(),
	}
}

func (r *TranscriptMessageRepository) Save(ctx context.Context, msg *ticket.TranscriptMessage) error {
	model := r.mapper.ToModel(msg)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return msg.SetDBID(model.ID)
}

func (r *TranscriptMessageRepository) ListByChannel(ctx context.Context, channelID string) ([]*ticket.TranscriptMessage, error) {
	var modelList []models.TranscriptMessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	// Secondary sort on id keeps messages captured in the same millisecond
	// in insertion order.
	if err := tx.
		Where("channel_id = ?", channelID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*ticket.TranscriptMessage, 0, len(modelList))
	for i := range modelList {
		msg, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (r *TranscriptMessageRepository) DeleteByChannels(ctx context.Context, channelIDs []string) error {
	if len(channelIDs) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("channel_id IN ?", channelIDs).
		Delete(&models.TranscriptMessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}

	return nil
}
