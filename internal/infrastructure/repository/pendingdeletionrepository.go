package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type PendingDeletionRepository struct {
	db     *gorm.DB
	mapper mappers.PendingDeletionMapper
}

func NewPendingDeletionRepository(db *gorm.DB) *PendingDeletionRepository {
	return &PendingDeletionRepository{
		db:     db,
		mapper: mappers.NewPendingDeletionMapper(),
	}
}

func (r *PendingDeletionRepository) Save(ctx context.Context, d *ticket.PendingDeletion) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save pending deletion: %w", err)
	}

	return d.SetDBID(model.ID)
}

func (r *PendingDeletionRepository) ListDue(ctx context.Context, now time.Time) ([]*ticket.PendingDeletion, error) {
	var modelList []models.PendingDeletionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("delete_at <= ?", now.UnixMilli()).
		Order("delete_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list due deletions: %w", err)
	}

	due := make([]*ticket.PendingDeletion, 0, len(modelList))
	for i := range modelList {
		d, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		due = append(due, d)
	}

	return due, nil
}

func (r *PendingDeletionRepository) Delete(ctx context.Context, dbID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.PendingDeletionModel{}, dbID).Error; err != nil {
		return fmt.Errorf("failed to delete pending deletion: %w", err)
	}

	return nil
}

func (r *PendingDeletionRepository) DeleteByChannels(ctx context.Context, channelIDs []string) error {
	if len(channelIDs) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("channel_id IN ?", channelIDs).
		Delete(&models.PendingDeletionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete pending deletions: %w", err)
	}

	return nil
}
