package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/guild"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type GuildSettingsRepository struct {
	db     *gorm.DB
	mapper mappers.GuildSettingsMapper
}

func NewGuildSettingsRepository(db *gorm.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{
		db:     db,
		mapper: mappers.NewGuildSettingsMapper(),
	}
}

func (r *GuildSettingsRepository) Save(ctx context.Context, s *guild.Settings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save guild settings: %w", err)
	}

	return s.SetDBID(model.ID)
}

func (r *GuildSettingsRepository) Update(ctx context.Context, s *guild.Settings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select keeps cleared channel/role references writable.
	result := tx.
		Model(&models.GuildSettingsModel{}).
		Where("id = ?", model.ID).
		Select("GuildName", "IntakeChannelID", "ArchiveChannelID", "ModeratorRoleID", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update guild settings: %w", result.Error)
	}

	return nil
}

func (r *GuildSettingsRepository) FindByGuild(ctx context.Context, guildID string) (*guild.Settings, error) {
	var model models.GuildSettingsModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("guild_id = ?", guildID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("guild settings not found")
		}
		return nil, fmt.Errorf("failed to find guild settings: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *GuildSettingsRepository) DeleteByGuild(ctx context.Context, guildID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("guild_id = ?", guildID).
		Delete(&models.GuildSettingsModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete guild settings: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("guild settings not found")
	}

	return nil
}
