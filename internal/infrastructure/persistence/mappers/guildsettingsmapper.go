package mappers

import (
	"time"

	"helpdesk/internal/domain/guild"
	"helpdesk/internal/infrastructure/persistence/models"
)

// GuildSettingsMapper handles the conversion between guild settings and
// persistence models.
type GuildSettingsMapper interface {
	ToModel(s *guild.Settings) *models.GuildSettingsModel
	ToDomain(model *models.GuildSettingsModel) (*guild.Settings, error)
}

type GuildSettingsMapperImpl struct{}

func NewGuildSettingsMapper() GuildSettingsMapper {
	return &GuildSettingsMapperImpl{}
}

func (m *GuildSettingsMapperImpl) ToModel(s *guild.Settings) *models.GuildSettingsModel {
	return &models.GuildSettingsModel{
		ID:               s.DBID(),
		GuildID:          s.GuildID(),
		GuildName:        s.GuildName(),
		IntakeChannelID:  s.IntakeChannelID(),
		ArchiveChannelID: s.ArchiveChannelID(),
		ModeratorRoleID:  s.ModeratorRoleID(),
		CreatedAt:        s.CreatedAt().UnixMilli(),
		UpdatedAt:        s.UpdatedAt().UnixMilli(),
	}
}

func (m *GuildSettingsMapperImpl) ToDomain(model *models.GuildSettingsModel) (*guild.Settings, error) {
	return guild.ReconstructSettings(
		model.ID,
		model.GuildID,
		model.GuildName,
		model.IntakeChannelID,
		model.ArchiveChannelID,
		model.ModeratorRoleID,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
