package models

type GuildSettingsModel struct {
	ID               uint   `gorm:"primaryKey"`
	GuildID          string `gorm:"uniqueIndex;size:32;not null"`
	GuildName        string `gorm:"size:200"`
	IntakeChannelID  string `gorm:"size:32"`
	ArchiveChannelID string `gorm:"size:32"`
	ModeratorRoleID  string `gorm:"size:32"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (GuildSettingsModel) TableName() string {
	return "guild_settings"
}
