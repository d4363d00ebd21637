package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.GuildSettingsModel{},
		&models.TicketModel{},
		&models.TranscriptMessageModel{},
		&models.PendingDeletionModel{},
	}
}
