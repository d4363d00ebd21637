package models

type TicketModel struct {
	ID            uint    `gorm:"primaryKey"`
	TicketID      string  `gorm:"uniqueIndex;size:100;not null"`
	RequesterID   string  `gorm:"size:32;not null;index"`
	RequesterName string  `gorm:"size:100;not null"`
	GuildID       string  `gorm:"size:32;not null;index"`
	ChannelID     string  `gorm:"size:32;index"`
	Open          bool    `gorm:"not null;default:true;index"`
	Rating        *string `gorm:"size:20"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt      *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
