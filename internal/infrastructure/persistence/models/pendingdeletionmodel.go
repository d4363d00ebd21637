package models

type PendingDeletionModel struct {
	ID        uint   `gorm:"primaryKey"`
	ChannelID string `gorm:"uniqueIndex;size:32;not null"`
	TicketID  string `gorm:"size:100;not null"`
	DeleteAt  int64  `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (PendingDeletionModel) TableName() string {
	return "pending_deletions"
}
