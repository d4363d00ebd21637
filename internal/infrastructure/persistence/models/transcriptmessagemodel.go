package models

type TranscriptMessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	ChannelID  string `gorm:"size:32;not null;index"`
	AuthorID   string `gorm:"size:32;not null"`
	AuthorName string `gorm:"size:100;not null"`
	Content    string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TranscriptMessageModel) TableName() string {
	return "transcript_messages"
}
