package ticket

import (
	"fmt"
	"time"
)

// TranscriptMessage is a message captured from an open ticket's channel.
// Messages are immutable once captured and are only removed by the guild
// cascade.
type TranscriptMessage struct {
	dbID       uint
	channelID  string
	authorID   string
	authorName string
	content    string
	createdAt  time.Time
}

// NewTranscriptMessage captures a message posted in an open ticket's channel.
func NewTranscriptMessage(channelID, authorID, authorName, content string) (*TranscriptMessage, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}
	if authorID == "" {
		return nil, fmt.Errorf("author ID is required")
	}

	return &TranscriptMessage{
		channelID:  channelID,
		authorID:   authorID,
		authorName: authorName,
		content:    content,
		createdAt:  time.Now().UTC(),
	}, nil
}

// ReconstructTranscriptMessage rebuilds a captured message from its persisted state.
func ReconstructTranscriptMessage(
	dbID uint,
	channelID, authorID, authorName, content string,
	createdAt time.Time,
) (*TranscriptMessage, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("message database ID cannot be zero")
	}
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}

	return &TranscriptMessage{
		dbID:       dbID,
		channelID:  channelID,
		authorID:   authorID,
		authorName: authorName,
		content:    content,
		createdAt:  createdAt,
	}, nil
}

func (m *TranscriptMessage) DBID() uint           { return m.dbID }
func (m *TranscriptMessage) ChannelID() string    { return m.channelID }
func (m *TranscriptMessage) AuthorID() string     { return m.authorID }
func (m *TranscriptMessage) AuthorName() string   { return m.authorName }
func (m *TranscriptMessage) Content() string      { return m.content }
func (m *TranscriptMessage) CreatedAt() time.Time { return m.createdAt }

func (m *TranscriptMessage) SetDBID(dbID uint) error {
	if m.dbID != 0 {
		return fmt.Errorf("message database ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("message database ID cannot be zero")
	}
	m.dbID = dbID
	return nil
}
