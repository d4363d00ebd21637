package ticket

import (
	"context"
	"fmt"
	"time"
)

// PendingDeletion is the durable record of a closed ticket channel awaiting
// teardown. Persisting it (instead of an in-process timer) lets a restart
// pick up and execute overdue deletions.
type PendingDeletion struct {
	dbID      uint
	channelID string
	ticketID  string
	deleteAt  time.Time
}

// NewPendingDeletion schedules the channel for deletion at deleteAt.
func NewPendingDeletion(channelID, ticketID string, deleteAt time.Time) (*PendingDeletion, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if deleteAt.IsZero() {
		return nil, fmt.Errorf("deletion time is required")
	}

	return &PendingDeletion{
		channelID: channelID,
		ticketID:  ticketID,
		deleteAt:  deleteAt.UTC(),
	}, nil
}

// ReconstructPendingDeletion rebuilds a scheduled deletion from its persisted state.
func ReconstructPendingDeletion(dbID uint, channelID, ticketID string, deleteAt time.Time) (*PendingDeletion, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("pending deletion database ID cannot be zero")
	}
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}

	return &PendingDeletion{
		dbID:      dbID,
		channelID: channelID,
		ticketID:  ticketID,
		deleteAt:  deleteAt,
	}, nil
}

func (d *PendingDeletion) DBID() uint         { return d.dbID }
func (d *PendingDeletion) ChannelID() string  { return d.channelID }
func (d *PendingDeletion) TicketID() string   { return d.ticketID }
func (d *PendingDeletion) DeleteAt() time.Time { return d.deleteAt }

// IsDue reports whether the deletion should execute at the given time.
func (d *PendingDeletion) IsDue(now time.Time) bool {
	return !now.Before(d.deleteAt)
}

func (d *PendingDeletion) SetDBID(dbID uint) error {
	if d.dbID != 0 {
		return fmt.Errorf("pending deletion database ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("pending deletion database ID cannot be zero")
	}
	d.dbID = dbID
	return nil
}

// DeletionRepository stores channel deletions awaiting execution.
type DeletionRepository interface {
	Save(ctx context.Context, d *PendingDeletion) error
	// ListDue returns deletions whose time has passed, oldest first.
	ListDue(ctx context.Context, now time.Time) ([]*PendingDeletion, error)
	Delete(ctx context.Context, dbID uint) error
	DeleteByChannels(ctx context.Context, channelIDs []string) error
}
