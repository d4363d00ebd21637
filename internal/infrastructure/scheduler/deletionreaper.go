package scheduler

import (
	"context"
	"time"

	"helpdesk/internal/application/platform"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// DeletionReaper periodically executes due channel deletions. Because the
// schedule is persisted, deletions that came due while the process was down
// are picked up on the first sweep after startup.
type DeletionReaper struct {
	deletionRepo ticket.DeletionRepository
	gateway      platform.Gateway
	logger       logger.Interface
	stopChan     chan struct{}
	interval     time.Duration
}

func NewDeletionReaper(
	deletionRepo ticket.DeletionRepository,
	gateway platform.Gateway,
	interval time.Duration,
	logger logger.Interface,
) *DeletionReaper {
	return &DeletionReaper{
		deletionRepo: deletionRepo,
		gateway:      gateway,
		logger:       logger,
		stopChan:     make(chan struct{}),
		interval:     interval,
	}
}

// Start runs the sweep loop until the context is cancelled or Stop is
// called. The first sweep runs immediately to catch overdue deletions from
// before the last shutdown.
func (s *DeletionReaper) Start(ctx context.Context) {
	s.logger.Infow("starting deletion reaper", "interval", s.interval)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("deletion reaper stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("deletion reaper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Stop stops the reaper.
func (s *DeletionReaper) Stop() {
	close(s.stopChan)
}

// Sweep executes all due deletions once. Exposed for the startup recovery
// path and tests; Start calls it on every tick.
func (s *DeletionReaper) Sweep(ctx context.Context) {
	s.sweep(ctx)
}

func (s *DeletionReaper) sweep(ctx context.Context) {
	goroutine.SafeCall(s.logger, "deletion_reaper.sweep", func() {
		due, err := s.deletionRepo.ListDue(ctx, time.Now().UTC())
		if err != nil {
			s.logger.Errorw("failed to list due deletions", "error", err)
			return
		}

		for _, d := range due {
			s.execute(ctx, d)
		}
	})
}

func (s *DeletionReaper) execute(ctx context.Context, d *ticket.PendingDeletion) {
	if err := s.gateway.DeleteChannel(ctx, d.ChannelID()); err != nil {
		// A channel already deleted by hand counts as done. The gateway
		// reports it as a not-found error.
		if !errors.IsType(err, errors.ErrorTypeNotFound) {
			s.logger.Errorw("failed to delete channel, will retry on next sweep",
				"channel_id", d.ChannelID(), "ticket_id", d.TicketID(), "error", err)
			return
		}
	}

	if err := s.deletionRepo.Delete(ctx, d.DBID()); err != nil {
		s.logger.Errorw("failed to clear executed deletion",
			"channel_id", d.ChannelID(), "error", err)
		return
	}

	s.logger.Infow("ticket channel deleted",
		"channel_id", d.ChannelID(), "ticket_id", d.TicketID())
}
