package usecases

import (
	"context"
	"fmt"
	"time"
)

// RatingPolicy resolves what happens when a qualifying rating reaction
// arrives for a ticket that is already closed.
type RatingPolicy string

const (
	// RatingPolicyFirstWins ignores ratings after the first qualifying one.
	RatingPolicyFirstWins RatingPolicy = "first"
	// RatingPolicyLastWins lets a later qualifying reaction overwrite the
	// stored rating without re-running closure side effects.
	RatingPolicyLastWins RatingPolicy = "last"
)

func ParseRatingPolicy(s string) (RatingPolicy, error) {
	switch RatingPolicy(s) {
	case RatingPolicyFirstWins, "":
		return RatingPolicyFirstWins, nil
	case RatingPolicyLastWins:
		return RatingPolicyLastWins, nil
	}
	return "", fmt.Errorf("invalid rating policy: %q", s)
}

// LifecycleConfig carries the tunables of the closure flow.
type LifecycleConfig struct {
	// DeletionDelay is how long a closed ticket channel survives before the
	// deferred deletion fires.
	DeletionDelay time.Duration
	// Policy resolves concurrent/duplicate rating reactions.
	Policy RatingPolicy
}

type OpenTicketExecutor interface {
	Execute(ctx context.Context, cmd OpenTicketCommand) (*OpenTicketResult, error)
}

type CaptureMessageExecutor interface {
	Execute(ctx context.Context, cmd CaptureMessageCommand) (*CaptureMessageResult, error)
}

type RequestCloseExecutor interface {
	Execute(ctx context.Context, cmd RequestCloseCommand) (*RequestCloseResult, error)
}

type RecordRatingExecutor interface {
	Execute(ctx context.Context, cmd RecordRatingCommand) (*RecordRatingResult, error)
}
