package ports

import (
	"context"
	"time"
)

// ThrottleStore tracks failed login attempts per identity. Counters
// carry a sliding expiry window; a missing counter reads as zero.
type ThrottleStore interface {
	// Attempts returns the current failure count and the time of the
	// last failure. A zero time means no failure is recorded.
	Attempts(ctx context.Context, identity string) (int, time.Time, error)

	// RecordFailure stores the new failure count and timestamp,
	// refreshing the expiry window.
	RecordFailure(ctx context.Context, identity string, attempts int, at time.Time) error

	// Reset clears the counters after a successful authentication.
	Reset(ctx context.Context, identity string) error
}
