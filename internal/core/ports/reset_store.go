package ports

import (
	"context"
	"time"
)

// ResetStore holds password-reset tokens mapped to user ids.
type ResetStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error

	// Lookup resolves a token to the user id it was issued for.
	// A missing or expired token yields domain.ErrResetTokenInvalid.
	Lookup(ctx context.Context, token string) (string, error)

	Delete(ctx context.Context, token string) error
}
