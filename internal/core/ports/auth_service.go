package ports

import (
	"context"
	"time"

	"github.com/adminhub/console-api/internal/core/domain"
)

// AuthService implements session issuance, validation and the login
// throttle.
type AuthService interface {
	// Login verifies credentials under the attempt throttle and, on
	// success, issues a session token with the given TTL.
	Login(ctx context.Context, username, password string, ttl time.Duration) (string, *domain.User, error)

	// Issue mints and registers a token for an already-verified
	// subject. A non-positive ttl falls back to the service default.
	Issue(ctx context.Context, subject string, ttl time.Duration) (string, error)

	// Validate checks the token signature and its registration in the
	// session store, returning the subject claim.
	Validate(ctx context.Context, token string) (string, error)

	// Logout revokes the presented token.
	Logout(ctx context.Context, token string) error
}
