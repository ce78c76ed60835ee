package ports

import "context"

// SessionStore registers issued tokens so they can be revoked before
// their signature expiry. At most one token resolves per subject:
// Rotate removes the subject's previous token before registering the
// new one. The delete-then-set sequence is not transactional; concurrent
// rotation for the same subject is last-write-wins.
type SessionStore interface {
	// Rotate invalidates the subject's current token, if any, and
	// registers token as the new active one.
	Rotate(ctx context.Context, subject, token string) error

	// IsRegistered reports whether token is still registered.
	IsRegistered(ctx context.Context, token string) (bool, error)

	// Revoke unregisters token. It reports whether the token existed.
	Revoke(ctx context.Context, token string) (bool, error)
}
