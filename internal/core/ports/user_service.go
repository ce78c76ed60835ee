package ports

import (
	"context"

	"github.com/adminhub/console-api/internal/core/domain"
)

// UserService covers account CRUD, public registration and the
// password-reset flow.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Exists(ctx context.Context, email, username string) (bool, error)

	// Create inserts a user with an explicit role (admin surface).
	Create(ctx context.Context, username, email, fullName, password, role string) (*domain.User, error)

	// Register inserts a self-service user; role is forced to "user".
	Register(ctx context.Context, username, email, fullName, password string) (*domain.User, error)

	Update(ctx context.Context, id string, update *domain.UserUpdate) (*domain.User, error)

	// Delete removes a user. Owner accounts are undeletable.
	Delete(ctx context.Context, id string) error

	// ForgotPassword issues a reset token and mails the reset link.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a reset token and stores the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
