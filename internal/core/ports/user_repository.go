package ports

import (
	"context"

	"github.com/adminhub/console-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Uniqueness of
// username and email is enforced by the store through unique indexes.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Exists(ctx context.Context, email, username string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update *domain.UserUpdate, passwordHash string) (*domain.User, error)
	SetPasswordHash(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
