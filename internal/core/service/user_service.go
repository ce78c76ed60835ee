package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

const resetTokenTTL = time.Hour

// UserService implements account CRUD, self-service registration and
// the password-reset flow.
type UserService struct {
	repo     ports.UserRepository
	resets   ports.ResetStore
	outbox   ports.MailEnqueuer
	resetURL string
}

// NewUserService builds a UserService. resetURL is the front-end base
// used to compose reset links, e.g. "http://localhost:3000".
func NewUserService(repo ports.UserRepository, resets ports.ResetStore, outbox ports.MailEnqueuer, resetURL string) *UserService {
	return &UserService{repo: repo, resets: resets, outbox: outbox, resetURL: resetURL}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) Exists(ctx context.Context, email, username string) (bool, error) {
	return s.repo.Exists(ctx, email, username)
}

func (s *UserService) Create(ctx context.Context, username, email, fullName, password, role string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	return s.insert(ctx, username, email, fullName, password, role)
}

// Register is the public registration path: the role is always "user"
// and the account starts enabled.
func (s *UserService) Register(ctx context.Context, username, email, fullName, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.insert(ctx, username, email, fullName, password, domain.RoleUser)
}

func (s *UserService) insert(ctx context.Context, username, email, fullName, password, role string) (*domain.User, error) {
	exists, err := s.repo.Exists(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Role:         role,
		Disabled:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *UserService) Update(ctx context.Context, id string, update *domain.UserUpdate) (*domain.User, error) {
	var hash string
	if update.Password != nil && *update.Password != "" {
		h, err := hashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	if update.Role != nil && !domain.ValidRole(*update.Role) {
		return nil, fmt.Errorf("unknown role %q", *update.Role)
	}
	return s.repo.Update(ctx, id, update, hash)
}

// Delete removes the account. Owner accounts are never deleted.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleOwner {
		return domain.ErrOwnerImmutable
	}
	return s.repo.Delete(ctx, id)
}

// ForgotPassword stores a one-hour reset token for the account and
// enqueues the reset link for delivery. Delivery is fire-and-forget;
// the caller only learns whether the token was stored.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := uuid.NewString() + uuid.NewString()
	if err := s.resets.Save(ctx, token, user.ID, resetTokenTTL); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password/%s", s.resetURL, token)
	s.outbox.Enqueue(domain.OutboundEmail{
		Subject:    "Password Reset Request",
		Body:       fmt.Sprintf("Please click on the link to reset your password: %s, the URL is valid for one hour.", link),
		Recipients: []string{email},
	})
	return nil
}

// ResetPassword consumes the token, stores the new password hash and
// deletes the token so it cannot be replayed.
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.resets.Lookup(ctx, token)
	if err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.SetPasswordHash(ctx, userID, hash); err != nil {
		return err
	}
	return s.resets.Delete(ctx, token)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
