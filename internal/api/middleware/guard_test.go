package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/console-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.FindByUsername(ctx, id)
}

func (r *stubUserRepo) List(context.Context) ([]*domain.User, error) { return nil, nil }

func (r *stubUserRepo) Exists(context.Context, string, string) (bool, error) { return false, nil }

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) Update(context.Context, string, *domain.UserUpdate, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SetPasswordHash(context.Context, string, string) error { return nil }

func (r *stubUserRepo) Delete(context.Context, string) error { return nil }

func runGuard(t *testing.T, repo *stubUserRepo, username, method string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if username != "" {
		c.Set("username", username)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return Guard(repo)(next)(c)
}

func TestGuard_PermissionMatrix(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"owner": {ID: "1", Username: "owner", Role: domain.RoleOwner},
		"admin": {ID: "2", Username: "admin", Role: domain.RoleAdmin},
		"user":  {ID: "3", Username: "user", Role: domain.RoleUser},
	}}

	tests := []struct {
		username string
		method   string
		allowed  bool
	}{
		{"owner", http.MethodGet, true},
		{"owner", http.MethodPost, true},
		{"owner", http.MethodPut, true},
		{"owner", http.MethodDelete, true},
		{"admin", http.MethodGet, true},
		{"admin", http.MethodPost, true},
		{"admin", http.MethodPut, true},
		{"admin", http.MethodDelete, false},
		{"user", http.MethodGet, true},
		{"user", http.MethodPost, false},
		{"user", http.MethodPut, false},
		{"user", http.MethodDelete, false},
		{"user", http.MethodPatch, false},
	}

	for _, tt := range tests {
		err := runGuard(t, repo, tt.username, tt.method)
		if tt.allowed && err != nil {
			t.Errorf("%s %s: expected allow, got %v", tt.username, tt.method, err)
		}
		if !tt.allowed && !errors.Is(err, domain.ErrPermissionDenied) {
			t.Errorf("%s %s: expected ErrPermissionDenied, got %v", tt.username, tt.method, err)
		}
	}
}

func TestGuard_DisabledAccount(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"frozen": {ID: "4", Username: "frozen", Role: domain.RoleOwner, Disabled: true},
	}}

	// Disabled is checked before permissions, so even an owner with a
	// permitted verb is rejected.
	err := runGuard(t, repo, "frozen", http.MethodGet)
	if !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestGuard_UnknownRoleDenied(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"odd": {ID: "5", Username: "odd", Role: "superuser"},
	}}

	err := runGuard(t, repo, "odd", http.MethodGet)
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for unknown role, got %v", err)
	}
}

func TestGuard_DeletedAccount(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	// Token subject no longer resolves to an account.
	err := runGuard(t, repo, "ghost", http.MethodGet)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
