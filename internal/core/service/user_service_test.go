package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/adminhub/console-api/internal/core/domain"
)

type stubResetStore struct {
	tokens map[string]string
}

func newStubResetStore() *stubResetStore {
	return &stubResetStore{tokens: make(map[string]string)}
}

func (s *stubResetStore) Save(_ context.Context, token, userID string, _ time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s *stubResetStore) Lookup(_ context.Context, token string) (string, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrResetTokenInvalid
	}
	return userID, nil
}

func (s *stubResetStore) Delete(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

type captureOutbox struct {
	sent []domain.OutboundEmail
}

func (o *captureOutbox) Enqueue(email domain.OutboundEmail) {
	o.sent = append(o.sent, email)
}

func newTestUserService() (*UserService, *stubUserRepo, *stubResetStore, *captureOutbox) {
	repo := newStubUserRepo()
	resets := newStubResetStore()
	outbox := &captureOutbox{}
	return NewUserService(repo, resets, outbox, "http://localhost:3000"), repo, resets, outbox
}

func TestRegister_ForcesUserRole(t *testing.T) {
	svc, _, _, _ := newTestUserService()

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "Alice", "password1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.Disabled {
		t.Fatalf("new accounts must start enabled")
	}
	if user.PasswordHash == "password1" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")) != nil {
		t.Fatalf("stored hash does not match password")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	svc, _, _, _ := newTestUserService()

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "Bob", "password1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other@example.com", "Bob", "password1"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "robert", "bob@example.com", "Bob", "password1"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestCreate_RejectsUnknownRole(t *testing.T) {
	svc, _, _, _ := newTestUserService()

	if _, err := svc.Create(context.Background(), "eve", "eve@example.com", "Eve", "password1", "superuser"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestDelete_OwnerUndeletable(t *testing.T) {
	svc, repo, _, _ := newTestUserService()
	repo.add("root", "ownerpass", domain.RoleOwner, false)
	repo.add("joe", "userpass", domain.RoleUser, false)

	if err := svc.Delete(context.Background(), "root"); !errors.Is(err, domain.ErrOwnerImmutable) {
		t.Fatalf("expected ErrOwnerImmutable, got %v", err)
	}
	if err := svc.Delete(context.Background(), "joe"); err != nil {
		t.Fatalf("deleting a regular user failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "joe"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestForgotPassword_EnqueuesResetMail(t *testing.T) {
	svc, repo, resets, outbox := newTestUserService()
	repo.add("alice", "password1", domain.RoleUser, false)

	if err := svc.ForgotPassword(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("ForgotPassword returned error: %v", err)
	}

	if len(resets.tokens) != 1 {
		t.Fatalf("expected 1 stored reset token, got %d", len(resets.tokens))
	}
	if len(outbox.sent) != 1 {
		t.Fatalf("expected 1 enqueued email, got %d", len(outbox.sent))
	}

	email := outbox.sent[0]
	if email.Recipients[0] != "alice@example.com" {
		t.Fatalf("unexpected recipient %q", email.Recipients[0])
	}
	if !strings.Contains(email.Body, "http://localhost:3000/reset-password/") {
		t.Fatalf("reset link missing from body: %q", email.Body)
	}
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc, _, _, outbox := newTestUserService()

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(outbox.sent) != 0 {
		t.Fatalf("no email should be enqueued for unknown accounts")
	}
}

func TestResetPassword(t *testing.T) {
	svc, repo, resets, _ := newTestUserService()
	repo.add("alice", "oldpass99", domain.RoleUser, false)
	resets.tokens["tok123"] = "alice"

	if err := svc.ResetPassword(context.Background(), "tok123", "newpass99"); err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}

	user, _ := repo.FindByUsername(context.Background(), "alice")
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpass99")) != nil {
		t.Fatalf("password was not updated")
	}

	// Token is single-use.
	if err := svc.ResetPassword(context.Background(), "tok123", "again1234"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Fatalf("expected ErrResetTokenInvalid on reuse, got %v", err)
	}
}

func TestResetPassword_InvalidToken(t *testing.T) {
	svc, _, _, _ := newTestUserService()

	if err := svc.ResetPassword(context.Background(), "bogus", "newpass99"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
	}
}
