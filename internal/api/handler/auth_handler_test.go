package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/console-api/internal/api/middleware"
	"github.com/adminhub/console-api/internal/core/domain"
)

type stubAuthService struct {
	token    string
	user     *domain.User
	loginErr error

	sessions map[string]string
}

func (s *stubAuthService) Login(context.Context, string, string, time.Duration) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) Issue(context.Context, string, time.Duration) (string, error) {
	return s.token, nil
}

func (s *stubAuthService) Validate(_ context.Context, token string) (string, error) {
	subject, ok := s.sessions[token]
	if !ok {
		return "", domain.ErrTokenExpired
	}
	return subject, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	if _, ok := s.sessions[token]; !ok {
		return domain.ErrTokenExpired
	}
	delete(s.sessions, token)
	return nil
}

func newLoginContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandler_Success(t *testing.T) {
	svc := &stubAuthService{
		token: "tok-abc",
		user:  &domain.User{Username: "alice", Role: domain.RoleUser},
	}
	h := NewAuthHandler(svc)

	c, rec := newLoginContext(`{"username":"alice","password":"pass123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "tok-abc" {
		t.Fatalf("unexpected token %q", resp.AccessToken)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", resp.TokenType)
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newLoginContext(`{"username":"alice","password":"wrong"}`)
	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestLoginHandler_RateLimited(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrRateLimited})

	c, _ := newLoginContext(`{"username":"alice","password":"pass123"}`)
	err := h.Login(c)
	if err != domain.ErrRateLimited {
		t.Fatalf("expected ErrRateLimited to propagate, got %v", err)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newLoginContext(`{"username":"alice"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %v", err)
	}
}

func TestLogoutHandler(t *testing.T) {
	svc := &stubAuthService{sessions: map[string]string{"tok-abc": "alice"}}
	h := NewAuthHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/logout", nil)
	req.Header.Set(middleware.IdentityHeader, "tok-abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLogoutHandler_UnknownToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{sessions: map[string]string{}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/logout", nil)
	req.Header.Set(middleware.IdentityHeader, "gone")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown token, got %v", err)
	}
}
