package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

const (
	// DefaultTokenTTL applies when Issue is called without an explicit
	// expiry. The login endpoint passes LoginTokenTTL instead; both
	// call-site values are kept deliberately distinct.
	DefaultTokenTTL = 120 * time.Minute
	LoginTokenTTL   = 30 * time.Minute

	maxLoginAttempts = 5
	throttleWindow   = 5 * time.Minute
)

// AuthService implements token issuance, validation and the login
// throttle on top of the credential and session stores.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	throttle  ports.ThrottleStore
	jwtSecret string
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, throttle ports.ThrottleStore, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		throttle:  throttle,
		jwtSecret: jwtSecret,
	}
}

// Login verifies credentials under the attempt throttle. Five failures
// within a five-minute window lock the identity out until the window
// expires; the credential check is skipped entirely while locked.
// A successful login clears the counters and issues a fresh token.
func (s *AuthService) Login(ctx context.Context, username, password string, ttl time.Duration) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	attempts, lastAttempt, err := s.throttle.Attempts(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if attempts >= maxLoginAttempts && !lastAttempt.IsZero() && now.Sub(lastAttempt) < throttleWindow {
		return "", nil, domain.ErrRateLimited
	}

	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			if recordErr := s.throttle.RecordFailure(ctx, username, attempts+1, now); recordErr != nil {
				return "", nil, recordErr
			}
		}
		return "", nil, err
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		return "", nil, err
	}

	token, err := s.Issue(ctx, user.Username, ttl)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// authenticate resolves the user and checks the password. Unknown
// usernames and wrong passwords both surface as ErrInvalidCredentials
// so the response does not reveal which part failed.
func (s *AuthService) authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Issue signs a token for subject and rotates it into the session
// store, invalidating any previously registered token for the same
// subject. After Issue returns, exactly one token resolves to subject
// through the store (last write wins under concurrent issuance).
func (s *AuthService) Issue(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	if err := s.sessions.Rotate(ctx, subject, token); err != nil {
		return "", err
	}
	return token, nil
}

// Validate checks the token signature and expiry claim, then confirms
// the token is still registered in the session store. A structurally
// valid token that is absent from the store fails with ErrTokenExpired,
// which is what lets logout take effect before the signature expires.
func (s *AuthService) Validate(ctx context.Context, token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrTokenInvalid
	}

	registered, err := s.sessions.IsRegistered(ctx, token)
	if err != nil {
		return "", err
	}
	if !registered {
		return "", domain.ErrTokenExpired
	}
	return subject, nil
}

// Logout revokes the presented token. Revoking a token that is no
// longer registered yields ErrTokenExpired.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	existed, err := s.sessions.Revoke(ctx, token)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrTokenExpired
	}
	return nil
}
