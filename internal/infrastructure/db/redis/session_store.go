package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// storageTTL caps every session entry independently of the token's own
// signature expiry. A token can therefore outlive its JWT exp claim in
// the store, but never validates once the claim has expired.
const storageTTL = 48 * time.Hour

// SessionStore keeps two mappings per issued token:
//
//	session:token:<token> → subject
//	session:user:<subject> → token
//
// The second lets Rotate find and invalidate a subject's previous token.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Rotate deletes the subject's previous token entry, if one is
// registered, then stores the new token under both mappings. The
// sequence is not transactional: concurrent rotation for the same
// subject is last-write-wins and can transiently leave a stale entry.
func (s *SessionStore) Rotate(ctx context.Context, subject, token string) error {
	userKey := s.userKey(subject)

	previous, err := s.client.Get(ctx, userKey).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("session lookup: %w", err)
	}
	if previous != "" {
		if err := s.client.Del(ctx, s.tokenKey(previous)).Err(); err != nil {
			return fmt.Errorf("session invalidate: %w", err)
		}
	}

	if err := s.client.SetEx(ctx, s.tokenKey(token), subject, storageTTL).Err(); err != nil {
		return fmt.Errorf("session register: %w", err)
	}
	if err := s.client.SetEx(ctx, userKey, token, storageTTL).Err(); err != nil {
		return fmt.Errorf("session pointer: %w", err)
	}
	return nil
}

func (s *SessionStore) IsRegistered(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.tokenKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) Revoke(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Del(ctx, s.tokenKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("session revoke: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) tokenKey(token string) string {
	return "session:token:" + token
}

func (s *SessionStore) userKey(subject string) string {
	return "session:user:" + subject
}
