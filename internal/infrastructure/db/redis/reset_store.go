package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adminhub/console-api/internal/core/domain"
)

// ResetStore maps password-reset tokens to user ids with an expiry.
type ResetStore struct {
	client *redis.Client
}

func NewResetStore(client *redis.Client) *ResetStore {
	return &ResetStore{client: client}
}

func (r *ResetStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := r.client.SetEx(ctx, r.key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("reset token save: %w", err)
	}
	return nil
}

func (r *ResetStore) Lookup(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, r.key(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("reset token lookup: %w", err)
	}
	return userID, nil
}

func (r *ResetStore) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.key(token)).Err(); err != nil {
		return fmt.Errorf("reset token delete: %w", err)
	}
	return nil
}

func (r *ResetStore) key(token string) string {
	return "reset_token:" + token
}
