package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// counterTTL bounds the lockout window: both keys expire five minutes
// after the last recorded failure, which resets the count implicitly.
const counterTTL = 5 * time.Minute

// ThrottleStore persists login failure counters per identity.
type ThrottleStore struct {
	client *redis.Client
}

func NewThrottleStore(client *redis.Client) *ThrottleStore {
	return &ThrottleStore{client: client}
}

// Attempts reads the failure count and last-failure time. Missing keys
// read as zero values.
func (t *ThrottleStore) Attempts(ctx context.Context, identity string) (int, time.Time, error) {
	count, err := t.client.Get(ctx, t.attemptsKey(identity)).Int()
	if err != nil && err != redis.Nil {
		return 0, time.Time{}, fmt.Errorf("throttle read: %w", err)
	}

	raw, err := t.client.Get(ctx, t.lastAttemptKey(identity)).Result()
	if err != nil {
		if err == redis.Nil {
			return count, time.Time{}, nil
		}
		return 0, time.Time{}, fmt.Errorf("throttle read: %w", err)
	}

	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return count, time.Time{}, nil
	}
	return count, time.Unix(unix, 0).UTC(), nil
}

// RecordFailure stores the failure count and timestamp, refreshing the
// five-minute window on every write.
func (t *ThrottleStore) RecordFailure(ctx context.Context, identity string, attempts int, at time.Time) error {
	if err := t.client.SetEx(ctx, t.attemptsKey(identity), attempts, counterTTL).Err(); err != nil {
		return fmt.Errorf("throttle write: %w", err)
	}
	if err := t.client.SetEx(ctx, t.lastAttemptKey(identity), at.Unix(), counterTTL).Err(); err != nil {
		return fmt.Errorf("throttle write: %w", err)
	}
	return nil
}

func (t *ThrottleStore) Reset(ctx context.Context, identity string) error {
	if err := t.client.Del(ctx, t.attemptsKey(identity), t.lastAttemptKey(identity)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *ThrottleStore) attemptsKey(identity string) string {
	return "login:" + identity + ":attempts"
}

func (t *ThrottleStore) lastAttemptKey(identity string) string {
	return "login:" + identity + ":last_attempt"
}
