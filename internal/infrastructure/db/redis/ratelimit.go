package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// allowScript counts one attempt and returns {count, ttl_ms}. A counter
// without a TTL gets the window again, so a key can never outlive it.
var allowScript = redis.NewScript(`
	local n = redis.call('INCR', KEYS[1])
	local ttl = redis.call('PTTL', KEYS[1])
	if ttl < 0 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
		ttl = tonumber(ARGV[1])
	end
	return { n, ttl }
`)

// LoginLimiter caps login attempts per key within a fixed window.
// Key format: login:attempts:<key>
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter allowing limit attempts per window.
func NewLoginLimiter(client *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, limit: int64(limit), window: window}
}

// Allow records one attempt for key. When the window is exhausted it reports
// false together with the time left until the window resets.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	vals, err := allowScript.Run(ctx, l.client, []string{l.key(key)}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("login limiter: %w", err)
	}
	if len(vals) != 2 {
		return false, 0, fmt.Errorf("login limiter: unexpected script reply %v", vals)
	}

	if vals[0] <= l.limit {
		return true, 0, nil
	}

	retry := time.Duration(vals[1]) * time.Millisecond
	if retry <= 0 {
		retry = l.window
	}
	return false, retry, nil
}

// Reset clears the attempt counter for key, e.g. after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key)).Err()
}

func (l *LoginLimiter) key(key string) string {
	return fmt.Sprintf("login:attempts:%s", key)
}
