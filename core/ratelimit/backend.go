package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Backend is the shared counter store primitive: an atomic increment within
// a time window, returning the new count and the remaining window time.
type Backend interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, remaining time.Duration, err error)
}

// hitScript increments the window counter, arming the window expiry on the
// first hit, and returns {count, pttl}.
var hitScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {count, ttl}
`)

// RedisBackend implements Backend on a shared Redis instance.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend creates a Redis-backed counter store.
func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

// Hit atomically increments the fixed-window counter for key.
func (b *RedisBackend) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := hitScript.Run(ctx, b.client, []string{keyPrefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("unexpected script reply length %d", len(res))
	}

	remaining := time.Duration(res[1]) * time.Millisecond
	if remaining < 0 {
		// PTTL returns -1/-2 when the key has no expiry or vanished;
		// treat the full window as remaining.
		remaining = window
	}
	return res[0], remaining, nil
}
