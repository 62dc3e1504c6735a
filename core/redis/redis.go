package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect creates a Redis client and verifies the connection with a ping.
// Redis backs the shared rate-limit counters only; callers should treat a
// failed connection as degraded (the limiter falls back to local counters),
// not fatal.
func Connect(cfg Config) (*redis.Client, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 2
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeoutDuration,
		ReadTimeout:  timeoutDuration,
		WriteTimeout: timeoutDuration,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
