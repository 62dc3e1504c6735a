package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Options controls a single Consume call.
type Options struct {
	// Window is the fixed window length.
	Window time.Duration
	// MaxHits is the maximum allowed hits per key within one window.
	MaxHits int
}

// Decision is the outcome of a Consume call.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool
	// RetryAfterSeconds is the ceiling of the remaining window time.
	// Zero when the request is allowed.
	RetryAfterSeconds int
}

// bucket is the in-memory fallback state for one key.
type bucket struct {
	count           int
	windowStartedAt time.Time
}

// Limiter enforces fixed-window limits, preferring the shared backend and
// degrading to process-local counters when it fails.
type Limiter struct {
	backend Backend
	logger  *zap.Logger

	mu      sync.Mutex
	buckets map[string]*bucket

	// now is swapped in tests to control window expiry.
	now func() time.Time
}

// New creates a limiter. A nil backend means local-only enforcement.
func New(backend Backend, logger *zap.Logger) *Limiter {
	return &Limiter{
		backend: backend,
		logger:  logger,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Consume records one hit for key and decides whether it is allowed.
// Backend failure is a normal condition handled by the local fallback;
// Consume never fails.
func (l *Limiter) Consume(ctx context.Context, key string, opts Options) Decision {
	if l.backend != nil {
		count, remaining, err := l.backend.Hit(ctx, key, opts.Window)
		if err == nil {
			return decide(count, remaining, opts)
		}
		l.logger.Warn("Rate limit backend unavailable, falling back to local counters",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return l.consumeLocal(key, opts)
}

// consumeLocal applies the fixed-window count against in-process state.
func (l *Limiter) consumeLocal(key string, opts Options) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || now.Sub(b.windowStartedAt) >= opts.Window {
		b = &bucket{windowStartedAt: now}
		l.buckets[key] = b
	}
	b.count++

	remaining := b.windowStartedAt.Add(opts.Window).Sub(now)
	return decide(int64(b.count), remaining, opts)
}

func decide(count int64, remaining time.Duration, opts Options) Decision {
	if count <= int64(opts.MaxHits) {
		return Decision{Allowed: true}
	}
	return Decision{RetryAfterSeconds: retryAfter(remaining)}
}

// retryAfter is the ceiling of the remaining window time in seconds.
func retryAfter(remaining time.Duration) int {
	if remaining <= 0 {
		return 1
	}
	return int(math.Ceil(remaining.Seconds()))
}
