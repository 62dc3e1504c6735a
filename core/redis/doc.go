// Package redis provides the Redis client used by the shared rate limiter.
//
// Redis holds the distributed fixed-window counters that coordinate rate
// limiting across server processes. It is an availability-optional
// dependency: when unreachable, core/ratelimit degrades to process-local
// counters.
package redis
