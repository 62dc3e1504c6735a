// Package ratelimit provides a fixed-window rate limiter backed by a shared
// Redis counter with a process-local fallback.
//
// # Degradation
//
// The primary path performs an atomic increment-and-check against Redis so
// the limit holds across all server processes. On any Redis failure the
// limiter degrades to an in-process fixed-window counter keyed identically,
// logging a warning per activation. A per-process limit is weaker than a
// distributed one but strictly better than failing open or hard-failing
// the caller.
//
// # Outcome
//
// Consume never returns an error: backend failures are absorbed by the
// fallback, and the only caller-visible outcomes are allowed or denied
// with a retry-after hint.
package ratelimit
