// Package cache provides a generic in-memory LRU cache with optional
// per-entry TTL.
//
// The cache is safe for concurrent use and is designed to be
// constructor-injected with an explicit lifetime (application-scoped for
// existence-check memoization, request-scoped where isolation matters)
// rather than accessed as package-level state.
//
// # Semantics
//
//   - Set evicts the single least-recently-used entry when at capacity.
//   - Get refreshes recency; Has does not.
//   - Expired entries are treated as absent and evicted lazily on the
//     Get/Has that observes them; there is no background sweep.
//   - Entries and Values take a point-in-time snapshot that filters
//     expired entries without mutating cache state.
package cache
