// Package validate checks stored BrickLink part IDs against the live
// catalog and self-heals stale mappings.
//
// # State machine
//
// A request carries a stored BrickLink ID and optionally the Rebrickable
// ID it was derived from. The stored ID is checked first; when it no
// longer exists and a source ID was supplied, an ordered list of candidate
// IDs is probed sequentially, first match wins. A winning candidate is
// returned immediately and the mapping correction is persisted on a
// detached task whose failure never affects the response.
//
// External failures (timeout, malformed response) degrade to "no valid
// ID" rather than erroring: the caller's fallback of showing the
// unvalidated link is always safe.
//
// This is the one endpoint where an external actor can drive external API
// volume, so the handler enforces both a caller-scoped and a global rate
// limit before any catalog call.
package validate
