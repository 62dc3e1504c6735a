// Package minifig resolves Rebrickable minifig IDs to their BrickLink
// counterparts in bulk.
//
// All persisted mappings for a request are fetched in a single multi-key
// query, then the input is partitioned into already-mapped, needs
// resolution, and unmappable. Only the middle group falls through to
// per-ID external lookups, and fresh resolutions are persisted
// best-effort so later requests hit the table. Amortized over a whole
// set's inventory this costs one or two storage round trips instead of
// one per minifig.
package minifig
