// Package catalog is the read/write collaborator over the hosted mapping
// tables that reconcile the Rebrickable and BrickLink identifier spaces.
//
// The Store exposes keyed reads (bulk mapping tables, single stored IDs,
// batched minifig lookups) and keyed writes with update-if-exists
// semantics: writing a correction for a row that does not exist is a
// no-op, never an error, because self-healing is best-effort.
//
// ContextProvider builds the resolver's preloaded lookup tables from the
// store, caching them with a TTL and singleflight so concurrent bulk
// operations share one build.
package catalog
