// Package resolve maps raw Rebrickable inventory rows onto their BrickLink
// equivalents using preloaded mapping tables.
//
// Resolution is a pure function over a read-only Context: no I/O, no
// mutation, byte-identical output for identical input. Ambiguity is not an
// error; an unmappable field stays nil and downstream consumers partition
// such rows into their unmapped output.
//
// # Precedence
//
// The BrickLink part ID is chosen, in strict order: the row's explicit
// per-row override, then the bulk mapping table, then the Rebrickable ID
// itself (the two catalogs share literal part numbers far more often than
// not). Color is the opposite: a missing color-map entry means nil, never
// a default, because "this color truly maps 1:1" and "we have no idea"
// must stay distinguishable.
package resolve
