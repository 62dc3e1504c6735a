// Package export renders marketplace-import manifests from inventory
// shortage rows.
//
// Three sibling generators share one contract: rows in, CSV text plus a
// structured list of unmapped rows out. A row that cannot be expressed in
// the target format is never dropped silently; it is excluded from the
// CSV and reported in the unmapped list so the caller can surface it.
// Writing the CSV anywhere is the caller's concern; the optional archive
// upload in Service is best-effort bookkeeping on top.
package export
