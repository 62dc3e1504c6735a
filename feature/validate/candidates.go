package validate

import "regexp"

// subVariantSuffix matches identifiers of the form digits plus exactly one
// trailing lowercase letter (e.g. "3957a"). The trailing letter denotes a
// sub-variant in both catalogs' numbering; stripping it recovers the base
// part. This is a domain heuristic, not a verified identifier grammar, so
// a stripped candidate is only accepted after a live existence check.
var subVariantSuffix = regexp.MustCompile(`^(\d+)[a-z]$`)

// stripSubVariant removes the sub-variant letter, returning the input
// unchanged when the pattern does not apply.
func stripSubVariant(id string) string {
	if m := subVariantSuffix.FindStringSubmatch(id); m != nil {
		return m[1]
	}
	return id
}

// candidateStrategy proposes one corrected ID, or empty when it has
// nothing to offer. Strategies are evaluated in declaration order; the
// order is part of the correctness contract, mirroring a preference order
// rather than best-effort racing.
type candidateStrategy func(stored, source string) string

var candidateStrategies = []candidateStrategy{
	// The raw source ID: the two catalogs usually share part numbers.
	func(stored, source string) string { return source },
	// The source ID with its sub-variant letter stripped.
	func(stored, source string) string { return stripSubVariant(source) },
	// The stored ID with its sub-variant letter stripped.
	func(stored, source string) string { return stripSubVariant(stored) },
}

// candidates builds the ordered, de-duplicated probe list for a stored ID
// that failed validation. The stored ID itself is never re-probed.
func candidates(stored, source string) []string {
	seen := map[string]bool{stored: true, "": true}
	var out []string
	for _, strategy := range candidateStrategies {
		id := strategy(stored, source)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
