package export

import (
	"brick-manager/feature/resolve"
)

// MissingRow is one exportable shortage line, produced by the inventory
// shortage computation and consumed exactly once by a generator.
type MissingRow struct {
	SetNumber        string                `json:"set_number"`
	PartID           string                `json:"part_id"`
	ColorID          int                   `json:"color_id"`
	QuantityMissing  int                   `json:"quantity_missing"`
	ElementID        *string               `json:"element_id,omitempty"`
	Identity         *resolve.PartIdentity `json:"identity,omitempty"`
	QuantityRequired int                   `json:"quantity_required,omitempty"`
}

// elementID prefers the row's own element code, falling back to the
// resolved identity's.
func (r MissingRow) elementID() string {
	if r.ElementID != nil && *r.ElementID != "" {
		return *r.ElementID
	}
	if r.Identity != nil && r.Identity.ElementID != nil {
		return *r.Identity.ElementID
	}
	return ""
}

// isMinifigDerived reports whether the row comes from a minifig.
func (r MissingRow) isMinifigDerived() bool {
	return r.Identity != nil && r.Identity.IsMinifig()
}

// Options controls manifest generation.
type Options struct {
	// IncludeBOM prefixes the CSV with a UTF-8 byte-order mark.
	IncludeBOM bool `json:"include_bom"`
	// IncludeMinifigs appends whole-unit minifig lines to the
	// Rebrickable manifest.
	IncludeMinifigs bool `json:"include_minifigs"`
	// Condition is the BrickLink wanted-list condition column (default N).
	Condition string `json:"condition"`
	// Archive uploads the generated manifest to object storage.
	Archive bool `json:"archive"`
}

// Output is the shared generator result shape.
type Output struct {
	CSV      string
	Unmapped []MissingRow
}

// BricklinkOutput additionally reports which minifig IDs made it into the
// manifest, for downstream bookkeeping.
type BricklinkOutput struct {
	Output
	MinifigIDs []string
}
