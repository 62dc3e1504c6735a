package resolve

import "strconv"

// RowType discriminates the variants of a resolved inventory line.
type RowType string

const (
	// RowTypeCatalogPart is a plain catalog part line.
	RowTypeCatalogPart RowType = "catalog_part"
	// RowTypeMinifigParent is a whole minifig exported as one unit.
	RowTypeMinifigParent RowType = "minifig_parent"
	// RowTypeMinifigSubpart is a part belonging to a minifig's inventory.
	RowTypeMinifigSubpart RowType = "minifig_subpart"
)

// PartIdentity is the canonical reconciled view of one inventory line.
// BrickLink fields stay nil until a mapping resolves them; BLMinifigID is
// only ever set on RowTypeMinifigParent rows.
type PartIdentity struct {
	RowType     RowType `json:"row_type"`
	RBPartID    string  `json:"rb_part_id"`
	BLPartID    *string `json:"bl_part_id"`
	RBColorID   int     `json:"rb_color_id"`
	BLColorID   *int    `json:"bl_color_id"`
	BLMinifigID *string `json:"bl_minifig_id,omitempty"`
	ElementID   *string `json:"element_id,omitempty"`
}

// CanonicalKey is the stable dedup/lookup key within a single set's
// inventory: "<rbPartId>:<rbColorId>".
func (p PartIdentity) CanonicalKey() string {
	return p.RBPartID + ":" + strconv.Itoa(p.RBColorID)
}

// IsMinifig reports whether the line derives from a minifig.
func (p PartIdentity) IsMinifig() bool {
	return p.RowType == RowTypeMinifigParent || p.RowType == RowTypeMinifigSubpart
}

// Row is one raw inventory line handed in by the catalog collaborator.
// Construct minifig variants through the variant constructors so the
// minifig ID cannot leak onto plain part rows.
type Row struct {
	RBPartID  string
	RBColorID int
	// BricklinkPartID is the explicit per-row override; it always wins
	// over the bulk mapping table.
	BricklinkPartID string
	ElementID       string

	rowType     RowType
	blMinifigID string
}

// NewRow creates a plain catalog part row.
func NewRow(rbPartID string, rbColorID int) Row {
	return Row{RBPartID: rbPartID, RBColorID: rbColorID, rowType: RowTypeCatalogPart}
}

// NewMinifigParentRow creates a minifig parent row. blFigID may be empty
// when the minifig has not been mapped yet.
func NewMinifigParentRow(rbFigID string, blFigID string) Row {
	return Row{RBPartID: rbFigID, rowType: RowTypeMinifigParent, blMinifigID: blFigID}
}

// NewMinifigSubpartRow creates a row for a part inside a minifig's inventory.
func NewMinifigSubpartRow(rbPartID string, rbColorID int) Row {
	return Row{RBPartID: rbPartID, RBColorID: rbColorID, rowType: RowTypeMinifigSubpart}
}

// Type returns the row's variant, defaulting to a plain catalog part.
func (r Row) Type() RowType {
	if r.rowType == "" {
		return RowTypeCatalogPart
	}
	return r.rowType
}
