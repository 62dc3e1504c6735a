package resolve

// Resolve maps one inventory row onto its canonical cross-catalog identity.
// It is pure and idempotent: the same row and context always yield the
// same identity.
func Resolve(row Row, ctx *Context) PartIdentity {
	identity := PartIdentity{
		RowType:   row.Type(),
		RBPartID:  row.RBPartID,
		RBColorID: row.RBColorID,
	}

	// Part precedence: explicit per-row override, then mapping table,
	// then default-same.
	blPart := row.RBPartID
	if mapped, ok := ctx.PartMappings[row.RBPartID]; ok {
		blPart = mapped
	}
	if row.BricklinkPartID != "" {
		blPart = row.BricklinkPartID
	}
	identity.BLPartID = &blPart

	// Color has exactly one rule: mapped or nil. Never defaulted.
	if blColor, ok := ctx.RBToBLColor[row.RBColorID]; ok {
		identity.BLColorID = &blColor
	}

	if identity.RowType == RowTypeMinifigParent && row.blMinifigID != "" {
		fig := row.blMinifigID
		identity.BLMinifigID = &fig
	}

	if row.ElementID != "" {
		element := row.ElementID
		identity.ElementID = &element
	}

	return identity
}

// ResolveAll resolves a full inventory, preserving row order.
func ResolveAll(rows []Row, ctx *Context) []PartIdentity {
	identities := make([]PartIdentity, 0, len(rows))
	for _, row := range rows {
		identities = append(identities, Resolve(row, ctx))
	}
	return identities
}

// Index resolves rows into a map keyed by canonical key. Rows must carry
// distinct (part, color) pairs within one call; a duplicate is a caller
// contract violation and the later row wins.
func Index(rows []Row, ctx *Context) map[string]PartIdentity {
	index := make(map[string]PartIdentity, len(rows))
	for _, row := range rows {
		identity := Resolve(row, ctx)
		index[identity.CanonicalKey()] = identity
	}
	return index
}
