package export

import (
	"context"

	"brick-manager/core/csv"
	"brick-manager/feature/resolve"
)

var bricklinkHeader = []string{"Item Type", "Item No", "Color", "Quantity", "Condition", "Description"}

const defaultCondition = "N"

// IdentityResolver supplies identities for rows that arrive without a
// precomputed one, e.g. an export rebuilt from an older cache. May be nil,
// in which case such rows go straight to unmapped.
type IdentityResolver interface {
	ResolveRow(ctx context.Context, partID string, colorID int) (*resolve.PartIdentity, error)
}

// GenerateBricklink renders the wanted-list manifest. Minifig parents with
// a BrickLink minifig ID become M lines with color 0; fully mapped parts
// become P lines; everything else lands in unmapped.
func GenerateBricklink(ctx context.Context, rows []MissingRow, opts Options, fallback IdentityResolver) BricklinkOutput {
	condition := opts.Condition
	if condition == "" {
		condition = defaultCondition
	}

	body := make([][]any, 0, len(rows))
	unmapped := make([]MissingRow, 0)
	minifigIDs := make([]string, 0)

	for _, row := range rows {
		identity := row.Identity
		if identity == nil && fallback != nil {
			// Slow path: per-row lookup before giving up.
			resolved, err := fallback.ResolveRow(ctx, row.PartID, row.ColorID)
			if err == nil {
				identity = resolved
			}
		}

		if identity != nil && identity.RowType == resolve.RowTypeMinifigParent && identity.BLMinifigID != nil {
			quantity := row.QuantityRequired
			if quantity <= 0 {
				quantity = row.QuantityMissing
			}
			if quantity <= 0 {
				unmapped = append(unmapped, row)
				continue
			}
			body = append(body, []any{"M", *identity.BLMinifigID, 0, quantity, condition, ""})
			minifigIDs = append(minifigIDs, *identity.BLMinifigID)
			continue
		}

		if identity == nil || identity.BLPartID == nil || identity.BLColorID == nil || row.QuantityMissing <= 0 {
			unmapped = append(unmapped, row)
			continue
		}

		body = append(body, []any{"P", *identity.BLPartID, *identity.BLColorID, row.QuantityMissing, condition, ""})
	}

	return BricklinkOutput{
		Output: Output{
			CSV:      csv.Encode(bricklinkHeader, body, csv.Options{IncludeBOM: opts.IncludeBOM}),
			Unmapped: unmapped,
		},
		MinifigIDs: minifigIDs,
	}
}
