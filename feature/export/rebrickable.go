package export

import (
	"brick-manager/core/csv"
	"brick-manager/feature/resolve"
)

var rebrickableHeader = []string{"part_num", "color_id", "quantity"}

// GenerateRebrickable renders the source-catalog manifest. Rows with no
// shortage are filtered out, and minifig-derived rows are excluded unless
// IncludeMinifigs is set, in which case minifig parents are appended as
// whole units using their required quantity.
func GenerateRebrickable(rows []MissingRow, opts Options) Output {
	body := make([][]any, 0, len(rows))
	var minifigLines [][]any

	for _, row := range rows {
		if row.isMinifigDerived() {
			if opts.IncludeMinifigs && row.Identity.RowType == resolve.RowTypeMinifigParent && row.QuantityRequired > 0 {
				minifigLines = append(minifigLines, []any{row.PartID, row.ColorID, row.QuantityRequired})
			}
			continue
		}
		if row.QuantityMissing <= 0 {
			continue
		}
		body = append(body, []any{row.PartID, row.ColorID, row.QuantityMissing})
	}

	body = append(body, minifigLines...)

	return Output{
		CSV:      csv.Encode(rebrickableHeader, body, csv.Options{IncludeBOM: opts.IncludeBOM}),
		Unmapped: []MissingRow{},
	}
}
