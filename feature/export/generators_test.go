package export

import (
	"context"
	"strings"
	"testing"

	"brick-manager/feature/resolve"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func partIdentity(blPart string, blColor int) *resolve.PartIdentity {
	return &resolve.PartIdentity{
		RowType:   resolve.RowTypeCatalogPart,
		BLPartID:  strPtr(blPart),
		BLColorID: intPtr(blColor),
	}
}

func TestGenerateRebrickable(t *testing.T) {
	rows := []MissingRow{
		{PartID: "3001", ColorID: 4, QuantityMissing: 3},
		{PartID: "3002", ColorID: 5, QuantityMissing: 0},
		{PartID: "fig-001", QuantityMissing: 1, QuantityRequired: 1,
			Identity: &resolve.PartIdentity{RowType: resolve.RowTypeMinifigParent}},
	}

	out := GenerateRebrickable(rows, Options{})
	lines := strings.Split(out.CSV, "\n")

	assert.Equal(t, "part_num,color_id,quantity", lines[0])
	// Zero-shortage and minifig rows are excluded.
	assert.Equal(t, []string{"part_num,color_id,quantity", "3001,4,3"}, lines)
	assert.Empty(t, out.Unmapped)
}

func TestGenerateRebrickable_IncludeMinifigs(t *testing.T) {
	rows := []MissingRow{
		{PartID: "3001", ColorID: 4, QuantityMissing: 3},
		// Parent exported as a whole unit: required quantity, not shortage.
		{PartID: "fig-001", QuantityMissing: 1, QuantityRequired: 2,
			Identity: &resolve.PartIdentity{RowType: resolve.RowTypeMinifigParent}},
		// Subparts stay excluded; the parent covers them.
		{PartID: "3626c", ColorID: 14, QuantityMissing: 1,
			Identity: &resolve.PartIdentity{RowType: resolve.RowTypeMinifigSubpart}},
	}

	out := GenerateRebrickable(rows, Options{IncludeMinifigs: true})
	assert.Equal(t, "part_num,color_id,quantity\n3001,4,3\nfig-001,0,2", out.CSV)
}

func TestGenerateBricklink_Partition(t *testing.T) {
	rows := []MissingRow{
		{PartID: "3001", QuantityMissing: 3, Identity: partIdentity("3001", 5)},
		{PartID: "9999", QuantityMissing: 2, Identity: &resolve.PartIdentity{RowType: resolve.RowTypeCatalogPart}},
	}

	out := GenerateBricklink(context.Background(), rows, Options{}, nil)
	lines := strings.Split(out.CSV, "\n")

	assert.Equal(t, "Item Type,Item No,Color,Quantity,Condition,Description", lines[0])
	assert.Len(t, lines, 2)
	assert.Equal(t, "P,3001,5,3,N,", lines[1])

	// Exactly the unresolvable row lands in unmapped.
	assert.Len(t, out.Unmapped, 1)
	assert.Equal(t, "9999", out.Unmapped[0].PartID)
	assert.Empty(t, out.MinifigIDs)
}

func TestGenerateBricklink_MinifigParent(t *testing.T) {
	rows := []MissingRow{
		{PartID: "fig-001", QuantityRequired: 1, Identity: &resolve.PartIdentity{
			RowType:     resolve.RowTypeMinifigParent,
			BLMinifigID: strPtr("sw0001"),
		}},
	}

	out := GenerateBricklink(context.Background(), rows, Options{}, nil)
	assert.Equal(t, "Item Type,Item No,Color,Quantity,Condition,Description\nM,sw0001,0,1,N,", out.CSV)
	assert.Equal(t, []string{"sw0001"}, out.MinifigIDs)
	assert.Empty(t, out.Unmapped)
}

func TestGenerateBricklink_ZeroShortageIsUnmapped(t *testing.T) {
	rows := []MissingRow{
		// Fully mapped but nothing missing: no P line is emitted and the
		// row surfaces in unmapped rather than vanishing.
		{PartID: "3001", QuantityMissing: 0, Identity: partIdentity("3001", 5)},
	}

	out := GenerateBricklink(context.Background(), rows, Options{}, nil)
	assert.Equal(t, "Item Type,Item No,Color,Quantity,Condition,Description", out.CSV)
	assert.Len(t, out.Unmapped, 1)
	assert.Equal(t, "3001", out.Unmapped[0].PartID)
}

func TestGenerateBricklink_ConditionOverride(t *testing.T) {
	rows := []MissingRow{
		{PartID: "3001", QuantityMissing: 1, Identity: partIdentity("3001", 5)},
	}

	out := GenerateBricklink(context.Background(), rows, Options{Condition: "U"}, nil)
	assert.Contains(t, out.CSV, "P,3001,5,1,U,")
}

type staticResolver struct {
	identity *resolve.PartIdentity
}

func (r staticResolver) ResolveRow(_ context.Context, _ string, _ int) (*resolve.PartIdentity, error) {
	return r.identity, nil
}

func TestGenerateBricklink_FallbackResolvesMissingIdentity(t *testing.T) {
	rows := []MissingRow{
		{PartID: "3001", ColorID: 4, QuantityMissing: 2},
	}

	out := GenerateBricklink(context.Background(), rows, Options{}, staticResolver{identity: partIdentity("3001", 5)})
	assert.Contains(t, out.CSV, "P,3001,5,2,N,")
	assert.Empty(t, out.Unmapped)
}

func TestGenerateBricklink_NoFallbackMeansUnmapped(t *testing.T) {
	rows := []MissingRow{
		{PartID: "3001", ColorID: 4, QuantityMissing: 2},
	}

	out := GenerateBricklink(context.Background(), rows, Options{}, nil)
	assert.Len(t, out.Unmapped, 1)
}

func TestGenerateElement(t *testing.T) {
	rows := []MissingRow{
		{PartID: "3001", QuantityMissing: 3, ElementID: strPtr("123456")},
		{PartID: "3002", QuantityMissing: 0, ElementID: strPtr("654321")},
		{PartID: "3003", QuantityMissing: 5},
	}

	out := GenerateElement(rows, Options{})
	assert.Equal(t, "Element ID,Quantity\n123456,3", out.CSV)

	// Zero-quantity and element-less rows are both reported.
	assert.Len(t, out.Unmapped, 2)
	assert.Equal(t, "3002", out.Unmapped[0].PartID)
	assert.Equal(t, "3003", out.Unmapped[1].PartID)
}

func TestGenerateElement_IdentityElementFallback(t *testing.T) {
	identity := partIdentity("3001", 5)
	identity.ElementID = strPtr("6211356")

	rows := []MissingRow{
		{PartID: "3001", QuantityMissing: 1, Identity: identity},
	}

	out := GenerateElement(rows, Options{})
	assert.Equal(t, "Element ID,Quantity\n6211356,1", out.CSV)
}

func TestGenerators_BOM(t *testing.T) {
	out := GenerateElement(nil, Options{IncludeBOM: true})
	assert.Equal(t, rune(0xFEFF), []rune(out.CSV)[0])
}
