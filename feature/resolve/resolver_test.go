package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_DefaultSamePart(t *testing.T) {
	ctx := NewContext()

	identity := Resolve(NewRow("3001", 4), ctx)

	// No override and no mapping-table entry: BL part defaults to the RB part.
	assert.NotNil(t, identity.BLPartID)
	assert.Equal(t, "3001", *identity.BLPartID)
	assert.Equal(t, RowTypeCatalogPart, identity.RowType)
}

func TestResolve_MappingTableEntry(t *testing.T) {
	ctx := NewContext()
	ctx.PartMappings["3068b"] = "3068"

	identity := Resolve(NewRow("3068b", 0), ctx)
	assert.Equal(t, "3068", *identity.BLPartID)
}

func TestResolve_OverrideBeatsMappingTable(t *testing.T) {
	ctx := NewContext()
	ctx.PartMappings["3068b"] = "3068"

	row := NewRow("3068b", 0)
	row.BricklinkPartID = "3068bpb001"

	identity := Resolve(row, ctx)
	assert.Equal(t, "3068bpb001", *identity.BLPartID)
}

func TestResolve_ColorNeverDefaulted(t *testing.T) {
	ctx := NewContext()
	ctx.RBToBLColor[4] = 5

	mapped := Resolve(NewRow("3001", 4), ctx)
	assert.NotNil(t, mapped.BLColorID)
	assert.Equal(t, 5, *mapped.BLColorID)

	// A color absent from the map stays nil, even though the part defaulted.
	unmapped := Resolve(NewRow("3001", 9999), ctx)
	assert.Nil(t, unmapped.BLColorID)
	assert.Equal(t, "3001", *unmapped.BLPartID)
}

func TestResolve_Idempotent(t *testing.T) {
	ctx := NewContext()
	ctx.RBToBLColor[1] = 11
	ctx.PartMappings["x"] = "y"

	row := NewRow("x", 1)
	row.ElementID = "6211356"

	first := Resolve(row, ctx)
	second := Resolve(row, ctx)
	assert.Equal(t, first, second)
}

func TestResolve_MinifigVariants(t *testing.T) {
	ctx := NewContext()

	parent := Resolve(NewMinifigParentRow("fig-001234", "sw0001"), ctx)
	assert.Equal(t, RowTypeMinifigParent, parent.RowType)
	assert.NotNil(t, parent.BLMinifigID)
	assert.Equal(t, "sw0001", *parent.BLMinifigID)
	assert.True(t, parent.IsMinifig())

	subpart := Resolve(NewMinifigSubpartRow("3626c", 14), ctx)
	assert.Equal(t, RowTypeMinifigSubpart, subpart.RowType)
	assert.Nil(t, subpart.BLMinifigID)
	assert.True(t, subpart.IsMinifig())

	// A plain row can never carry a minifig ID.
	plain := Resolve(NewRow("3001", 4), ctx)
	assert.Nil(t, plain.BLMinifigID)
	assert.False(t, plain.IsMinifig())
}

func TestCanonicalKey(t *testing.T) {
	ctx := NewContext()

	identity := Resolve(NewRow("3001", 4), ctx)
	assert.Equal(t, "3001:4", identity.CanonicalKey())

	rows := []Row{
		NewRow("3001", 4),
		NewRow("3001", 5),
		NewRow("3002", 4),
	}
	index := Index(rows, ctx)
	assert.Len(t, index, 3)
	for key, id := range index {
		assert.Equal(t, id.CanonicalKey(), key)
	}
}

func TestResolveAll_PreservesOrder(t *testing.T) {
	ctx := NewContext()
	rows := []Row{NewRow("b", 1), NewRow("a", 2)}

	identities := ResolveAll(rows, ctx)
	assert.Len(t, identities, 2)
	assert.Equal(t, "b", identities[0].RBPartID)
	assert.Equal(t, "a", identities[1].RBPartID)
}
