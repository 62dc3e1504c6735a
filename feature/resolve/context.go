package resolve

// Context bundles the preloaded lookup tables passed into every resolution
// call. It is built once per bulk operation, owned by the caller, and
// treated as read-only by the resolver.
type Context struct {
	// RBToBLColor maps Rebrickable color IDs to BrickLink color IDs.
	RBToBLColor map[int]int
	// BLToRBColor is the reverse color map.
	BLToRBColor map[int]int
	// PartMappings maps Rebrickable part IDs to BrickLink overrides.
	PartMappings map[string]string
	// BLToRBPart is the reverse part map.
	BLToRBPart map[string]string
}

// NewContext creates an empty context; resolution against it applies only
// the default-same part rule.
func NewContext() *Context {
	return &Context{
		RBToBLColor:  make(map[int]int),
		BLToRBColor:  make(map[int]int),
		PartMappings: make(map[string]string),
		BLToRBPart:   make(map[string]string),
	}
}
