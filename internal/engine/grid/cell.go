package grid

// Cell is a single grid cell. Value is always stored as text; numeric-looking
// input is not interpreted.
//
// Editing and Width are view-layer concerns carried alongside the data for
// convenience. The grid treats Width as an opaque pass-through (a Width of 0
// or less means "unset") and never reads Editing; the editing collaborator
// owns it.
type Cell struct {
	Value   string
	Editing bool
	Width   int
}

// HasWidth returns true if an explicit width has been assigned.
func (c Cell) HasWidth() bool {
	return c.Width > 0
}
