package grid

import "fmt"

// Position represents a cell location in the grid.
// Both Row and Col are 0-indexed.
type Position struct {
	Row int
	Col int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// ordering row-major.
func (p Position) Compare(other Position) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other in row-major order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// IsZero returns true if this is the origin position (0,0).
func (p Position) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// Update pairs a position with a value to write there.
type Update struct {
	Pos   Position
	Value string
}
