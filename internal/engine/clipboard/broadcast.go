package clipboard

import (
	"github.com/dshills/gridkit/internal/engine/grid"
	"github.com/dshills/gridkit/internal/engine/selection"
)

// Shape classifies a clipboard payload for broadcast purposes.
type Shape uint8

const (
	// ShapeSingleCell is a 1x1 payload.
	ShapeSingleCell Shape = iota
	// ShapeSingleRow is a 1xN payload, N > 1.
	ShapeSingleRow
	// ShapeSingleColumn is an Mx1 payload, M > 1.
	ShapeSingleColumn
	// ShapeRectangular is any other payload.
	ShapeRectangular
)

// String returns the string representation of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeSingleCell:
		return "single-cell"
	case ShapeSingleRow:
		return "single-row"
	case ShapeSingleColumn:
		return "single-column"
	default:
		return "rectangular"
	}
}

// Classify returns the broadcast shape of a payload of r rows by c columns.
func Classify(r, c int) Shape {
	switch {
	case r == 1 && c == 1:
		return ShapeSingleCell
	case r == 1 && c > 1:
		return ShapeSingleRow
	case r > 1 && c == 1:
		return ShapeSingleColumn
	default:
		return ShapeRectangular
	}
}

// Plan is the outcome of paste planning: the exact growth deficit and the
// full set of cell writes. Growth is applied before any write; all writes
// commit through a single batched update so one paste is one history entry.
type Plan struct {
	Shape    Shape
	GrowRows int
	GrowCols int
	Updates  []grid.Update
}

// IsEmpty returns true if the plan writes nothing.
func (p Plan) IsEmpty() bool {
	return len(p.Updates) == 0
}

// PlanPaste decides where decoded clipboard rows land.
//
// The destination anchor is the selection's top-left corner when a selection
// extent is given, else the active cell. Placement by payload shape:
//
//   - rectangular: placed once, each payload cell at anchor + offset
//   - single row into a selection taller than one row: one copy per
//     selected row, downward
//   - single column into a selection wider than one column: one copy per
//     selected column, rightward
//   - single cell into a multi-cell selection: the value broadcast to every
//     cell of the selection rectangle
//
// Jagged payload rows are padded with empty fields to the widest row, so the
// destination region is always rectangular. The growth deficit is computed
// from the maximum target position against the given grid bounds.
func PlanPaste(rows [][]string, ext *selection.Extent, active grid.Position, gridRows, gridCols int) Plan {
	rows = padRows(rows)
	if len(rows) == 0 {
		return Plan{}
	}

	payloadRows := len(rows)
	payloadCols := len(rows[0])
	shape := Classify(payloadRows, payloadCols)

	anchor := active
	selRows, selCols := 1, 1
	if ext != nil {
		anchor = ext.TopLeft()
		selRows = ext.Rows()
		selCols = ext.Cols()
	}

	plan := Plan{Shape: shape}

	switch shape {
	case ShapeSingleCell:
		value := rows[0][0]
		if ext != nil && (selRows > 1 || selCols > 1) {
			for r := 0; r < selRows; r++ {
				for c := 0; c < selCols; c++ {
					plan.Updates = append(plan.Updates, grid.Update{
						Pos:   grid.Position{Row: anchor.Row + r, Col: anchor.Col + c},
						Value: value,
					})
				}
			}
		} else {
			plan.Updates = append(plan.Updates, grid.Update{Pos: anchor, Value: value})
		}

	case ShapeSingleRow:
		copies := 1
		if selRows > 1 {
			copies = selRows
		}
		for r := 0; r < copies; r++ {
			for c, value := range rows[0] {
				plan.Updates = append(plan.Updates, grid.Update{
					Pos:   grid.Position{Row: anchor.Row + r, Col: anchor.Col + c},
					Value: value,
				})
			}
		}

	case ShapeSingleColumn:
		copies := 1
		if selCols > 1 {
			copies = selCols
		}
		for c := 0; c < copies; c++ {
			for r := range rows {
				plan.Updates = append(plan.Updates, grid.Update{
					Pos:   grid.Position{Row: anchor.Row + r, Col: anchor.Col + c},
					Value: rows[r][0],
				})
			}
		}

	default:
		for r := range rows {
			for c, value := range rows[r] {
				plan.Updates = append(plan.Updates, grid.Update{
					Pos:   grid.Position{Row: anchor.Row + r, Col: anchor.Col + c},
					Value: value,
				})
			}
		}
	}

	maxRow, maxCol := 0, 0
	for _, u := range plan.Updates {
		if u.Pos.Row > maxRow {
			maxRow = u.Pos.Row
		}
		if u.Pos.Col > maxCol {
			maxCol = u.Pos.Col
		}
	}
	if n := maxRow + 1 - gridRows; n > 0 {
		plan.GrowRows = n
	}
	if n := maxCol + 1 - gridCols; n > 0 {
		plan.GrowCols = n
	}
	return plan
}

// padRows pads jagged rows with empty fields to the widest row.
func padRows(rows [][]string) [][]string {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return nil
	}
	padded := make([][]string, len(rows))
	for r, row := range rows {
		if len(row) == cols {
			padded[r] = row
			continue
		}
		p := make([]string, cols)
		copy(p, row)
		padded[r] = p
	}
	return padded
}
