package grid

// Grid is a rectangular, non-jagged matrix of cells.
//
// Invariant: every row has the same length at all times. Grid exposes only
// operations that preserve this: rows are appended with the current column
// count, columns are appended to every row, and removal stops at a 1x1 floor.
//
// Grid is not thread-safe; the owning engine provides synchronization.
type Grid struct {
	cells [][]Cell
}

// New creates a grid of the given size filled with empty cells.
// Sizes below 1 are raised to 1.
func New(rows, cols int) *Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Grid{cells: cells}
}

// NewFromValues creates a grid from a matrix of strings. Jagged input is
// padded with empty cells to the widest row. Empty input yields a 1x1 grid.
func NewFromValues(values [][]string) *Grid {
	rows := len(values)
	cols := 0
	for _, row := range values {
		if len(row) > cols {
			cols = len(row)
		}
	}
	g := New(rows, cols)
	for r, row := range values {
		for c, v := range row {
			g.cells[r][c].Value = v
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Contains returns true if pos is within the current bounds.
func (g *Grid) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows() && pos.Col >= 0 && pos.Col < g.Cols()
}

// Get returns the cell at pos and true, or a zero cell and false if pos is
// out of range.
func (g *Grid) Get(pos Position) (Cell, bool) {
	if !g.Contains(pos) {
		return Cell{}, false
	}
	return g.cells[pos.Row][pos.Col], true
}

// Value returns the cell value at pos, or "" if pos is out of range.
func (g *Grid) Value(pos Position) string {
	cell, ok := g.Get(pos)
	if !ok {
		return ""
	}
	return cell.Value
}

// Set writes value at pos. Out-of-range positions are ignored.
func (g *Grid) Set(pos Position, value string) {
	if !g.Contains(pos) {
		return
	}
	g.cells[pos.Row][pos.Col].Value = value
}

// SetMany writes the same value at every given position.
// Out-of-range positions are ignored.
func (g *Grid) SetMany(positions []Position, value string) {
	for _, pos := range positions {
		g.Set(pos, value)
	}
}

// SetDistinct applies a batch of position/value updates atomically with
// respect to growth: the grid is first grown to cover the maximum row and
// column referenced by any update, then all updates are applied in one pass.
// Updates with negative coordinates are skipped.
func (g *Grid) SetDistinct(updates []Update) {
	maxRow, maxCol := -1, -1
	for _, u := range updates {
		if u.Pos.Row < 0 || u.Pos.Col < 0 {
			continue
		}
		if u.Pos.Row > maxRow {
			maxRow = u.Pos.Row
		}
		if u.Pos.Col > maxCol {
			maxCol = u.Pos.Col
		}
	}
	if maxRow < 0 {
		return
	}
	if n := maxRow + 1 - g.Rows(); n > 0 {
		g.AddRows(n)
	}
	if n := maxCol + 1 - g.Cols(); n > 0 {
		g.AddColumns(n)
	}
	for _, u := range updates {
		g.Set(u.Pos, u.Value)
	}
}

// AddRow appends one row of empty cells.
func (g *Grid) AddRow() {
	g.AddRows(1)
}

// AddRows appends n rows of empty cells. New cells inherit the width of the
// cell above them in the same column.
func (g *Grid) AddRows(n int) {
	cols := g.Cols()
	for ; n > 0; n-- {
		row := make([]Cell, cols)
		if last := g.Rows() - 1; last >= 0 {
			for c := range row {
				row[c].Width = g.cells[last][c].Width
			}
		}
		g.cells = append(g.cells, row)
	}
}

// AddColumn appends one column of empty cells to every row.
func (g *Grid) AddColumn() {
	g.AddColumns(1)
}

// AddColumns appends n columns of empty cells to every row.
func (g *Grid) AddColumns(n int) {
	if n <= 0 {
		return
	}
	for r := range g.cells {
		g.cells[r] = append(g.cells[r], make([]Cell, n)...)
	}
}

// RemoveRow removes the last row. Returns false (and does nothing) if the
// grid would drop below one row.
func (g *Grid) RemoveRow() bool {
	if g.Rows() <= 1 {
		return false
	}
	g.cells = g.cells[:len(g.cells)-1]
	return true
}

// RemoveColumn removes the last column from every row. Returns false (and
// does nothing) if the grid would drop below one column.
func (g *Grid) RemoveColumn() bool {
	if g.Cols() <= 1 {
		return false
	}
	for r := range g.cells {
		g.cells[r] = g.cells[r][:len(g.cells[r])-1]
	}
	return true
}

// SetWidth assigns a display width to every cell in the given column.
// This is layout-only pass-through; out-of-range columns are ignored.
func (g *Grid) SetWidth(col, width int) {
	if col < 0 || col >= g.Cols() {
		return
	}
	for r := range g.cells {
		g.cells[r][col].Width = width
	}
}

// Width returns the assigned width of the given column (taken from its first
// cell), or 0 if unset or out of range.
func (g *Grid) Width(col int) int {
	if col < 0 || col >= g.Cols() || g.Rows() == 0 {
		return 0
	}
	w := g.cells[0][col].Width
	if w < 0 {
		return 0
	}
	return w
}

// Clone returns a deep copy of the grid. Mutating the clone never affects
// the original.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, len(g.cells))
	for r := range g.cells {
		cells[r] = make([]Cell, len(g.cells[r]))
		copy(cells[r], g.cells[r])
	}
	return &Grid{cells: cells}
}

// Values returns the cell values as a matrix of strings.
func (g *Grid) Values() [][]string {
	values := make([][]string, len(g.cells))
	for r := range g.cells {
		values[r] = make([]string, len(g.cells[r]))
		for c := range g.cells[r] {
			values[r][c] = g.cells[r][c].Value
		}
	}
	return values
}

// ValuesRange returns the cell values inside the closed rectangle from
// (r0,c0) to (r1,c1), clipped to the grid bounds. The corners may be given
// in any order. Returns nil if the rectangle lies entirely outside the grid.
func (g *Grid) ValuesRange(r0, c0, r1, c1 int) [][]string {
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	if r1 < 0 || c1 < 0 || r0 >= g.Rows() || c0 >= g.Cols() {
		return nil
	}
	if r0 < 0 {
		r0 = 0
	}
	if c0 < 0 {
		c0 = 0
	}
	if r1 >= g.Rows() {
		r1 = g.Rows() - 1
	}
	if c1 >= g.Cols() {
		c1 = g.Cols() - 1
	}
	values := make([][]string, 0, r1-r0+1)
	for r := r0; r <= r1; r++ {
		row := make([]string, 0, c1-c0+1)
		for c := c0; c <= c1; c++ {
			row = append(row, g.cells[r][c].Value)
		}
		values = append(values, row)
	}
	return values
}

// Equal reports whether two grids hold identical values. Width and editing
// flags are ignored.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows() != other.Rows() || g.Cols() != other.Cols() {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].Value != other.cells[r][c].Value {
				return false
			}
		}
	}
	return true
}
