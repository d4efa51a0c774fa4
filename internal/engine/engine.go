package engine

import (
	"sync"

	"github.com/dshills/gridkit/internal/engine/grid"
	"github.com/dshills/gridkit/internal/engine/history"
	"github.com/dshills/gridkit/internal/engine/selection"
	"github.com/dshills/gridkit/internal/integration/sysclip"
	"github.com/dshills/gridkit/internal/log"
)

// Re-export commonly used types for convenience.
type (
	// Position is a 0-indexed row/column cell location.
	Position = grid.Position

	// Cell is a single grid cell.
	Cell = grid.Cell

	// Update pairs a position with a value to write there.
	Update = grid.Update

	// Direction is a one-step cursor movement.
	Direction = selection.Direction

	// Extent is a normalized selection rectangle.
	Extent = selection.Extent

	// Action tags the kind of mutation a history entry resulted from.
	Action = history.Action

	// Clipboard is the platform clipboard the engine reads and writes.
	Clipboard = sysclip.Clipboard
)

// Re-export constants.
const (
	Up    = selection.Up
	Down  = selection.Down
	Left  = selection.Left
	Right = selection.Right
)

// Engine is the mutation facade for the grid editing core. It owns the grid,
// the selection state and the undo history, and is the single choke point
// through which all value and structural changes pass: every mutation is
// paired with exactly one history entry. Layout-only changes (column widths)
// never create history entries.
//
// All operations are thread-safe.
type Engine struct {
	mu   sync.RWMutex
	grid *grid.Grid
	sel  *selection.State
	hist *history.History
	clip sysclip.Clipboard
	log  *log.Logger

	// Construction-time configuration
	rows       int
	cols       int
	vals       [][]string
	maxHistory int
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		rows:       DefaultRows,
		cols:       DefaultCols,
		maxHistory: history.DefaultMaxEntries,
		log:        log.Null,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.vals != nil {
		e.grid = grid.NewFromValues(e.vals)
		e.vals = nil
	} else {
		e.grid = grid.New(e.rows, e.cols)
	}
	e.sel = selection.New()
	e.hist = history.New(e.maxHistory, e.grid)
	return e
}

// ============================================================================
// Read Operations
// ============================================================================

// Rows returns the number of grid rows.
func (e *Engine) Rows() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Rows()
}

// Cols returns the number of grid columns.
func (e *Engine) Cols() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Cols()
}

// Value returns the cell value at (row, col), or "" if out of range.
func (e *Engine) Value(row, col int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Value(Position{Row: row, Col: col})
}

// Cell returns the cell at (row, col) and whether it exists.
func (e *Engine) Cell(row, col int) (Cell, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Get(Position{Row: row, Col: col})
}

// Values returns all cell values as a matrix of strings.
func (e *Engine) Values() [][]string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Values()
}

// Snapshot returns an independent deep copy of the grid.
func (e *Engine) Snapshot() *grid.Grid {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Clone()
}

// ColumnWidth returns the assigned width of a column, 0 if unset.
func (e *Engine) ColumnWidth(col int) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Width(col)
}

// ============================================================================
// Mutation Operations
// ============================================================================

// UpdateCell writes value at (row, col). Out-of-range positions are a silent
// no-op and push no history entry.
func (e *Engine) UpdateCell(row, col int, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos := Position{Row: row, Col: col}
	if !e.grid.Contains(pos) {
		return
	}
	e.grid.Set(pos, value)
	e.hist.Push(history.ActionSetCell, e.grid)
}

// UpdateRange writes the same value at every given position. Out-of-range
// positions are skipped. One history entry for the whole batch; none if no
// position was in range.
func (e *Engine) UpdateRange(positions []Position, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updateRangeLocked(positions, value, history.ActionSetRange)
}

func (e *Engine) updateRangeLocked(positions []Position, value string, action Action) {
	any := false
	for _, pos := range positions {
		if e.grid.Contains(pos) {
			any = true
			break
		}
	}
	if !any {
		return
	}
	e.grid.SetMany(positions, value)
	e.hist.Push(action, e.grid)
}

// UpdateDistinct applies a batch of position/value updates, growing the grid
// first to cover the maximum referenced position. The whole batch is one
// history entry. An empty or fully-invalid batch pushes nothing.
func (e *Engine) UpdateDistinct(updates []Update) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updateDistinctLocked(updates, history.ActionSetDistinct)
}

func (e *Engine) updateDistinctLocked(updates []Update, action Action) {
	valid := false
	for _, u := range updates {
		if u.Pos.Row >= 0 && u.Pos.Col >= 0 {
			valid = true
			break
		}
	}
	if !valid {
		return
	}
	e.grid.SetDistinct(updates)
	e.hist.Push(action, e.grid)
}

// AddRow appends one row.
func (e *Engine) AddRow() {
	e.AddRows(1)
}

// AddRows appends n rows as one history entry.
func (e *Engine) AddRows(n int) {
	if n <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.AddRows(n)
	e.hist.Push(history.ActionAddRow, e.grid)
}

// AddColumn appends one column.
func (e *Engine) AddColumn() {
	e.AddColumns(1)
}

// AddColumns appends n columns as one history entry.
func (e *Engine) AddColumns(n int) {
	if n <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.AddColumns(n)
	e.hist.Push(history.ActionAddColumn, e.grid)
}

// RemoveRow removes the last row. Refused silently at one row; a refused
// removal pushes no history entry.
func (e *Engine) RemoveRow() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.grid.RemoveRow() {
		return
	}
	e.hist.Push(history.ActionRemoveRow, e.grid)
	e.sel.Clamp(selection.BoundsOf(e.grid))
}

// RemoveColumn removes the last column. Refused silently at one column.
func (e *Engine) RemoveColumn() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.grid.RemoveColumn() {
		return
	}
	e.hist.Push(history.ActionRemoveColumn, e.grid)
	e.sel.Clamp(selection.BoundsOf(e.grid))
}

// SetColumnWidth assigns a display width to a column. Layout-only: this
// never pushes a history entry and is not undoable.
func (e *Engine) SetColumnWidth(col, width int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.SetWidth(col, width)
}

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo restores the previous snapshot. Column widths of the live grid are
// carried over; they are not historized.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.hist.Undo()
	if err != nil {
		return err
	}
	e.restoreLocked(g)
	return nil
}

// Redo re-applies the next snapshot.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.hist.Redo()
	if err != nil {
		return err
	}
	e.restoreLocked(g)
	return nil
}

func (e *Engine) restoreLocked(g *grid.Grid) {
	// Widths are layout state: keep the live widths where columns survive.
	for c := 0; c < g.Cols() && c < e.grid.Cols(); c++ {
		g.SetWidth(c, e.grid.Width(c))
	}
	e.grid = g
	e.sel.Clamp(selection.BoundsOf(e.grid))
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.hist.CanRedo()
}

// ============================================================================
// Selection Operations
// ============================================================================

// SelectCell selects the cell at pos.
func (e *Engine) SelectCell(pos Position) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.SelectCell(pos, selection.BoundsOf(e.grid))
}

// BeginDrag opens a drag selection at pos.
func (e *Engine) BeginDrag(pos Position, extend bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.BeginDrag(pos, extend, selection.BoundsOf(e.grid))
}

// DragTo extends an open drag selection to pos.
func (e *Engine) DragTo(pos Position) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.DragTo(pos, selection.BoundsOf(e.grid))
}

// EndDrag closes the drag session; the selection persists.
func (e *Engine) EndDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.EndDrag()
}

// Move steps the active cell one cell, clamped to the grid. While extending,
// the selection grows from its anchor.
func (e *Engine) Move(dir Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.Move(dir, selection.BoundsOf(e.grid))
}

// SetExtending sets the modifier-held extend flag.
func (e *Engine) SetExtending(extending bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.SetExtending(extending)
}

// SelectAll selects the whole grid.
func (e *Engine) SelectAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.SelectAll(selection.BoundsOf(e.grid))
}

// ClearSelection drops selection, anchor and drag state.
func (e *Engine) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.Clear()
}

// Selected returns true if pos lies inside the selection rectangle.
func (e *Engine) Selected(pos Position) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel.Contains(pos)
}

// SelectionPositions returns every position in the selection rectangle in
// row-major order.
func (e *Engine) SelectionPositions() []Position {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel.Positions()
}

// SelectionExtent returns the normalized selection rectangle.
func (e *Engine) SelectionExtent() Extent {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel.Extent()
}

// ActiveCell returns the active (focus/edit) position.
func (e *Engine) ActiveCell() Position {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel.Active()
}

// IsDragging returns true while a drag session is open.
func (e *Engine) IsDragging() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel.IsDragging()
}
