package selection

import (
	"github.com/dshills/gridkit/internal/engine/grid"
)

// Bounds describes the grid extent selections are validated against.
// Selection never inspects grid contents, only its size.
type Bounds struct {
	Rows int
	Cols int
}

// BoundsOf returns the bounds of a grid.
func BoundsOf(g *grid.Grid) Bounds {
	return Bounds{Rows: g.Rows(), Cols: g.Cols()}
}

// Contains returns true if pos is within the bounds.
func (b Bounds) Contains(pos grid.Position) bool {
	return pos.Row >= 0 && pos.Row < b.Rows && pos.Col >= 0 && pos.Col < b.Cols
}

// Range is an anchor/active pair of corner positions. It is NOT normalized:
// Start is where the selection began and End is the active corner, so End may
// lie above or left of Start. Consumers needing min/max use Extent.
type Range struct {
	Start grid.Position
	End   grid.Position
}

// Extent is a normalized closed rectangle.
type Extent struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Normalize returns the extent covering the range.
func (r Range) Normalize() Extent {
	e := Extent{MinRow: r.Start.Row, MaxRow: r.End.Row, MinCol: r.Start.Col, MaxCol: r.End.Col}
	if e.MinRow > e.MaxRow {
		e.MinRow, e.MaxRow = e.MaxRow, e.MinRow
	}
	if e.MinCol > e.MaxCol {
		e.MinCol, e.MaxCol = e.MaxCol, e.MinCol
	}
	return e
}

// Contains returns true if pos lies inside the extent.
func (e Extent) Contains(pos grid.Position) bool {
	return pos.Row >= e.MinRow && pos.Row <= e.MaxRow && pos.Col >= e.MinCol && pos.Col <= e.MaxCol
}

// Rows returns the height of the extent.
func (e Extent) Rows() int {
	return e.MaxRow - e.MinRow + 1
}

// Cols returns the width of the extent.
func (e Extent) Cols() int {
	return e.MaxCol - e.MinCol + 1
}

// TopLeft returns the minimum corner of the extent.
func (e Extent) TopLeft() grid.Position {
	return grid.Position{Row: e.MinRow, Col: e.MinCol}
}

// Direction is a one-step cursor movement.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// State is the rectangular selection state machine.
//
// The anchor is the corner fixed during extend operations. It is stored as
// its own field and is never re-derived from the selection range: computing
// it from min(Start, End) after each step collapses multi-step extend
// sequences to their last two points.
//
// State is not thread-safe; the owning engine serializes access.
type State struct {
	current   grid.Position
	sel       Range
	anchor    grid.Position
	hasAnchor bool
	extending bool
	dragging  bool
}

// New creates a selection collapsed at the origin.
func New() *State {
	return &State{}
}

// Active returns the active (focus/edit) cell.
func (s *State) Active() grid.Position {
	return s.current
}

// Selection returns the current anchor/active range.
func (s *State) Selection() Range {
	return s.sel
}

// Extent returns the normalized selection rectangle.
func (s *State) Extent() Extent {
	return s.sel.Normalize()
}

// IsExtending returns true while a modifier-extend is in effect.
func (s *State) IsExtending() bool {
	return s.extending
}

// IsDragging returns true while a drag session is open.
func (s *State) IsDragging() bool {
	return s.dragging
}

// SetExtending sets the modifier-held flag. While set, SelectCell and Move
// extend the selection from the anchor instead of collapsing it.
func (s *State) SetExtending(extending bool) {
	s.extending = extending
}

// SelectCell selects pos. When extending with an anchor present, the
// selection becomes anchor..pos; otherwise pos becomes the new anchor and
// the selection collapses to it. Out-of-bounds positions are ignored.
func (s *State) SelectCell(pos grid.Position, b Bounds) {
	if !b.Contains(pos) {
		return
	}
	if s.extending {
		s.ensureAnchor()
		s.current = pos
		s.sel = Range{Start: s.anchor, End: pos}
		return
	}
	s.current = pos
	s.setAnchor(pos)
}

// BeginDrag opens a drag session at pos. The extend flag behaves as in
// SelectCell. Out-of-bounds positions are ignored.
func (s *State) BeginDrag(pos grid.Position, extend bool, b Bounds) {
	if !b.Contains(pos) {
		return
	}
	s.dragging = true
	if extend {
		s.ensureAnchor()
		s.current = pos
		s.sel = Range{Start: s.anchor, End: pos}
		return
	}
	s.current = pos
	s.setAnchor(pos)
}

// DragTo extends the active corner of the selection to pos while a drag
// session is open. The anchor stays fixed. Ignored when not dragging or when
// pos is out of bounds.
func (s *State) DragTo(pos grid.Position, b Bounds) {
	if !s.dragging || !b.Contains(pos) {
		return
	}
	s.current = pos
	s.sel.End = pos
}

// EndDrag closes the drag session. The selection persists.
func (s *State) EndDrag() {
	s.dragging = false
}

// Move steps the active cell one cell in the given direction, clamped to the
// bounds. When extending, the selection end follows the active cell and the
// anchor stays fixed; otherwise the selection collapses to the new cell.
// Move is the only operation that clamps instead of ignoring.
func (s *State) Move(dir Direction, b Bounds) {
	next := s.current
	switch dir {
	case Up:
		next.Row--
	case Down:
		next.Row++
	case Left:
		next.Col--
	case Right:
		next.Col++
	}
	next = clamp(next, b)
	if s.extending {
		s.ensureAnchor()
		s.current = next
		s.sel = Range{Start: s.anchor, End: next}
		return
	}
	s.current = next
	s.setAnchor(next)
}

// SelectAll selects the whole grid. The anchor moves to the origin and the
// active cell to the bottom-right corner.
func (s *State) SelectAll(b Bounds) {
	if b.Rows < 1 || b.Cols < 1 {
		return
	}
	last := grid.Position{Row: b.Rows - 1, Col: b.Cols - 1}
	s.anchor = grid.Position{}
	s.hasAnchor = true
	s.current = last
	s.sel = Range{Start: grid.Position{}, End: last}
}

// Clear drops the selection, anchor and drag state and returns the active
// cell to the origin.
func (s *State) Clear() {
	*s = State{}
}

// Clamp pulls the active cell, anchor and selection corners back inside the
// bounds after the grid shrinks.
func (s *State) Clamp(b Bounds) {
	s.current = clamp(s.current, b)
	s.anchor = clamp(s.anchor, b)
	s.sel.Start = clamp(s.sel.Start, b)
	s.sel.End = clamp(s.sel.End, b)
}

// Contains returns true if pos lies inside the selection rectangle.
func (s *State) Contains(pos grid.Position) bool {
	return s.Extent().Contains(pos)
}

// Positions returns every position in the selection rectangle in row-major
// order.
func (s *State) Positions() []grid.Position {
	e := s.Extent()
	positions := make([]grid.Position, 0, e.Rows()*e.Cols())
	for r := e.MinRow; r <= e.MaxRow; r++ {
		for c := e.MinCol; c <= e.MaxCol; c++ {
			positions = append(positions, grid.Position{Row: r, Col: c})
		}
	}
	return positions
}

// IsMulti returns true if the selection spans more than one cell.
func (s *State) IsMulti() bool {
	e := s.Extent()
	return e.Rows() > 1 || e.Cols() > 1
}

func (s *State) setAnchor(pos grid.Position) {
	s.anchor = pos
	s.hasAnchor = true
	s.sel = Range{Start: pos, End: pos}
}

// ensureAnchor anchors the current cell when an extend begins before any
// explicit selection has been made.
func (s *State) ensureAnchor() {
	if !s.hasAnchor {
		s.anchor = s.current
		s.hasAnchor = true
	}
}

func clamp(pos grid.Position, b Bounds) grid.Position {
	if pos.Row < 0 {
		pos.Row = 0
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if b.Rows > 0 && pos.Row >= b.Rows {
		pos.Row = b.Rows - 1
	}
	if b.Cols > 0 && pos.Col >= b.Cols {
		pos.Col = b.Cols - 1
	}
	return pos
}
