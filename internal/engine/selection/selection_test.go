package selection

import (
	"testing"

	"github.com/dshills/gridkit/internal/engine/grid"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

var bounds = Bounds{Rows: 5, Cols: 5}

// ============================================================================
// SelectCell
// ============================================================================

func TestSelectCellCollapses(t *testing.T) {
	s := New()
	s.SelectCell(pos(2, 3), bounds)

	if s.Active() != pos(2, 3) {
		t.Errorf("expected active (2,3), got %v", s.Active())
	}
	sel := s.Selection()
	if sel.Start != pos(2, 3) || sel.End != pos(2, 3) {
		t.Errorf("expected collapsed selection, got %v", sel)
	}
}

func TestSelectCellExtends(t *testing.T) {
	s := New()
	s.SelectCell(pos(1, 1), bounds)
	s.SetExtending(true)
	s.SelectCell(pos(3, 4), bounds)

	sel := s.Selection()
	if sel.Start != pos(1, 1) {
		t.Errorf("anchor moved: start = %v", sel.Start)
	}
	if sel.End != pos(3, 4) {
		t.Errorf("expected end (3,4), got %v", sel.End)
	}
}

func TestSelectCellOutOfBounds(t *testing.T) {
	s := New()
	s.SelectCell(pos(1, 1), bounds)
	s.SelectCell(pos(9, 9), bounds)

	if s.Active() != pos(1, 1) {
		t.Errorf("out-of-bounds select changed state: %v", s.Active())
	}
}

// ============================================================================
// Anchor Stability
// ============================================================================

func TestAnchorStableAcrossExtendMoves(t *testing.T) {
	s := New()
	anchored := pos(1, 1)
	s.SelectCell(anchored, bounds)

	s.SetExtending(true)
	s.Move(Right, bounds)
	s.Move(Down, bounds)
	s.Move(Down, bounds)

	sel := s.Selection()
	if sel.Start != anchored {
		t.Fatalf("anchor drifted to %v after extend moves", sel.Start)
	}
	if sel.End != pos(3, 2) {
		t.Errorf("expected end (3,2), got %v", sel.End)
	}
}

func TestExtendFromFreshState(t *testing.T) {
	s := New()
	s.SetExtending(true)
	s.Move(Right, bounds)
	s.Move(Down, bounds)

	e := s.Extent()
	if e.MinRow != 0 || e.MinCol != 0 || e.MaxRow != 1 || e.MaxCol != 1 {
		t.Errorf("expected extend anchored at origin, got %+v", e)
	}
}

func TestAnchorStableExtendingBackwards(t *testing.T) {
	s := New()
	s.SelectCell(pos(3, 3), bounds)
	s.SetExtending(true)
	s.Move(Up, bounds)
	s.Move(Left, bounds)
	s.Move(Up, bounds)

	sel := s.Selection()
	if sel.Start != pos(3, 3) {
		t.Fatalf("anchor drifted to %v extending up-left", sel.Start)
	}
	if sel.End != pos(1, 2) {
		t.Errorf("expected end (1,2), got %v", sel.End)
	}
	e := s.Extent()
	if e.MinRow != 1 || e.MinCol != 2 || e.MaxRow != 3 || e.MaxCol != 3 {
		t.Errorf("unexpected extent %+v", e)
	}
}

// ============================================================================
// Move
// ============================================================================

func TestMoveClamps(t *testing.T) {
	s := New()
	s.SelectCell(pos(0, 0), bounds)
	s.Move(Up, bounds)
	s.Move(Left, bounds)

	if s.Active() != pos(0, 0) {
		t.Errorf("expected clamp at origin, got %v", s.Active())
	}

	s.SelectCell(pos(4, 4), bounds)
	s.Move(Down, bounds)
	s.Move(Right, bounds)
	if s.Active() != pos(4, 4) {
		t.Errorf("expected clamp at far corner, got %v", s.Active())
	}
}

func TestMoveCollapsesWithoutExtend(t *testing.T) {
	s := New()
	s.SelectCell(pos(1, 1), bounds)
	s.SetExtending(true)
	s.Move(Right, bounds)
	s.SetExtending(false)
	s.Move(Down, bounds)

	sel := s.Selection()
	if sel.Start != pos(2, 2) || sel.End != pos(2, 2) {
		t.Errorf("expected collapsed selection at (2,2), got %v", sel)
	}
	// The new position re-anchors.
	s.SetExtending(true)
	s.Move(Right, bounds)
	if got := s.Selection().Start; got != pos(2, 2) {
		t.Errorf("expected new anchor (2,2), got %v", got)
	}
}

// ============================================================================
// Drag
// ============================================================================

func TestDragSession(t *testing.T) {
	s := New()
	s.BeginDrag(pos(1, 1), false, bounds)
	if !s.IsDragging() {
		t.Fatal("expected drag session open")
	}
	s.DragTo(pos(3, 2), bounds)
	s.DragTo(pos(2, 4), bounds)
	s.EndDrag()

	if s.IsDragging() {
		t.Error("expected drag session closed")
	}
	sel := s.Selection()
	if sel.Start != pos(1, 1) || sel.End != pos(2, 4) {
		t.Errorf("expected selection (1,1)..(2,4), got %v", sel)
	}
}

func TestDragToIgnoredWhenNotDragging(t *testing.T) {
	s := New()
	s.SelectCell(pos(1, 1), bounds)
	s.DragTo(pos(4, 4), bounds)

	if s.Selection().End != pos(1, 1) {
		t.Error("DragTo outside a drag session changed the selection")
	}
}

func TestBeginDragExtend(t *testing.T) {
	s := New()
	s.SelectCell(pos(0, 0), bounds)
	s.BeginDrag(pos(2, 2), true, bounds)

	sel := s.Selection()
	if sel.Start != pos(0, 0) || sel.End != pos(2, 2) {
		t.Errorf("expected extend drag from existing anchor, got %v", sel)
	}
}

// ============================================================================
// Membership / Positions
// ============================================================================

func TestContains(t *testing.T) {
	s := New()
	s.BeginDrag(pos(3, 3), false, bounds)
	s.DragTo(pos(1, 1), bounds)
	s.EndDrag()

	tests := []struct {
		pos  grid.Position
		want bool
	}{
		{pos(1, 1), true},
		{pos(2, 2), true},
		{pos(3, 3), true},
		{pos(0, 1), false},
		{pos(1, 4), false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestPositionsRowMajor(t *testing.T) {
	s := New()
	s.SelectCell(pos(1, 2), bounds)
	s.SetExtending(true)
	s.SelectCell(pos(0, 1), bounds)

	got := s.Positions()
	want := []grid.Position{pos(0, 1), pos(0, 2), pos(1, 1), pos(1, 2)}
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// ============================================================================
// SelectAll / Clear / Clamp
// ============================================================================

func TestSelectAll(t *testing.T) {
	s := New()
	s.SelectAll(bounds)

	e := s.Extent()
	if e.MinRow != 0 || e.MinCol != 0 || e.MaxRow != 4 || e.MaxCol != 4 {
		t.Errorf("unexpected extent %+v", e)
	}
	if !s.IsMulti() {
		t.Error("expected multi-cell selection")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.BeginDrag(pos(2, 2), false, bounds)
	s.Clear()

	if s.IsDragging() || s.IsMulti() {
		t.Error("expected cleared state")
	}
	if s.Active() != pos(0, 0) {
		t.Errorf("expected active at origin, got %v", s.Active())
	}
}

func TestClampAfterShrink(t *testing.T) {
	s := New()
	s.SelectCell(pos(4, 4), bounds)
	s.Clamp(Bounds{Rows: 3, Cols: 3})

	if s.Active() != pos(2, 2) {
		t.Errorf("expected clamped active (2,2), got %v", s.Active())
	}
	e := s.Extent()
	if e.MaxRow != 2 || e.MaxCol != 2 {
		t.Errorf("selection not clamped: %+v", e)
	}
}
