package clipboard

import (
	"testing"

	"github.com/dshills/gridkit/internal/engine/grid"
	"github.com/dshills/gridkit/internal/engine/selection"
)

func extent(minR, minC, maxR, maxC int) *selection.Extent {
	return &selection.Extent{MinRow: minR, MinCol: minC, MaxRow: maxR, MaxCol: maxC}
}

func planValues(t *testing.T, p Plan) map[grid.Position]string {
	t.Helper()
	m := make(map[grid.Position]string, len(p.Updates))
	for _, u := range p.Updates {
		m[u.Pos] = u.Value
	}
	return m
}

// ============================================================================
// Shape Classification
// ============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		r, c int
		want Shape
	}{
		{1, 1, ShapeSingleCell},
		{1, 3, ShapeSingleRow},
		{4, 1, ShapeSingleColumn},
		{2, 2, ShapeRectangular},
		{3, 2, ShapeRectangular},
	}
	for _, tt := range tests {
		if got := Classify(tt.r, tt.c); got != tt.want {
			t.Errorf("Classify(%d,%d) = %v, want %v", tt.r, tt.c, got, tt.want)
		}
	}
}

// ============================================================================
// Placement
// ============================================================================

func TestPlanRectangular(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d"}}
	p := PlanPaste(rows, nil, grid.Position{Row: 1, Col: 1}, 5, 5)

	if p.Shape != ShapeRectangular {
		t.Fatalf("expected rectangular shape, got %v", p.Shape)
	}
	got := planValues(t, p)
	want := map[grid.Position]string{
		{Row: 1, Col: 1}: "a", {Row: 1, Col: 2}: "b",
		{Row: 2, Col: 1}: "c", {Row: 2, Col: 2}: "d",
	}
	for pos, v := range want {
		if got[pos] != v {
			t.Errorf("at %v: got %q, want %q", pos, got[pos], v)
		}
	}
	if p.GrowRows != 0 || p.GrowCols != 0 {
		t.Errorf("unexpected growth %d,%d", p.GrowRows, p.GrowCols)
	}
}

func TestPlanSingleCellBroadcast(t *testing.T) {
	p := PlanPaste([][]string{{"Z"}}, extent(0, 0, 1, 1), grid.Position{}, 5, 5)

	if len(p.Updates) != 4 {
		t.Fatalf("expected 4 writes, got %d", len(p.Updates))
	}
	got := planValues(t, p)
	for r := 0; r <= 1; r++ {
		for c := 0; c <= 1; c++ {
			if got[grid.Position{Row: r, Col: c}] != "Z" {
				t.Errorf("cell (%d,%d) not broadcast", r, c)
			}
		}
	}
}

func TestPlanSingleCellNoSelection(t *testing.T) {
	p := PlanPaste([][]string{{"Z"}}, nil, grid.Position{Row: 2, Col: 3}, 5, 5)
	if len(p.Updates) != 1 {
		t.Fatalf("expected 1 write, got %d", len(p.Updates))
	}
	if p.Updates[0].Pos != (grid.Position{Row: 2, Col: 3}) {
		t.Errorf("expected write at active cell, got %v", p.Updates[0].Pos)
	}
}

func TestPlanSingleRowRepeatsDown(t *testing.T) {
	p := PlanPaste([][]string{{"X", "Y"}}, extent(1, 2, 3, 2), grid.Position{}, 5, 5)

	got := planValues(t, p)
	if len(got) != 6 {
		t.Fatalf("expected 6 writes (3 copies of 2 cells), got %d", len(got))
	}
	for r := 1; r <= 3; r++ {
		if got[grid.Position{Row: r, Col: 2}] != "X" || got[grid.Position{Row: r, Col: 3}] != "Y" {
			t.Errorf("row %d: expected X,Y at cols 2,3", r)
		}
	}
}

func TestPlanSingleRowPlacedOnce(t *testing.T) {
	// Single-cell selection: no tiling.
	p := PlanPaste([][]string{{"X", "Y"}}, extent(0, 0, 0, 0), grid.Position{}, 5, 5)
	if len(p.Updates) != 2 {
		t.Errorf("expected 2 writes, got %d", len(p.Updates))
	}
}

func TestPlanSingleColumnRepeatsRight(t *testing.T) {
	p := PlanPaste([][]string{{"M"}, {"N"}}, extent(0, 0, 0, 2), grid.Position{}, 5, 5)

	got := planValues(t, p)
	if len(got) != 6 {
		t.Fatalf("expected 6 writes (3 copies of 2 cells), got %d", len(got))
	}
	for c := 0; c <= 2; c++ {
		if got[grid.Position{Row: 0, Col: c}] != "M" || got[grid.Position{Row: 1, Col: c}] != "N" {
			t.Errorf("col %d: expected M,N down rows 0,1", c)
		}
	}
}

// ============================================================================
// Growth
// ============================================================================

func TestPlanGrowth(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}, {"d", "e", "f"}}
	p := PlanPaste(rows, nil, grid.Position{Row: 2, Col: 1}, 3, 3)

	// Bottom-right target is (3,3) in a 3x3 grid: one row and one column short.
	if p.GrowRows != 1 {
		t.Errorf("expected 1 grow row, got %d", p.GrowRows)
	}
	if p.GrowCols != 1 {
		t.Errorf("expected 1 grow col, got %d", p.GrowCols)
	}
}

func TestPlanJaggedPadded(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c"}}
	p := PlanPaste(rows, nil, grid.Position{}, 5, 5)

	got := planValues(t, p)
	if v, ok := got[grid.Position{Row: 1, Col: 1}]; !ok || v != "" {
		t.Errorf("expected padded empty write at (1,1), got %q (present=%v)", v, ok)
	}
}

func TestPlanEmpty(t *testing.T) {
	p := PlanPaste(nil, nil, grid.Position{}, 3, 3)
	if !p.IsEmpty() {
		t.Error("expected empty plan for empty payload")
	}
}
