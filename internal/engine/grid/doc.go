// Package grid provides the rectangular cell matrix underlying the editing
// engine.
//
// The grid package handles:
//
//   - Cell storage as a non-jagged matrix of text values
//   - Bounds-checked reads and writes (out-of-range input is a silent no-op)
//   - Structural growth: appending rows and columns, singly or in batches
//   - Batched distinct updates that grow the grid before any value is written
//   - Deep copies for history snapshots
//
// Rectangularity Invariant:
//
// Every row has the same length at all times. Rows are appended with the
// current column count, columns are appended to every row, and removal
// refuses to shrink the grid below 1x1. SetDistinct grows rows and columns
// to cover the maximum referenced position before applying any update, so a
// failed batch can never leave the grid partially written or jagged.
//
// Basic usage:
//
//	g := grid.New(3, 3)
//	g.Set(grid.Position{Row: 1, Col: 2}, "hello")
//
//	// Batched updates, growing as needed
//	g.SetDistinct([]grid.Update{
//	    {Pos: grid.Position{Row: 5, Col: 5}, Value: "far"},
//	})
//
// Thread Safety:
//
// Grid is not thread-safe. The owning engine serializes access.
package grid
