// Package history provides undo/redo for the grid editing engine.
//
// Unlike command-replay schemes, history here is a bounded stack of full grid
// snapshots with a linear cursor:
//
//   - The stack is seeded with the initial grid, so the cursor always points
//     at a valid state.
//   - Push drops any redo tail past the cursor, appends a deep copy and
//     evicts the oldest entry once the cap (50 by default) is exceeded.
//   - Undo/Redo move the cursor and return a deep copy of the snapshot at
//     the new position.
//
// Snapshots are independent deep copies in both directions: mutating the
// live grid never changes a stored snapshot, and mutating a returned
// snapshot never changes the stack.
//
// Layout-only changes (column widths) are never recorded; width adjustments
// are not undoable.
package history
