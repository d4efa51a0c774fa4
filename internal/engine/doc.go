// Package engine is the mutation facade for the grid editing core.
//
// Engine combines the grid data model, rectangular selection state and
// snapshot-based undo history into a unified, thread-safe API, and carries
// the clipboard commands (copy, cut, paste) that tie them together.
//
// Every value or structural mutation flows through the facade and is paired
// with exactly one history entry: a paste that grows the grid and writes a
// hundred cells is still a single undo step. Layout-only changes (column
// widths) never create history entries and are not undoable.
//
// Basic usage:
//
//	e := engine.New(
//	    engine.WithSize(4, 4),
//	    engine.WithClipboard(sysclip.Best()),
//	)
//
//	e.UpdateCell(0, 0, "hello")
//	e.SelectCell(engine.Position{Row: 0, Col: 0})
//	e.SetExtending(true)
//	e.Move(engine.Right) // selection now spans two cells
//
//	_ = e.Copy()
//	_ = e.Undo()
//
// Error Handling:
//
// Out-of-range positions are absorbed as silent no-ops; structural removal
// below the 1x1 floor is refused silently. Clipboard I/O failures are logged
// and returned without touching grid or history. No failure leaves the grid
// in a partial state.
package engine
