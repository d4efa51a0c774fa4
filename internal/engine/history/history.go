package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/gridkit/internal/engine/grid"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds the snapshot stack.
const DefaultMaxEntries = 50

// Action tags the kind of mutation a snapshot resulted from.
type Action string

const (
	ActionInit         Action = "init"
	ActionSetCell      Action = "set-cell"
	ActionSetRange     Action = "set-range"
	ActionSetDistinct  Action = "set-distinct"
	ActionAddRow       Action = "add-row"
	ActionAddColumn    Action = "add-column"
	ActionRemoveRow    Action = "remove-row"
	ActionRemoveColumn Action = "remove-column"
	ActionCut          Action = "cut"
	ActionPaste        Action = "paste"
)

// Entry is one point on the undo/redo timeline.
type Entry struct {
	Action    Action
	Snapshot  *grid.Grid
	Timestamp time.Time
}

// History is a bounded stack of full grid snapshots with a linear undo/redo
// cursor. It is seeded with the initial grid, so the cursor always points at
// a valid snapshot. History owns independent deep copies: snapshots never
// alias the live grid, and returned snapshots are copies as well.
//
// Layout-only changes (column widths) are never recorded; they are not
// undoable.
type History struct {
	mu         sync.Mutex
	entries    []Entry
	cursor     int
	maxEntries int
}

// New creates a history seeded with a deep copy of the initial grid.
func New(maxEntries int, initial *grid.Grid) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		entries:    []Entry{{Action: ActionInit, Snapshot: initial.Clone(), Timestamp: time.Now()}},
		maxEntries: maxEntries,
	}
}

// Push records a new snapshot. Any entries beyond the cursor (the redo tail)
// are dropped first, then the oldest entry is evicted once the stack exceeds
// its cap.
func (h *History) Push(action Action, g *grid.Grid) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, Entry{
		Action:    action,
		Snapshot:  g.Clone(),
		Timestamp: time.Now(),
	})
	h.cursor++

	if len(h.entries) > h.maxEntries {
		excess := len(h.entries) - h.maxEntries
		h.entries = h.entries[excess:]
		h.cursor -= excess
	}
}

// Undo steps the cursor back and returns a deep copy of that snapshot.
// Returns ErrNothingToUndo at the start of the timeline.
func (h *History) Undo() (*grid.Grid, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == 0 {
		return nil, ErrNothingToUndo
	}
	h.cursor--
	return h.entries[h.cursor].Snapshot.Clone(), nil
}

// Redo steps the cursor forward and returns a deep copy of that snapshot.
// Returns ErrNothingToRedo at the end of the timeline.
func (h *History) Redo() (*grid.Grid, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor >= len(h.entries)-1 {
		return nil, ErrNothingToRedo
	}
	h.cursor++
	return h.entries[h.cursor].Snapshot.Clone(), nil
}

// CanUndo returns true if the cursor is past the oldest retained entry.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor > 0
}

// CanRedo returns true if the cursor is behind the newest entry.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor < len(h.entries)-1
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Current returns the action tag of the entry under the cursor.
func (h *History) Current() Action {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.cursor].Action
}

// Clear resets the history, re-seeded with a deep copy of the given grid.
func (h *History) Clear(initial *grid.Grid) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = []Entry{{Action: ActionInit, Snapshot: initial.Clone(), Timestamp: time.Now()}}
	h.cursor = 0
}
