package engine

import (
	"errors"

	"github.com/dshills/gridkit/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrNothingToUndo indicates the undo timeline is at its start.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the undo timeline is at its end.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrNoClipboard indicates no clipboard was configured.
	ErrNoClipboard = errors.New("no clipboard configured")

	// ErrEmptyClipboard indicates a paste found no text on the clipboard.
	ErrEmptyClipboard = errors.New("clipboard is empty")
)
