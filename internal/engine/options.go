package engine

import (
	"github.com/dshills/gridkit/internal/integration/sysclip"
	"github.com/dshills/gridkit/internal/log"
)

// Default configuration values.
const (
	DefaultRows = 3
	DefaultCols = 3
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithSize sets the initial grid size. Sizes below 1 are raised to 1.
func WithSize(rows, cols int) Option {
	return func(e *Engine) {
		e.rows = rows
		e.cols = cols
	}
}

// WithValues seeds the grid from a matrix of strings, overriding WithSize.
func WithValues(values [][]string) Option {
	return func(e *Engine) {
		e.vals = values
	}
}

// WithMaxHistoryEntries sets the undo history cap.
func WithMaxHistoryEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxHistory = max
		}
	}
}

// WithClipboard sets the clipboard used by Copy/Cut/Paste.
func WithClipboard(clip sysclip.Clipboard) Option {
	return func(e *Engine) {
		e.clip = clip
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}
