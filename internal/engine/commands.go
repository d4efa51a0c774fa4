package engine

import (
	"github.com/dshills/gridkit/internal/engine/clipboard"
	"github.com/dshills/gridkit/internal/engine/history"
	"github.com/dshills/gridkit/internal/engine/selection"
)

// Copy encodes the current selection (or the active cell when the selection
// is collapsed) and writes it to the clipboard. A clipboard failure leaves
// grid and history untouched; it is logged and returned.
func (e *Engine) Copy() error {
	e.mu.RLock()
	clip := e.clip
	ext := e.sel.Extent()
	values := e.grid.ValuesRange(ext.MinRow, ext.MinCol, ext.MaxRow, ext.MaxCol)
	e.mu.RUnlock()

	if clip == nil {
		return ErrNoClipboard
	}
	if values == nil {
		return nil
	}
	if err := clip.Write(clipboard.Encode(values)); err != nil {
		e.log.Error("clipboard write failed: %v", err)
		return err
	}
	return nil
}

// Cut copies the selection and then blanks it as a single history entry.
// Nothing is blanked when the copy fails.
func (e *Engine) Cut() error {
	if err := e.Copy(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.updateRangeLocked(e.sel.Positions(), "", history.ActionCut)
	return nil
}

// Paste reads the clipboard, decodes it and applies the broadcast plan:
// a rectangular payload lands at the selection's top-left, a single row or
// column tiles across a taller or wider selection, and a single cell
// broadcasts to every selected cell. The grid grows by the exact deficit
// before any value is written, and the whole paste is one history entry.
//
// The grid and selection are consulted only after the clipboard read
// resolves, so a paste racing a concurrent edit uses the latest state.
// Read failures and empty clipboards are logged no-ops.
func (e *Engine) Paste() error {
	clip := e.clipboard()
	if clip == nil {
		return ErrNoClipboard
	}

	text, err := clip.Read()
	if err != nil {
		e.log.Error("clipboard read failed: %v", err)
		return err
	}
	if text == "" {
		e.log.Debug("paste: clipboard empty")
		return ErrEmptyClipboard
	}

	rows := clipboard.Decode(text)
	if len(rows) == 0 {
		return ErrEmptyClipboard
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var ext *selection.Extent
	if e.sel.IsMulti() {
		x := e.sel.Extent()
		ext = &x
	}
	plan := clipboard.PlanPaste(rows, ext, e.sel.Active(), e.grid.Rows(), e.grid.Cols())
	if plan.IsEmpty() {
		return nil
	}

	// Growth and writes commit together through one batched update.
	if plan.GrowRows > 0 {
		e.grid.AddRows(plan.GrowRows)
	}
	if plan.GrowCols > 0 {
		e.grid.AddColumns(plan.GrowCols)
	}
	e.grid.SetDistinct(plan.Updates)
	e.hist.Push(history.ActionPaste, e.grid)
	return nil
}

func (e *Engine) clipboard() Clipboard {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clip
}
