// Package tui is the demo terminal frontend for the grid engine. It paints
// the grid with tcell and routes keyboard and mouse gestures to the engine's
// selection and mutation APIs. It carries no editing logic of its own beyond
// a minimal in-cell input buffer.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridkit/internal/engine"
	"github.com/dshills/gridkit/internal/log"
)

const (
	defaultCellWidth = 10
	headerRows       = 1 // column header line
	statusRows       = 1 // status line at the bottom
)

// View renders a grid engine onto a tcell screen and drives it from input
// events. Not safe for concurrent use; Run owns the event loop.
type View struct {
	screen tcell.Screen
	eng    *engine.Engine
	log    *log.Logger

	editing bool
	editBuf []rune

	quit bool
}

// New creates a view over the given engine on a real terminal screen.
func New(eng *engine.Engine, logger *log.Logger) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, eng, logger), nil
}

// NewWithScreen creates a view on a caller-supplied screen (a tcell
// simulation screen in tests).
func NewWithScreen(screen tcell.Screen, eng *engine.Engine, logger *log.Logger) *View {
	if logger == nil {
		logger = log.Null
	}
	return &View{screen: screen, eng: eng, log: logger}
}

// Run initializes the screen and processes events until quit.
func (v *View) Run() error {
	if err := v.screen.Init(); err != nil {
		return err
	}
	defer v.screen.Fini()

	v.screen.EnableMouse()
	v.screen.EnablePaste()

	for !v.quit {
		v.render()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			v.handleKey(ev)
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case nil:
			return nil
		}
	}
	return nil
}

// Stop requests the event loop to exit.
func (v *View) Stop() {
	v.quit = true
	// Wake the poll loop.
	_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// ============================================================================
// Input Handling
// ============================================================================

func (v *View) handleKey(ev *tcell.EventKey) {
	if v.editing {
		v.handleEditKey(ev)
		return
	}

	extend := ev.Modifiers()&tcell.ModShift != 0
	v.eng.SetExtending(extend)

	switch ev.Key() {
	case tcell.KeyUp:
		v.eng.Move(engine.Up)
	case tcell.KeyDown:
		v.eng.Move(engine.Down)
	case tcell.KeyLeft:
		v.eng.Move(engine.Left)
	case tcell.KeyRight:
		v.eng.Move(engine.Right)
	case tcell.KeyEnter, tcell.KeyF2:
		v.beginEdit(v.eng.Value(v.eng.ActiveCell().Row, v.eng.ActiveCell().Col))
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		v.eng.UpdateRange(v.eng.SelectionPositions(), "")
	case tcell.KeyEscape:
		v.eng.ClearSelection()
	case tcell.KeyCtrlA:
		v.eng.SelectAll()
	case tcell.KeyCtrlC:
		if err := v.eng.Copy(); err != nil {
			v.log.Warn("copy failed: %v", err)
		}
	case tcell.KeyCtrlX:
		if err := v.eng.Cut(); err != nil {
			v.log.Warn("cut failed: %v", err)
		}
	case tcell.KeyCtrlV:
		if err := v.eng.Paste(); err != nil {
			v.log.Warn("paste failed: %v", err)
		}
	case tcell.KeyCtrlZ:
		_ = v.eng.Undo()
	case tcell.KeyCtrlY:
		_ = v.eng.Redo()
	case tcell.KeyCtrlN:
		v.eng.AddRow()
	case tcell.KeyCtrlB:
		v.eng.AddColumn()
	case tcell.KeyCtrlQ:
		v.quit = true
	case tcell.KeyRune:
		// Typing starts a fresh edit, replacing the cell value.
		v.beginEdit("")
		v.editBuf = append(v.editBuf, ev.Rune())
	}
}

func (v *View) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		active := v.eng.ActiveCell()
		v.eng.UpdateCell(active.Row, active.Col, string(v.editBuf))
		v.endEdit()
		v.eng.Move(engine.Down)
	case tcell.KeyEscape:
		v.endEdit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(v.editBuf) > 0 {
			v.editBuf = v.editBuf[:len(v.editBuf)-1]
		}
	case tcell.KeyTab:
		active := v.eng.ActiveCell()
		v.eng.UpdateCell(active.Row, active.Col, string(v.editBuf))
		v.endEdit()
		v.eng.Move(engine.Right)
	case tcell.KeyRune:
		v.editBuf = append(v.editBuf, ev.Rune())
	}
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos, ok := v.cellAt(x, y)
	if !ok {
		return
	}

	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		if v.eng.IsDragging() {
			v.eng.DragTo(pos)
		} else {
			extend := ev.Modifiers()&tcell.ModShift != 0
			v.eng.BeginDrag(pos, extend)
		}
	default:
		if v.eng.IsDragging() {
			v.eng.EndDrag()
		}
	}
}

func (v *View) beginEdit(initial string) {
	v.editing = true
	v.editBuf = []rune(initial)
}

func (v *View) endEdit() {
	v.editing = false
	v.editBuf = nil
}

// ============================================================================
// Rendering
// ============================================================================

func (v *View) render() {
	v.screen.Clear()

	rows, cols := v.eng.Rows(), v.eng.Cols()
	active := v.eng.ActiveCell()

	headerStyle := tcell.StyleDefault.Bold(true)
	baseStyle := tcell.StyleDefault
	selStyle := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	activeStyle := tcell.StyleDefault.Reverse(true)

	// Column headers.
	for c := 0; c < cols; c++ {
		v.drawText(v.colX(c), 0, v.cellWidth(c), columnLabel(c), headerStyle)
	}

	// Cells.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := engine.Position{Row: r, Col: c}
			style := baseStyle
			if v.eng.Selected(pos) {
				style = selStyle
			}
			if pos == active {
				style = activeStyle
			}
			text := v.eng.Value(r, c)
			if v.editing && pos == active {
				text = string(v.editBuf)
			}
			v.drawText(v.colX(c), headerRows+r, v.cellWidth(c), text, style)
		}
	}

	v.renderStatus()
	v.screen.Show()
}

func (v *View) renderStatus() {
	_, h := v.screen.Size()
	status := "cell " + v.eng.ActiveCell().String()
	if v.editing {
		status += "  EDIT"
	}
	if v.eng.CanUndo() {
		status += "  ^Z undo"
	}
	if v.eng.CanRedo() {
		status += "  ^Y redo"
	}
	status += "  ^C copy ^X cut ^V paste ^N +row ^B +col ^Q quit"
	w, _ := v.screen.Size()
	v.drawText(0, h-statusRows, w, status, tcell.StyleDefault.Dim(true))
}

// drawText writes text clipped and padded to width columns.
func (v *View) drawText(x, y, width int, text string, style tcell.Style) {
	runes := []rune(text)
	for i := 0; i < width; i++ {
		ch := ' '
		if i < len(runes) {
			ch = runes[i]
		}
		if i == width-1 && len(runes) > width {
			ch = '…'
		}
		v.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// cellWidth returns the display width of a column, honoring assigned widths.
func (v *View) cellWidth(col int) int {
	if w := v.eng.ColumnWidth(col); w > 0 {
		return w
	}
	return defaultCellWidth
}

// colX returns the screen x of a column's first character.
func (v *View) colX(col int) int {
	x := 0
	for c := 0; c < col; c++ {
		x += v.cellWidth(c) + 1
	}
	return x
}

// cellAt maps a screen coordinate to a grid position.
func (v *View) cellAt(x, y int) (engine.Position, bool) {
	row := y - headerRows
	if row < 0 || row >= v.eng.Rows() {
		return engine.Position{}, false
	}
	cx := 0
	for c := 0; c < v.eng.Cols(); c++ {
		w := v.cellWidth(c)
		if x >= cx && x < cx+w {
			return engine.Position{Row: row, Col: c}, true
		}
		cx += w + 1
	}
	return engine.Position{}, false
}

// columnLabel returns the spreadsheet-style label for a column (A, B, ... Z,
// AA, AB, ...).
func columnLabel(col int) string {
	label := ""
	for col >= 0 {
		label = string(rune('A'+col%26)) + label
		col = col/26 - 1
	}
	return label
}
