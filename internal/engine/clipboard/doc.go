// Package clipboard implements the spreadsheet interchange codec and the
// paste-broadcast planner.
//
// # Interchange Format
//
// The text format is the one Excel and Sheets put on the clipboard for cell
// ranges: TAB-separated fields, LF-separated rows, a trailing LF after the
// last row. A field is quoted iff it contains LF, TAB or a double quote;
// quotes inside a quoted field are doubled. Cell values are normalized
// before encoding: CRLF and lone CR become LF, trailing newlines are
// stripped. Decode also accepts plain unquoted TAB/LF text and tolerates
// unterminated quotes by flushing what was accumulated at end of input.
//
// # Paste Broadcasting
//
// PlanPaste reproduces spreadsheet tiling semantics. A rectangular payload
// is placed once at the destination anchor. A single row pasted into a
// taller selection repeats downward, a single column pasted into a wider
// selection repeats rightward, and a single cell pasted into a multi-cell
// selection fills the whole selection rectangle. The plan carries the exact
// row/column growth deficit so the engine can grow the grid before writing
// and commit every write in one batch: one paste, one history entry.
package clipboard
