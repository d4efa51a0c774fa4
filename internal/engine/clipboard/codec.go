package clipboard

import "strings"

// Field and row delimiters of the interchange format.
const (
	fieldSep = '\t'
	rowSep   = '\n'
	quote    = '"'
)

// Encode serializes a rectangular range of cell values into the spreadsheet
// interchange text format: TAB-separated fields, LF-separated rows, with a
// trailing LF after the last row.
//
// Per cell, line endings are normalized (CRLF and lone CR become LF) and
// trailing newlines are stripped. A field is quoted iff it contains LF, TAB
// or a double quote; inside a quoted field, double quotes are doubled.
func Encode(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for c, value := range row {
			if c > 0 {
				b.WriteByte(fieldSep)
			}
			b.WriteString(encodeField(value))
		}
		b.WriteByte(rowSep)
	}
	return b.String()
}

func encodeField(value string) string {
	value = normalizeNewlines(value)
	value = strings.TrimRight(value, "\n")
	if !strings.ContainsAny(value, "\n\t\"") {
		return value
	}
	var b strings.Builder
	b.WriteByte(quote)
	for i := 0; i < len(value); i++ {
		if value[i] == quote {
			b.WriteByte(quote)
		}
		b.WriteByte(value[i])
	}
	b.WriteByte(quote)
	return b.String()
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Decode parses interchange text back into rows of field values using a
// single-pass scanner.
//
// Outside quotes, TAB breaks a field and LF breaks a row; a double quote
// opens quoting. Inside quotes, TAB and LF are literal content, a doubled
// quote unescapes to one literal quote, and a lone quote closes quoting.
// CRLF and lone CR are treated as LF throughout. An unterminated quote is
// tolerated: whatever was accumulated is flushed at end of input.
//
// Plain unquoted TAB/LF-delimited text that did not originate from Encode
// decodes identically to the unescaped case. Empty input yields no rows.
func Decode(text string) [][]string {
	if text == "" {
		return nil
	}
	text = normalizeNewlines(text)

	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
		quoted   bool // current field contained a quoted section
	)

	flushField := func() {
		row = append(row, field.String())
		field.Reset()
		quoted = false
	}
	flushRow := func() {
		flushField()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inQuotes {
			if ch == quote {
				if i+1 < len(text) && text[i+1] == quote {
					field.WriteByte(quote)
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field.WriteByte(ch)
			continue
		}
		switch ch {
		case quote:
			inQuotes = true
			quoted = true
		case fieldSep:
			flushField()
		case rowSep:
			flushRow()
		default:
			field.WriteByte(ch)
		}
	}

	// Flush a pending partial row (input without trailing LF, or an
	// unterminated quote).
	if field.Len() > 0 || len(row) > 0 || quoted {
		flushRow()
	}
	return rows
}
