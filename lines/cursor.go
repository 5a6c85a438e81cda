// Package lines provides the line sequence primitives shared by the recipe
// format parsers: splitting text into lines and a Cursor that walks a line
// slice with single-line lookahead.
//
// A Cursor never fails. Reading past the last line leaves it exhausted, where
// Current returns the empty string and HasMore reports false, so each parse
// stage can simply return and let the caller finalize whatever it buffered.
//
//	c := lines.NewCursor(block)
//	for c.SkipBlank() {
//	    handle(c.Current())
//	    c.Advance()
//	}
package lines

import (
	"strings"
	"unicode"
)

// Cursor is a sequential reader over a line slice with one line of lookahead.
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor creates a cursor positioned on the first line.
func NewCursor(lines []string) *Cursor {
	return &Cursor{lines: lines}
}

// HasMore reports whether the cursor is positioned on a line.
func (c *Cursor) HasMore() bool {
	return c.pos < len(c.lines)
}

// Current returns the line under the cursor, or "" when exhausted.
func (c *Cursor) Current() string {
	if !c.HasMore() {
		return ""
	}
	return c.lines[c.pos]
}

// Peek returns the line after the current one.
// The second result is false when there is no such line.
func (c *Cursor) Peek() (string, bool) {
	if c.pos+1 >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos+1], true
}

// Advance moves to the next line and reports whether the cursor still has a
// current line. Advancing an exhausted cursor is a no-op.
func (c *Cursor) Advance() bool {
	if c.pos < len(c.lines) {
		c.pos++
	}
	return c.HasMore()
}

// Pos returns the 0-based index of the current line.
// An exhausted cursor reports the line count.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total number of lines.
func (c *Cursor) Len() int {
	return len(c.lines)
}

// SkipBlank advances past whitespace-only lines and reports whether a
// non-blank line is now current.
func (c *Cursor) SkipBlank() bool {
	for c.HasMore() && IsBlank(c.Current()) {
		c.pos++
	}
	return c.HasMore()
}

// Rest returns the unread lines including the current one.
func (c *Cursor) Rest() []string {
	if !c.HasMore() {
		return nil
	}
	return c.lines[c.pos:]
}

// IsBlank reports whether a line contains only white space.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// TrimRight removes trailing white space, including line terminators.
func TrimRight(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// Split breaks text into lines. Both "\n" and "\r\n" terminate a line and the
// terminators are removed. A trailing terminator does not produce an extra
// empty line.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	out := strings.Split(text, "\n")
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
