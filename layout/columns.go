package layout

import (
	"strings"
	"unicode"
)

// ColumnConfig holds configuration for dual-column item lines
type ColumnConfig struct {
	// SplitAt is the character offset where the second column starts. Lines
	// whose right-trimmed width is at most SplitAt are single column.
	// Zero disables splitting.
	SplitAt int

	// Order is the reading order of the two columns
	// Default: DownThenAcross
	Order ColumnOrder
}

// ColumnBuffer collects the item lines of one heading group
type ColumnBuffer struct {
	config ColumnConfig
	rows   []columnRow
}

// NewColumnBuffer creates an empty buffer
func NewColumnBuffer(config ColumnConfig) *ColumnBuffer {
	return &ColumnBuffer{config: config}
}

// Add buffers an item line, splitting it when it spans two columns
func (b *ColumnBuffer) Add(line string) {
	left, right, dual := SplitColumns(line, b.config.SplitAt)
	b.rows = append(b.rows, columnRow{left: left, right: right, dual: dual})
}

// Len returns the number of buffered physical lines
func (b *ColumnBuffer) Len() int {
	return len(b.rows)
}

// Flush returns the buffered candidates in reading order and empties the
// buffer
func (b *ColumnBuffer) Flush() []string {
	out := b.config.Order.order(b.rows)
	b.rows = b.rows[:0]
	return out
}

// SplitColumns divides a line at the character offset splitAt when its
// right-trimmed width exceeds it
func SplitColumns(line string, splitAt int) (left, right string, dual bool) {
	if splitAt <= 0 || Width(strings.TrimRightFunc(line, unicode.IsSpace)) <= splitAt {
		return line, "", false
	}
	return Slice(line, 0, splitAt), Slice(line, splitAt, -1), true
}

// Candidate is one logical item after continuation merging
type Candidate struct {
	// Line is the raw item text in its column, or "" when the candidate was
	// built from a continuation with nothing before it
	Line string

	// Continuations are the marker-stripped, trimmed continuation texts
	Continuations []string
}

// MergeContinuations folds continuation lines into the candidate before
// them. A line whose first non-space character is marker extends the
// previous candidate; blank lines are dropped. A marker of 0 disables
// merging.
func MergeContinuations(lines []string, marker rune) []Candidate {
	var out []Candidate
	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}

		if marker != 0 && strings.HasPrefix(trimmed, string(marker)) {
			text := strings.TrimSpace(trimmed[len(string(marker)):])
			if len(out) == 0 {
				out = append(out, Candidate{})
			}
			if text != "" {
				last := &out[len(out)-1]
				last.Continuations = append(last.Continuations, text)
			}
			continue
		}

		out = append(out, Candidate{Line: line})
	}

	// A leading marker-only line leaves an empty candidate behind
	if len(out) > 0 && out[0].Line == "" && len(out[0].Continuations) == 0 {
		out = out[1:]
	}
	return out
}

// JoinText appends the continuation texts to text, space separated
func (c Candidate) JoinText(text string) string {
	parts := make([]string, 0, len(c.Continuations)+1)
	if text = strings.TrimSpace(text); text != "" {
		parts = append(parts, text)
	}
	parts = append(parts, c.Continuations...)
	return strings.Join(parts, " ")
}
