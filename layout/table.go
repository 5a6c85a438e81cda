package layout

import (
	"strings"

	"github.com/tsawler/recipetext/lines"
)

// TableConfig describes the ingredient table of one export format
type TableConfig struct {
	// TableHeaders are optional column title lines that may precede the
	// table, compared trimmed and case-insensitively, each at most once and
	// in order
	TableHeaders []string

	// Heading recognizes group heading lines. Nil disables headings.
	Heading *HeadingMatcher

	// IsItem recognizes item lines, continuations included. Required.
	IsItem func(line string) bool

	// Columns controls dual-column splitting of item lines
	Columns ColumnConfig

	// ContinuationMarker starts a line that extends the previous item.
	// Zero disables merging.
	ContinuationMarker rune

	// Suspect flags lines that end the table but look like misaligned
	// items. Optional.
	Suspect func(line string) bool
}

// TableEntry is one reconstructed row: a group heading or an item candidate
type TableEntry struct {
	IsHeading bool

	// Heading is the heading text when IsHeading is set
	Heading string

	Candidate
}

// TableResult holds the outcome of a table scan
type TableResult struct {
	Entries []TableEntry

	// HeadersSeen counts the table header lines that were matched
	HeadersSeen int

	Issues []Issue
}

type tableState int

const (
	stateSeekingTable tableState = iota
	stateCollecting
	stateDone
)

// TableScanner reads an ingredient table from a cursor
type TableScanner struct {
	config TableConfig
}

// NewTableScanner creates a scanner for the given table layout
func NewTableScanner(config TableConfig) *TableScanner {
	return &TableScanner{config: config}
}

// Scan consumes the table starting at the cursor. It stops on the first
// non-blank line that is neither a heading nor an item, leaving it current.
// Scan never fails; odd lines simply end the table.
func (s *TableScanner) Scan(c *lines.Cursor) TableResult {
	var result TableResult
	buf := NewColumnBuffer(s.config.Columns)

	flush := func() {
		for _, cand := range MergeContinuations(buf.Flush(), s.config.ContinuationMarker) {
			result.Entries = append(result.Entries, TableEntry{Candidate: cand})
		}
	}

	state := stateSeekingTable
	for state != stateDone {
		switch state {
		case stateSeekingTable:
			c.SkipBlank()
			for _, header := range s.config.TableHeaders {
				if c.HasMore() && strings.EqualFold(strings.TrimSpace(c.Current()), header) {
					result.HeadersSeen++
					c.Advance()
				}
			}
			state = stateCollecting

		case stateCollecting:
			if !c.HasMore() {
				state = stateDone
				break
			}

			line := c.Current()
			if lines.IsBlank(line) {
				c.Advance()
				break
			}
			if s.config.Heading != nil {
				if text, ok := s.config.Heading.Match(line); ok {
					flush()
					result.Entries = append(result.Entries, TableEntry{IsHeading: true, Heading: text})
					c.Advance()
					break
				}
			}
			if s.config.IsItem != nil && s.config.IsItem(line) {
				buf.Add(line)
				c.Advance()
				break
			}

			if s.config.Suspect != nil && s.config.Suspect(line) {
				result.Issues = append(result.Issues,
					NewLineIssue(IssueUnclassifiable, c.Pos(), "misaligned ingredient line ends the ingredient list"))
			}
			state = stateDone
		}
	}

	flush()
	return result
}
