package layout

import "strings"

// ColumnOrder determines how the two halves of dual-column item lines are
// read back
type ColumnOrder int

const (
	// DownThenAcross reads all of column 1 top to bottom, then all of
	// column 2. This is the default.
	DownThenAcross ColumnOrder = iota
	// AcrossThenDown reads each physical line left half then right half
	AcrossThenDown
)

// String returns a string representation of the column order
func (o ColumnOrder) String() string {
	switch o {
	case AcrossThenDown:
		return "across-then-down"
	default:
		return "down-then-across"
	}
}

// ParseColumnOrder parses "down-then-across" or "across-then-down".
// Unknown values report false.
func ParseColumnOrder(s string) (ColumnOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "down-then-across", "down":
		return DownThenAcross, true
	case "across-then-down", "across":
		return AcrossThenDown, true
	default:
		return DownThenAcross, false
	}
}

// columnRow is one physical item line, possibly split into two halves
type columnRow struct {
	left  string
	right string
	dual  bool
}

// order flattens rows into reading order
func (o ColumnOrder) order(rows []columnRow) []string {
	out := make([]string, 0, len(rows)*2)
	switch o {
	case AcrossThenDown:
		for _, r := range rows {
			out = append(out, r.left)
			if r.dual {
				out = append(out, r.right)
			}
		}
	default:
		for _, r := range rows {
			out = append(out, r.left)
		}
		for _, r := range rows {
			if r.dual {
				out = append(out, r.right)
			}
		}
	}
	return out
}
