package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/recipetext/lines"
)

var (
	// a number near the start of the line, outside the quantity column
	misalignedItemPattern = regexp.MustCompile(`^\s{0,8}\d[\d./ ]*\s+\S`)

	// "1. Mix" or "2) Bake"
	numberedStepPattern = regexp.MustCompile(`^\s*\d+[.)]\s`)

	attributeLabelPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z /&'.-]{0,30}$`)
)

// LooksLikeItem reports whether a line that is not an item still starts with
// a quantity, as a misaligned item would. Numbered steps such as "1. Mix"
// do not count.
func LooksLikeItem(line string) bool {
	return misalignedItemPattern.MatchString(line) && !numberedStepPattern.MatchString(line)
}

// IsAttributeLabel reports whether label can name a free-form metadata line.
// Labels holding a dash run belong to framed headings and are rejected.
func IsAttributeLabel(label string) bool {
	return attributeLabelPattern.MatchString(label) && !strings.Contains(label, "--")
}

// ScanAttributes reads "Label: value" lines at the cursor, skipping blank
// lines, and passes each pair to set. It stops without consuming at a line
// accepted by stop or one without an attribute label, and returns the number
// of attributes read.
func ScanAttributes(c *lines.Cursor, stop Sentinel, set func(label, value string)) int {
	n := 0
	for c.SkipBlank() {
		line := c.Current()
		if stop != nil && stop(line) {
			break
		}
		label, value, ok := LabelValue(line)
		if !ok || !IsAttributeLabel(label) {
			break
		}
		set(label, value)
		c.Advance()
		n++
	}
	return n
}
