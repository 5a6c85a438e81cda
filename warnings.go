package recipetext

import (
	"fmt"
	"strings"

	"github.com/tsawler/recipetext/layout"
)

// Warning is a non-fatal problem found in one recipe block
type Warning struct {
	// BlockIndex is the 0-based position of the recipe in the input
	BlockIndex int

	// Title of the recipe, which may be empty
	Title string

	layout.Issue
}

// String returns a human readable description
func (w Warning) String() string {
	title := w.Title
	if title == "" {
		title = "untitled"
	}
	return fmt.Sprintf("recipe %d (%s): %s", w.BlockIndex+1, title, w.Issue)
}

// FormatWarnings joins warnings into a single string, one per line
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
