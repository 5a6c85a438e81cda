package layout

import (
	"strings"

	"github.com/tsawler/recipetext/lines"
)

// SoftBreak is the character Meal-Master writers use to end a paragraph
// without a blank line
const SoftBreak = '\x14'

// ParagraphConfig holds configuration for paragraph grouping
type ParagraphConfig struct {
	// SoftBreak ends the paragraph it appears in. Text after an embedded
	// marker starts a new paragraph. Zero disables it.
	// Default: '\x14'
	SoftBreak rune
}

// DefaultParagraphConfig returns the default paragraph configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		SoftBreak: SoftBreak,
	}
}

// ParagraphGrouper joins wrapped free-text lines into paragraphs
type ParagraphGrouper struct {
	config ParagraphConfig
}

// NewParagraphGrouper creates a grouper with default configuration
func NewParagraphGrouper() *ParagraphGrouper {
	return NewParagraphGrouperWithConfig(DefaultParagraphConfig())
}

// NewParagraphGrouperWithConfig creates a grouper with custom configuration
func NewParagraphGrouperWithConfig(config ParagraphConfig) *ParagraphGrouper {
	return &ParagraphGrouper{config: config}
}

// Group joins lines into paragraphs. A blank line ends the current paragraph;
// other lines are trimmed and joined with a single space.
func (g *ParagraphGrouper) Group(in []string) []string {
	var p paragraphBuffer
	for _, line := range in {
		g.add(&p, line)
	}
	p.flush()
	return p.out
}

// Consume groups lines from the cursor until a stop line or the end of input.
// The stop line is consumed. The second result reports whether one was found.
// A nil stop reads to the end of input.
func (g *ParagraphGrouper) Consume(c *lines.Cursor, stop Sentinel) ([]string, bool) {
	var p paragraphBuffer
	found := false
	for c.HasMore() {
		line := c.Current()
		c.Advance()
		if stop != nil && stop(line) {
			found = true
			break
		}
		g.add(&p, line)
	}
	p.flush()
	return p.out, found
}

func (g *ParagraphGrouper) add(p *paragraphBuffer, line string) {
	if lines.IsBlank(line) {
		p.flush()
		return
	}
	if g.config.SoftBreak == 0 || !strings.ContainsRune(line, g.config.SoftBreak) {
		p.append(line)
		return
	}

	parts := strings.Split(line, string(g.config.SoftBreak))
	for i, part := range parts {
		p.append(part)
		if i < len(parts)-1 {
			p.flush()
		}
	}
}

// paragraphBuffer accumulates the words of the open paragraph
type paragraphBuffer struct {
	words []string
	out   []string
}

func (p *paragraphBuffer) append(line string) {
	if line = strings.TrimSpace(line); line != "" {
		p.words = append(p.words, line)
	}
}

func (p *paragraphBuffer) flush() {
	if len(p.words) == 0 {
		return
	}
	p.out = append(p.out, strings.Join(p.words, " "))
	p.words = p.words[:0]
}
