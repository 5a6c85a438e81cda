package layout

import (
	"fmt"
	"regexp"
	"strings"
)

// HeadingConfig holds configuration for ingredient heading detection.
// A heading line is an optional prefix token, a run of dashes, the heading
// text and another run of dashes:
//
//	-----------------------------FOR THE PIE-----------------------------
//	MMMMM---------------------------QUICK OATS---------------------------
type HeadingConfig struct {
	// Prefix is an optional token allowed before the first dash run
	// Default: none
	Prefix string

	// MinDashes is the minimum length of each dash run
	// Default: 5
	MinDashes int
}

// DefaultHeadingConfig returns the default heading configuration
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MinDashes: 5,
	}
}

// HeadingMatcher recognizes dash-delimited heading lines
type HeadingMatcher struct {
	config  HeadingConfig
	pattern *regexp.Regexp
}

// NewHeadingMatcher creates a matcher with default configuration
func NewHeadingMatcher() *HeadingMatcher {
	return NewHeadingMatcherWithConfig(DefaultHeadingConfig())
}

// NewHeadingMatcherWithConfig creates a matcher with custom configuration
func NewHeadingMatcherWithConfig(config HeadingConfig) *HeadingMatcher {
	if config.MinDashes < 1 {
		config.MinDashes = DefaultHeadingConfig().MinDashes
	}

	prefix := ""
	if config.Prefix != "" {
		prefix = "(?:" + regexp.QuoteMeta(config.Prefix) + ")?"
	}
	run := fmt.Sprintf("-{%d,}", config.MinDashes)

	return &HeadingMatcher{
		config:  config,
		pattern: regexp.MustCompile("^" + prefix + run + "([^-]+)" + run),
	}
}

// Match returns the trimmed heading text of a heading line.
// Lines whose inner text is blank are not headings.
func (m *HeadingMatcher) Match(line string) (string, bool) {
	match := m.pattern.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	text := strings.TrimSpace(match[1])
	if text == "" {
		return "", false
	}
	return text, true
}

// IsHeading reports whether line is a heading
func (m *HeadingMatcher) IsHeading(line string) bool {
	_, ok := m.Match(line)
	return ok
}
