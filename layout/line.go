package layout

import (
	"strings"
	"unicode/utf8"
)

// LabelValue splits a "Label: value" line at its first colon.
// The label must contain non-space text. Both parts are trimmed.
func LabelValue(line string) (label, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	label = strings.TrimSpace(line[:i])
	if label == "" {
		return "", "", false
	}
	return label, strings.TrimSpace(line[i+1:]), true
}

// Slice returns the characters of line in [start, end). A negative end means
// the end of the line. Offsets past the line are clamped, so short lines give
// short or empty results.
func Slice(line string, start, end int) string {
	if start < 0 {
		start = 0
	}

	if isASCII(line) {
		n := len(line)
		if end < 0 || end > n {
			end = n
		}
		if start >= end {
			return ""
		}
		return line[start:end]
	}

	runes := []rune(line)
	n := len(runes)
	if end < 0 || end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// Column returns the trimmed characters of line in [start, end)
func Column(line string, start, end int) string {
	return strings.TrimSpace(Slice(line, start, end))
}

// Width returns the number of characters in line
func Width(line string) int {
	return utf8.RuneCountInString(line)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
