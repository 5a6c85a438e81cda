package layout

import "strings"

// Sentinel reports whether a line marks the start or end of a recipe
type Sentinel func(line string) bool

// PrefixSentinel matches lines that begin with any of the prefixes.
// Matching is case sensitive and leading white space is significant.
func PrefixSentinel(prefixes ...string) Sentinel {
	return func(line string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(line, p) {
				return true
			}
		}
		return false
	}
}

// ExactSentinel matches lines equal to any of the values
func ExactSentinel(values ...string) Sentinel {
	return func(line string) bool {
		for _, v := range values {
			if line == v {
				return true
			}
		}
		return false
	}
}

// FramedSentinel matches lines that, once trimmed, are wrapped in the frame
// character and whose trimmed inner text starts with phrase, e.g.
// "*  Exported from  MasterCook II  *". The phrase is case sensitive.
func FramedSentinel(frame rune, phrase string) Sentinel {
	f := string(frame)
	return func(line string) bool {
		line = strings.TrimSpace(line)
		if len(line) <= 2*len(f) || !strings.HasPrefix(line, f) || !strings.HasSuffix(line, f) {
			return false
		}
		inner := strings.TrimSpace(line[len(f) : len(line)-len(f)])
		return strings.HasPrefix(inner, phrase)
	}
}

// SpacedRunSentinel matches lines that, once trimmed, start with at least min
// copies of ch separated by single spaces, e.g. "- - - - - -".
func SpacedRunSentinel(ch rune, min int) Sentinel {
	if min < 1 {
		min = 1
	}
	run := strings.TrimSuffix(strings.Repeat(string(ch)+" ", min), " ")
	return func(line string) bool {
		return strings.HasPrefix(strings.TrimSpace(line), run)
	}
}

// AnySentinel matches when any of the sentinels match
func AnySentinel(sentinels ...Sentinel) Sentinel {
	return func(line string) bool {
		for _, s := range sentinels {
			if s != nil && s(line) {
				return true
			}
		}
		return false
	}
}
