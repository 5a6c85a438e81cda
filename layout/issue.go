package layout

import "fmt"

// IssueKind classifies a non-fatal parsing problem
type IssueKind int

const (
	// IssueStructuralGap means an expected section or field was absent
	IssueStructuralGap IssueKind = iota
	// IssueTruncation means input ended in the middle of a section
	IssueTruncation
	// IssueUnclassifiable means a line matched no pattern of the stage reading it
	IssueUnclassifiable
)

// String returns a string representation of the issue kind
func (k IssueKind) String() string {
	switch k {
	case IssueStructuralGap:
		return "structural-gap"
	case IssueTruncation:
		return "truncation"
	case IssueUnclassifiable:
		return "unclassifiable"
	default:
		return "unknown"
	}
}

// Issue describes a problem found while parsing a block.
// Line is the 0-based line index within the block, or -1 when the issue is
// not tied to a line.
type Issue struct {
	Kind    IssueKind
	Line    int
	Message string
}

// NewIssue creates an issue that is not tied to a line
func NewIssue(kind IssueKind, message string) Issue {
	return Issue{Kind: kind, Line: -1, Message: message}
}

// NewLineIssue creates an issue for the given block line
func NewLineIssue(kind IssueKind, line int, message string) Issue {
	return Issue{Kind: kind, Line: line, Message: message}
}

// String returns a human readable description
func (i Issue) String() string {
	if i.Line >= 0 {
		return fmt.Sprintf("%s at line %d: %s", i.Kind, i.Line+1, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Kind, i.Message)
}
