package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssue_String(t *testing.T) {
	assert.Equal(t, "truncation: footer missing", NewIssue(IssueTruncation, "footer missing").String())
	assert.Equal(t, "unclassifiable at line 3: odd line", NewLineIssue(IssueUnclassifiable, 2, "odd line").String())
	assert.Equal(t, "structural-gap", IssueStructuralGap.String())
	assert.Equal(t, "unknown", IssueKind(99).String())
}
