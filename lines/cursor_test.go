package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Walk(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c"})

	require.True(t, c.HasMore())
	assert.Equal(t, "a", c.Current())

	next, ok := c.Peek()
	assert.True(t, ok)
	assert.Equal(t, "b", next)

	assert.True(t, c.Advance())
	assert.Equal(t, "b", c.Current())
	assert.Equal(t, 1, c.Pos())

	assert.True(t, c.Advance())
	_, ok = c.Peek()
	assert.False(t, ok)

	assert.False(t, c.Advance())
	assert.False(t, c.HasMore())
	assert.Equal(t, "", c.Current())
	assert.Equal(t, 3, c.Pos())
}

func TestCursor_AdvanceWhenExhausted(t *testing.T) {
	c := NewCursor(nil)
	assert.False(t, c.HasMore())
	assert.False(t, c.Advance())
	assert.False(t, c.Advance())
	assert.Equal(t, 0, c.Pos())
	assert.Nil(t, c.Rest())
}

func TestCursor_SkipBlank(t *testing.T) {
	c := NewCursor([]string{"", "   ", "\t", "text", ""})
	require.True(t, c.SkipBlank())
	assert.Equal(t, "text", c.Current())
	assert.Equal(t, []string{"text", ""}, c.Rest())

	c.Advance()
	assert.False(t, c.SkipBlank())
	assert.False(t, c.HasMore())
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t "))
	assert.False(t, IsBlank("  x "))
	assert.False(t, IsBlank("\x14"))
}

func TestTrimRight(t *testing.T) {
	assert.Equal(t, "  text", TrimRight("  text  \r\n"))
	assert.Equal(t, "text\x14", TrimRight("text\x14 "))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "one", []string{"one"}},
		{"trailing newline", "one\ntwo\n", []string{"one", "two"}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"blank lines kept", "one\n\ntwo", []string{"one", "", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.in))
		})
	}
}
