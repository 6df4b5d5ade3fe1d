package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightEmitsEscapesAndSingleReset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, highlight(&buf, "x := 1\n", "dracula"))

	out := buf.String()
	assert.Contains(t, out, "\x1b[38;2;")
	assert.Equal(t, 1, strings.Count(out, "\x1b[0m"))
	assert.True(t, strings.HasSuffix(out, "\x1b[0m"), "reset must come last: %q", out)
}

func TestHighlightBackgroundBeforeForeground(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, highlight(&buf, "x := 1\n", "dracula"))

	out := buf.String()
	bg := strings.Index(out, "\x1b[48;2;")
	fg := strings.Index(out, "\x1b[38;2;")
	require.GreaterOrEqual(t, bg, 0)
	require.GreaterOrEqual(t, fg, 0)
	assert.Less(t, bg, fg)
}

func TestHighlightPreservesText(t *testing.T) {
	code := "func main() {\n\tprintln(\"hi\")\n}\n"
	var buf bytes.Buffer
	require.NoError(t, highlight(&buf, code, "dracula"))
	assert.Equal(t, code, stripAnsi(buf.String()))
}

func TestHighlightEmptyCode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, highlight(&buf, "", "dracula"))
	assert.Equal(t, ansiReset, buf.String())
}

func TestHighlightUnknownThemeFallsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, highlight(&buf, "x := 1\n", "definitely-not-a-style"))
	assert.Equal(t, "x := 1\n", stripAnsi(buf.String()))
}

func TestSplitAfterLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "a", want: []string{"a"}},
		{in: "a\n", want: []string{"a\n"}},
		{in: "a\nb", want: []string{"a\n", "b"}},
		{in: "a\nb\n", want: []string{"a\n", "b\n"}},
		{in: "\n", want: []string{"\n"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitAfterLines(tt.in), "input %q", tt.in)
	}
}
