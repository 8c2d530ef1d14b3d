package window

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedLines(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	return sb.String()
}

func windowNumbers(w Window) []int {
	out := make([]int, 0, len(w.Lines))
	for _, l := range w.Lines {
		out = append(out, l.Number)
	}
	return out
}

func TestExtractAroundMiddleLine(t *testing.T) {
	w, err := Extract(numberedLines(10), 5, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, windowNumbers(w))
	assert.Equal(t, "line 5\n", w.TargetLine().Text)
	assert.Equal(t, 5, w.TargetLine().Number)
}

func TestExtractClampsAtFileEdges(t *testing.T) {
	w, err := Extract(numberedLines(10), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, windowNumbers(w))
	assert.Equal(t, 0, w.Target)

	w, err = Extract(numberedLines(10), 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9, 10}, windowNumbers(w))
	assert.Equal(t, 3, w.Target)
}

func TestExtractLineZeroSaturates(t *testing.T) {
	w, err := Extract(numberedLines(3), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, w.TargetLine().Number)
}

func TestExtractPastEndOfFile(t *testing.T) {
	_, err := Extract(numberedLines(4), 5, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLineMismatch))

	var lm *LineMismatchError
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, 5, lm.Line)
	assert.Equal(t, 4, lm.Lines)

	_, err = Extract("", 1, 3)
	assert.ErrorIs(t, err, ErrLineMismatch)
}

func TestExtractKeepsTerminators(t *testing.T) {
	w, err := Extract("a\r\nb\nc", 3, 3)
	require.NoError(t, err)
	require.Len(t, w.Lines, 3)
	assert.Equal(t, "a\r\n", w.Lines[0].Text)
	assert.True(t, w.Lines[1].HasTerminator())
	assert.Equal(t, "c", w.Lines[2].Text)
	assert.False(t, w.Lines[2].HasTerminator())
}

func TestSplitLinesRoundTrips(t *testing.T) {
	for _, text := range []string{"", "x", "x\n", "a\nb", "a\n\nb\n"} {
		assert.Equal(t, text, strings.Join(SplitLines(text), ""))
	}
	assert.Nil(t, SplitLines(""))
}

func TestLineBody(t *testing.T) {
	assert.Equal(t, "a", Line{Text: "a\r\n"}.Body())
	assert.Equal(t, "b", Line{Text: "b\n"}.Body())
	assert.Equal(t, "c", Line{Text: "c"}.Body())
}
