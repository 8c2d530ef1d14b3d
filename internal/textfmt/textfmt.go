// Package textfmt holds the small text-shaping helpers the renderers share:
// fixed runs of spaces, word wrapping with an indent, hanging indents and
// column padding.
package textfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Spaces returns a string of n spaces; n <= 0 yields "".
func Spaces(n int) string {
	return Repeat(' ', n)
}

// Repeat returns r repeated n times; n <= 0 yields "".
func Repeat(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}

// Wrap word-wraps text so every returned line, indent included, fits in
// width columns. Existing newlines are kept; a word longer than the
// available room is broken across lines.
func Wrap(text string, width, indentBy int) []string {
	room := width - indentBy
	if room < 1 {
		room = 1
	}
	lines := strings.Split(wordwrap.String(text, room), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	lines = strings.Split(wrap.String(strings.Join(lines, "\n"), room), "\n")

	prefix := Spaces(indentBy)
	for i, l := range lines {
		lines[i] = prefix + strings.TrimRight(l, " ")
	}
	return lines
}

// Hanging keeps the first line of text as is and indents every following
// line by n spaces, so continuation lines line up under a label of width n.
func Hanging(text string, n int) string {
	first, rest, ok := strings.Cut(text, "\n")
	if !ok {
		return text
	}
	if n < 0 {
		n = 0
	}
	return first + "\n" + indent.String(rest, uint(n))
}

// PadRight left-aligns s in a field of width display columns.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s in a field of width display columns.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// Width returns the display width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
