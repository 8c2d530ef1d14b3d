package output

import (
	"io"

	"github.com/fatih/color"
)

// Terminal writes to an io.Writer, translating styles to ANSI sequences
// when colour is enabled.
type Terminal struct {
	w      io.Writer
	color  bool
	colors map[Style]*color.Color
}

// NewTerminal wraps w. With enableColor false every style degrades to plain text.
func NewTerminal(w io.Writer, enableColor bool) *Terminal {
	return &Terminal{
		w:      w,
		color:  enableColor,
		colors: make(map[Style]*color.Color),
	}
}

// ColorEnabled reports whether styles are rendered.
func (t *Terminal) ColorEnabled() bool {
	return t.color
}

// Write implements Writer.
func (t *Terminal) Write(st Style, text string) error {
	if text == "" {
		return nil
	}
	if t.color && st != Plain {
		text = t.colorFor(st).Sprint(text)
	}
	if _, err := io.WriteString(t.w, text); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// WriteLine implements Writer.
func (t *Terminal) WriteLine(text string) error {
	if _, err := io.WriteString(t.w, text+"\n"); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

func (t *Terminal) colorFor(st Style) *color.Color {
	if c, ok := t.colors[st]; ok {
		return c
	}
	c := color.New(st.attributes()...)
	// the per-writer decision wins over fatih/color's global stdout detection
	c.EnableColor()
	t.colors[st] = c
	return c
}
