package render

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"lintrender/internal/diffview"
	"lintrender/internal/lint"
	"lintrender/internal/output"
	"lintrender/internal/textfmt"
	"lintrender/internal/window"
)

const (
	// ContextLines is how many lines are shown on each side of a reported line.
	ContextLines = 3

	wrapWidth  = 78
	wrapIndent = 4
)

func (r *Renderer) renderFinding(w *output.Sticky, m *lint.Message) error {
	w.Write(output.Plain, "  ")
	w.Write(severityStyle(m.Severity), m.Severity.Label())
	w.Write(output.Plain, " ("+m.Code+") ")
	w.Write(output.Underline, m.Name)
	w.WriteLine("")

	if m.Description != nil {
		for _, line := range textfmt.Wrap(*m.Description, wrapWidth, wrapIndent) {
			w.WriteLine(line)
		}
	}

	switch {
	case m.HasFix():
		w.WriteLine("")
		if err := diffview.Format(w, *m.Original, *m.Replacement); err != nil {
			return err
		}
		w.WriteLine("")
	case m.Line != nil:
		w.WriteLine("")
		if err := r.writeContext(w, m.Path, *m.Line); err != nil {
			return err
		}
		w.WriteLine("")
	}
	return w.Err
}

func (r *Renderer) writeContext(w output.Writer, path string, line uint32) error {
	n, err := safecast.Conv[int](line)
	if err != nil {
		return fmt.Errorf("line %d of %s: %w", line, path, err)
	}
	content, err := r.opts.ReadFile(path)
	if err != nil {
		return &FileReadError{Path: path, Err: err}
	}
	win, err := window.Extract(string(content), n, ContextLines)
	if err != nil {
		return fmt.Errorf("context for %s: %w", path, err)
	}
	return renderWindow(w, win)
}

// renderWindow writes the window lines with a gutter of line numbers; the
// target line is marked and highlighted.
func renderWindow(w output.Writer, win window.Window) error {
	ew := output.NewSticky(w)
	numWidth := 0
	if n := len(win.Lines); n > 0 {
		numWidth = textfmt.Width(strconv.Itoa(win.Lines[n-1].Number))
	}

	for i, l := range win.Lines {
		num := textfmt.PadLeft(strconv.Itoa(l.Number), numWidth)
		body := l.Body()
		if i == win.Target {
			ew.Write(output.Plain, "    >>> ")
			ew.Write(output.Dim, num)
			ew.Write(output.Plain, "  |")
			ew.Write(output.Yellow, body)
		} else {
			ew.Write(output.Plain, textfmt.Spaces(8))
			ew.Write(output.Dim, num)
			ew.Write(output.Plain, "  |")
			ew.Write(output.Plain, body)
		}
		// Write the original terminator so CRLF files round-trip.
		ew.Write(output.Plain, l.Text[len(body):])
		if !l.HasTerminator() {
			ew.WriteLine("")
		}
	}
	return ew.Err
}
