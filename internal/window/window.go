package window

import "strings"

// Line is one line of a window.
type Line struct {
	Number int    // 1-based line number in the file
	Text   string // line content including its terminator, if any
}

// HasTerminator reports whether the line ends with a newline.
func (l Line) HasTerminator() bool {
	return strings.HasSuffix(l.Text, "\n")
}

// Body returns the line without its "\n" or "\r\n" terminator.
func (l Line) Body() string {
	return strings.TrimSuffix(strings.TrimSuffix(l.Text, "\n"), "\r")
}

// Window is the bounded run of lines around a target line.
type Window struct {
	Lines  []Line
	Target int // index into Lines of the highlighted line
}

// TargetLine returns the highlighted line.
func (w Window) TargetLine() Line {
	return w.Lines[w.Target]
}

// SplitLines splits text after every '\n', keeping terminators so the
// lines concatenate back to text. "\r\n" stays attached to its line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Extract returns the lines of text within context lines of the 1-based
// line. Line 0 saturates to the first line; a line past the end of text
// fails with a LineMismatchError.
func Extract(text string, line, context int) (Window, error) {
	lines := SplitLines(text)
	target := SatSub(line, 1)

	start, end, err := Bounds(target, len(lines), context)
	if err != nil {
		return Window{}, &LineMismatchError{Line: line, Lines: len(lines)}
	}

	w := Window{
		Lines:  make([]Line, 0, end-start+1),
		Target: target - start,
	}
	for i := start; i <= end; i++ {
		w.Lines = append(w.Lines, Line{Number: i + 1, Text: lines[i]})
	}
	return w, nil
}
