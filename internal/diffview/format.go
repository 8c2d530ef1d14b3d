package diffview

import (
	"strconv"

	"lintrender/internal/output"
	"lintrender/internal/textfmt"
)

const (
	gutterWidth = 4
	ruleWidth   = 80
)

// Format writes the hunks between original and replacement to w.
//
// Each line reads "    <old><new> |<sign><text>", line numbers 1-based and
// left-aligned in four columns, blank on the side the line is missing from.
func Format(w output.Writer, original, replacement string) error {
	ew := output.NewSticky(w)
	for i, h := range Compute(original, replacement, ContextLines) {
		if i > 0 {
			ew.WriteLine(textfmt.Repeat('-', ruleWidth))
		}
		for _, c := range h.Changes {
			writeChange(ew, c)
		}
	}
	return ew.Err
}

// Text renders the diff without styling.
func Text(original, replacement string) string {
	var r output.Recorder
	// Recorder never fails
	_ = Format(&r, original, replacement)
	return r.String()
}

func writeChange(w output.Writer, c Change) {
	base := tagStyle(c.Tag)

	w.Write(output.Plain, "    ")
	w.Write(output.Dim, gutter(c.OldIndex))
	w.Write(output.Dim, gutter(c.NewIndex))
	w.Write(output.Plain, " |")
	w.Write(base.With(output.Bold), c.Tag.Sign())
	for _, s := range c.Segments {
		st := base
		if s.Emphasized {
			st = st.With(output.Underline).With(output.OnBlack)
		}
		w.Write(st, s.Text)
	}
	if c.MissingNewline {
		w.WriteLine("")
	}
}

func tagStyle(t Tag) output.Style {
	switch t {
	case TagDelete:
		return output.Red
	case TagInsert:
		return output.Green
	default:
		return output.Dim
	}
}

func gutter(idx *int) string {
	if idx == nil {
		return textfmt.Spaces(gutterWidth)
	}
	return textfmt.PadRight(strconv.Itoa(*idx+1), gutterWidth)
}
