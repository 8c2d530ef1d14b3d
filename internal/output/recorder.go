package output

import "strings"

// Segment is one span written to a Recorder.
type Segment struct {
	Style Style
	Text  string
}

// Recorder is an in-memory Writer. Adjacent spans with the same style are merged.
type Recorder struct {
	Segments []Segment
}

// Write implements Writer.
func (r *Recorder) Write(st Style, text string) error {
	if text == "" {
		return nil
	}
	if n := len(r.Segments); n > 0 && r.Segments[n-1].Style == st {
		r.Segments[n-1].Text += text
		return nil
	}
	r.Segments = append(r.Segments, Segment{Style: st, Text: text})
	return nil
}

// WriteLine implements Writer.
func (r *Recorder) WriteLine(text string) error {
	return r.Write(Plain, text+"\n")
}

// String returns everything written, without styles.
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, s := range r.Segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Lines splits String on newlines, dropping the empty tail after a final newline.
func (r *Recorder) Lines() []string {
	s := r.String()
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Annotated returns the output with every styled span wrapped as
// "[style]text[/]", e.g. "[bold+red]error:[/] boom".
func (r *Recorder) Annotated() string {
	var sb strings.Builder
	for _, s := range r.Segments {
		if s.Style == Plain {
			sb.WriteString(s.Text)
			continue
		}
		sb.WriteString("[")
		sb.WriteString(s.Style.String())
		sb.WriteString("]")
		sb.WriteString(s.Text)
		sb.WriteString("[/]")
	}
	return sb.String()
}

// StylesOf returns the styles of every segment whose text contains substr.
func (r *Recorder) StylesOf(substr string) []Style {
	var out []Style
	for _, s := range r.Segments {
		if strings.Contains(s.Text, substr) {
			out = append(out, s.Style)
		}
	}
	return out
}

// Reset discards everything written so far.
func (r *Recorder) Reset() {
	r.Segments = r.Segments[:0]
}
