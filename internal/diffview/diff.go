package diffview

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"lintrender/internal/window"
)

// ContextLines is the number of unchanged lines kept around a change.
const ContextLines = 3

// inlineMinRatio is the similarity below which a line pair is not
// emphasised character by character.
const inlineMinRatio = 0.5

// Tag classifies one line of a diff.
type Tag uint8

const (
	TagEqual Tag = iota
	TagDelete
	TagInsert
)

// Sign returns the marker printed in the sign column.
func (t Tag) Sign() string {
	switch t {
	case TagDelete:
		return "-"
	case TagInsert:
		return "+"
	default:
		return " "
	}
}

func (t Tag) String() string {
	switch t {
	case TagDelete:
		return "delete"
	case TagInsert:
		return "insert"
	default:
		return "equal"
	}
}

// Segment is a run of characters inside a line.
type Segment struct {
	Text       string
	Emphasized bool
}

// Change is one line of a hunk.
type Change struct {
	Tag      Tag
	OldIndex *int // 0-based line in the original, nil for insertions
	NewIndex *int // 0-based line in the replacement, nil for deletions
	Segments []Segment
	// MissingNewline is set on a final line that has no terminator.
	MissingNewline bool
}

// Text returns the line content, terminator included.
func (c Change) Text() string {
	var sb strings.Builder
	for _, s := range c.Segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Hunk is a contiguous, context-bounded block of changes.
type Hunk struct {
	Changes []Change
}

// Compute diffs original against replacement line by line and groups the
// result into hunks with at most context unchanged lines around each change.
// Identical inputs produce no hunks.
func Compute(original, replacement string, context int) []Hunk {
	a := window.SplitLines(original)
	b := window.SplitLines(replacement)

	m := difflib.NewMatcherWithJunk(a, b, false, nil)
	groups := m.GetGroupedOpCodes(context)

	hunks := make([]Hunk, 0, len(groups))
	for _, group := range groups {
		var h Hunk
		for _, op := range group {
			h.Changes = appendOp(h.Changes, op, a, b)
		}
		hunks = append(hunks, h)
	}
	return hunks
}

func appendOp(out []Change, op difflib.OpCode, a, b []string) []Change {
	switch op.Tag {
	case 'e':
		for k := 0; k < op.I2-op.I1; k++ {
			out = append(out, newChange(TagEqual, intPtr(op.I1+k), intPtr(op.J1+k), plain(a[op.I1+k])))
		}
	case 'd':
		for i := op.I1; i < op.I2; i++ {
			out = append(out, newChange(TagDelete, intPtr(i), nil, plain(a[i])))
		}
	case 'i':
		for j := op.J1; j < op.J2; j++ {
			out = append(out, newChange(TagInsert, nil, intPtr(j), plain(b[j])))
		}
	case 'r':
		out = appendReplace(out, op, a, b)
	}
	return out
}

// appendReplace pairs old and new lines by position. Paired lines get a
// character-level diff; the lines left over on the longer side are
// emphasised whole. Deletions come before insertions.
func appendReplace(out []Change, op difflib.OpCode, a, b []string) []Change {
	nOld, nNew := op.I2-op.I1, op.J2-op.J1
	pairs := min(nOld, nNew)

	inserts := make([]Change, 0, nNew)
	for k := 0; k < pairs; k++ {
		oldSegs, newSegs := inlineDiff(a[op.I1+k], b[op.J1+k])
		out = append(out, newChange(TagDelete, intPtr(op.I1+k), nil, oldSegs))
		inserts = append(inserts, newChange(TagInsert, nil, intPtr(op.J1+k), newSegs))
	}
	for k := pairs; k < nOld; k++ {
		out = append(out, newChange(TagDelete, intPtr(op.I1+k), nil, emphasized(a[op.I1+k])))
	}
	for k := pairs; k < nNew; k++ {
		inserts = append(inserts, newChange(TagInsert, nil, intPtr(op.J1+k), emphasized(b[op.J1+k])))
	}
	return append(out, inserts...)
}

func newChange(tag Tag, oldIdx, newIdx *int, segs []Segment) Change {
	c := Change{Tag: tag, OldIndex: oldIdx, NewIndex: newIdx, Segments: segs}
	c.MissingNewline = !strings.HasSuffix(c.Text(), "\n")
	return c
}

// inlineDiff splits a matched line pair into emphasised and plain runs.
// Terminators are never emphasised.
func inlineDiff(oldLine, newLine string) (oldSegs, newSegs []Segment) {
	oldBody, oldTerm := splitTerminator(oldLine)
	newBody, newTerm := splitTerminator(newLine)

	ra, rb := runeStrings(oldBody), runeStrings(newBody)
	m := difflib.NewMatcherWithJunk(ra, rb, false, nil)
	if m.Ratio() < inlineMinRatio {
		return plain(oldLine), plain(newLine)
	}

	for _, op := range m.GetOpCodes() {
		oldText := strings.Join(ra[op.I1:op.I2], "")
		newText := strings.Join(rb[op.J1:op.J2], "")
		changed := op.Tag != 'e'
		oldSegs = appendSegment(oldSegs, oldText, changed)
		newSegs = appendSegment(newSegs, newText, changed)
	}
	oldSegs = appendSegment(oldSegs, oldTerm, false)
	newSegs = appendSegment(newSegs, newTerm, false)
	return oldSegs, newSegs
}

func appendSegment(segs []Segment, text string, emph bool) []Segment {
	if text == "" {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].Emphasized == emph {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, Segment{Text: text, Emphasized: emph})
}

func splitTerminator(line string) (body, term string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}

func runeStrings(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func plain(line string) []Segment {
	return appendSegment(nil, line, false)
}

func emphasized(line string) []Segment {
	body, term := splitTerminator(line)
	return appendSegment(appendSegment(nil, body, true), term, false)
}

func intPtr(v int) *int {
	return &v
}
