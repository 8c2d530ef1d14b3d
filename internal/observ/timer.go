// Package observ measures how long the steps of a command take.
package observ

import (
	"fmt"
	"time"

	"lintrender/internal/output"
	"lintrender/internal/textfmt"
)

// Phase is one timed step, e.g. "load" or "render".
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer records phases in the order they begin.
type Timer struct {
	phases []Phase
	now    func() time.Time
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 4), now: time.Now}
}

// Begin starts a phase and returns its index for End.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: t.now()})
	return len(t.phases) - 1
}

// End finishes the phase at idx. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = t.now().Sub(p.Start)
	p.Note = note
}

// Phases returns a copy of the recorded phases.
func (t *Timer) Phases() []Phase {
	return append([]Phase(nil), t.phases...)
}

// Total sums the durations of all phases.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
	}
	return total
}

const nameWidth = 12

// Write prints a dimmed summary, one phase per line plus a total.
func (t *Timer) Write(w output.Writer) error {
	ew := output.NewSticky(w)
	ew.WriteLine("")
	ew.Write(output.Dim, "timings:")
	ew.WriteLine("")
	for _, p := range t.phases {
		line := "  " + textfmt.PadRight(p.Name, nameWidth) + fmt.Sprintf(" %8.2f ms", millis(p.Dur))
		if p.Note != "" {
			line += "  (" + p.Note + ")"
		}
		ew.Write(output.Dim, line)
		ew.WriteLine("")
	}
	ew.Write(output.Dim, "  "+textfmt.PadRight("total", nameWidth)+fmt.Sprintf(" %8.2f ms", millis(t.Total())))
	ew.WriteLine("")
	return ew.Err
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
