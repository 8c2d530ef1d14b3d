package observ

import (
	"testing"
	"time"

	"lintrender/internal/output"
)

func fakeClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	load := tm.Begin("load")
	tm.End(load, "3 files")
	render := tm.Begin("render")
	tm.End(render, "")
	tm.End(99, "ignored")

	phases := tm.Phases()
	if len(phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(phases))
	}
	if phases[0].Dur != 2*time.Millisecond || phases[0].Note != "3 files" {
		t.Fatalf("unexpected load phase: %+v", phases[0])
	}
	if got := tm.Total(); got != 4*time.Millisecond {
		t.Fatalf("Total() = %v, want 4ms", got)
	}
}

func TestTimerWrite(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)
	tm.End(tm.Begin("load"), "2 files")

	var rec output.Recorder
	if err := tm.Write(&rec); err != nil {
		t.Fatal(err)
	}
	want := "\ntimings:\n" +
		"  load             1.00 ms  (2 files)\n" +
		"  total            1.00 ms\n"
	if got := rec.String(); got != want {
		t.Fatalf("Write() = %q, want %q", got, want)
	}
	for _, st := range rec.StylesOf("ms") {
		if st != output.Dim {
			t.Fatalf("timing line style = %v, want dim", st)
		}
	}
}
