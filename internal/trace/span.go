package trace

import (
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq returns the next global event sequence number.
func NextSeq() uint64 { return seqCounter.Add(1) }

// Span is an open Begin/End pair. A Span from a disabled or filtered
// tracer is inert: every method is a no-op and ID returns 0.
type Span struct {
	t       Tracer
	ev      Event // Begin event, reused as the template for End
	attrs   map[string]string
	started time.Time
	done    bool
}

// Begin opens a span under parent (0 for a root span) and emits its
// begin event.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !emits(t, scope) {
		return &Span{}
	}
	s := &Span{
		t:       t,
		started: time.Now(),
		ev: Event{
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   spanCounter.Add(1),
			ParentID: parent,
			Name:     name,
		},
	}
	begin := s.ev
	begin.Time = s.started
	t.Emit(&begin)
	return s
}

// Set attaches an attribute reported on the end event.
func (s *Span) Set(key, value string) *Span {
	if s == nil || s.t == nil {
		return s
	}
	if s.attrs == nil {
		s.attrs = make(map[string]string, 2)
	}
	s.attrs[key] = value
	return s
}

// End closes the span with an optional detail and returns its duration.
// Only the first End or Fail emits.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.t == nil || s.done {
		return 0
	}
	s.done = true
	end := s.ev
	end.Kind = KindSpanEnd
	end.Time = time.Now()
	end.Detail = detail
	end.Extra = s.attrs
	s.t.Emit(&end)
	return end.Time.Sub(s.started)
}

// Fail closes the span with err as detail and marks it failed.
func (s *Span) Fail(err error) time.Duration {
	if err == nil {
		return s.End("")
	}
	return s.Set("status", "error").End(err.Error())
}

// ID returns the span ID, or 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ev.SpanID
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !emits(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}

func emits(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}
