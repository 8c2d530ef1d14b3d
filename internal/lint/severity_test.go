package lint

import "testing"

func TestParseSeverityRoundTrip(t *testing.T) {
	for _, sev := range []Severity{SevDisabled, SevAdvice, SevWarning, SevError} {
		got, err := ParseSeverity(sev.String())
		if err != nil {
			t.Fatalf("ParseSeverity(%q) returned error: %v", sev.String(), err)
		}
		if got != sev {
			t.Fatalf("expected %v, got %v", sev, got)
		}
		got, err = ParseSeverity(sev.Label())
		if err != nil || got != sev {
			t.Fatalf("ParseSeverity(%q) = %v, %v", sev.Label(), got, err)
		}
	}
}

func TestParseSeverityRejectsUnknown(t *testing.T) {
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Fatal("expected error for unknown severity")
	}
}

func TestSeverityUnset(t *testing.T) {
	var sev Severity
	if sev != SevUnset {
		t.Fatalf("zero Severity = %v, want SevUnset", sev)
	}
	if got := sev.Label(); got != "Unknown" {
		t.Fatalf("SevUnset.Label() = %q, want Unknown", got)
	}
	if _, err := sev.MarshalText(); err == nil {
		t.Fatal("expected MarshalText to reject an unset severity")
	}
}

func TestByPathCounts(t *testing.T) {
	b := make(ByPath)
	b.Add("/a", Message{Path: "/a", Severity: SevWarning})
	b.Add("/a", Message{Path: "/a", Severity: SevError})
	b.Add("/b", Message{Path: "/b", Severity: SevAdvice})

	if b.Len() != 3 {
		t.Fatalf("expected 3 messages, got %d", b.Len())
	}
	if !b.HasErrors() {
		t.Fatal("expected HasErrors to be true")
	}
	if b.Count(SevWarning) != 1 {
		t.Fatalf("expected 1 warning, got %d", b.Count(SevWarning))
	}

	delete(b, "/a")
	if b.HasErrors() {
		t.Fatal("expected HasErrors to be false without /a")
	}
}
