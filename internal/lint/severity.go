package lint

import (
	"fmt"
	"strings"
)

// Severity defines the importance of a lint message.
type Severity uint8

const (
	// SevUnset is the zero value; a decoded message without a severity
	// keeps it and is rejected by validation.
	SevUnset Severity = iota
	// SevDisabled is for messages from rules the user switched off.
	SevDisabled
	// SevAdvice is for suggestions that need no action.
	SevAdvice
	SevWarning
	SevError
)

// Label returns the human-facing name printed in lint headers.
func (s Severity) Label() string {
	switch s {
	case SevDisabled:
		return "Disabled"
	case SevAdvice:
		return "Advice"
	case SevWarning:
		return "Warning"
	case SevError:
		return "Error"
	}
	return "Unknown"
}

// String returns the lowercase wire form.
func (s Severity) String() string {
	return strings.ToLower(s.Label())
}

// ParseSeverity converts the wire or label form back to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SevError, nil
	case "warning":
		return SevWarning, nil
	case "advice":
		return SevAdvice, nil
	case "disabled":
		return SevDisabled, nil
	default:
		return SevError, fmt.Errorf("invalid severity %q (expected error|warning|advice|disabled)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if s == SevUnset || s > SevError {
		return nil, fmt.Errorf("cannot encode severity %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}
