package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff     Level = iota // no tracing
	LevelCommand              // command + report boundaries
	LevelFile                 // per-file events
	LevelDebug                // everything including findings
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelCommand:
		return "command"
	case LevelFile:
		return "file"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off":
		return LevelOff, nil
	case "command":
		return LevelCommand, nil
	case "file":
		return LevelFile, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|command|file|debug)", s)
	}
}

// ShouldEmit returns true if the given scope should emit at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelOff:
		return false
	case LevelCommand:
		return scope <= ScopeReport
	case LevelFile:
		return scope <= ScopeFile
	case LevelDebug:
		return true
	}
	return false
}
