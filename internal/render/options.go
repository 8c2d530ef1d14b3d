package render

import (
	"fmt"
	"os"
	"strings"
)

// Format selects how a report is laid out.
type Format uint8

const (
	// FormatDefault is the grouped, human-oriented report.
	FormatDefault Format = iota
	// FormatOneline prints one line per finding.
	FormatOneline
	// FormatJSON re-emits findings as NDJSON sorted by path.
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatDefault:
		return "default"
	case FormatOneline:
		return "oneline"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat accepts default|oneline|json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "pretty":
		return FormatDefault, nil
	case "oneline":
		return FormatOneline, nil
	case "json", "ndjson":
		return FormatJSON, nil
	default:
		return FormatDefault, fmt.Errorf("invalid output format: %q (expected: default|oneline|json)", s)
	}
}

// Options configures a Renderer. Zero values select the defaults.
type Options struct {
	Format Format
	// Getwd resolves the directory display paths are relative to.
	Getwd func() (string, error)
	// ReadFile loads a source file for context windows.
	ReadFile func(path string) ([]byte, error)
}

func (o Options) withDefaults() Options {
	if o.Getwd == nil {
		o.Getwd = os.Getwd
	}
	if o.ReadFile == nil {
		o.ReadFile = os.ReadFile
	}
	return o
}
