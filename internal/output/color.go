package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ColorMode is the user's colour preference.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// ParseColorMode validates a --color value.
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// ShouldColor decides whether output to f gets ANSI styling.
// In auto mode this requires a terminal, an unset NO_COLOR and TERM != dumb.
func ShouldColor(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())
}
