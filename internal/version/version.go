// Package version holds build metadata for the lintrender CLI.
// The variables can be overridden at build time via -ldflags "-X".
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// major, minor, patch
var partAttrs = [][]color.Attribute{
	{color.FgYellow, color.Bold},
	{color.FgGreen, color.Bold},
	{color.FgBlue, color.Bold},
}

// String returns Version, trimmed, or "dev" when it is unset.
func String() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	return v
}

// Colored returns the version with major, minor and patch each in its own
// colour. With enable false it equals String.
func Colored(enable bool) string {
	v := String()
	if !enable {
		return v
	}
	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.SplitN(core, ".", len(partAttrs))
	for i, p := range parts {
		c := color.New(partAttrs[i]...)
		c.EnableColor()
		parts[i] = c.Sprint(p)
	}
	return strings.Join(parts, ".") + suffix
}
