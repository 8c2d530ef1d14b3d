package render

import (
	"lintrender/internal/lint"
	"lintrender/internal/output"
)

// severityStyle picks the label style: errors stand out on red, everything
// else shares the yellow warning look.
func severityStyle(sev lint.Severity) output.Style {
	if sev == lint.SevError {
		return output.OnRed.With(output.Bold)
	}
	return output.OnYellow.With(output.Bold)
}
