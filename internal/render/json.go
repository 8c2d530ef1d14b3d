package render

import (
	"bytes"

	"lintrender/internal/lint"
	"lintrender/internal/output"
)

// renderJSON re-emits findings as NDJSON, paths sorted, so the output can
// be fed back into the decoder. No findings means no output.
func (r *Renderer) renderJSON(msgs lint.ByPath) (Outcome, error) {
	if len(msgs) == 0 {
		return OutcomeEmpty, nil
	}
	var buf bytes.Buffer
	for _, path := range sortedPaths(msgs) {
		if err := lint.Encode(&buf, msgs[path], lint.FormatJSON); err != nil {
			return OutcomeEmpty, err
		}
	}
	if err := output.Text(r.out, buf.String()); err != nil {
		return OutcomeEmpty, err
	}
	return OutcomePrinted, nil
}
