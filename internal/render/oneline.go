package render

import (
	"strconv"
	"strings"

	"lintrender/internal/lint"
	"lintrender/internal/output"
)

// renderOneline prints "<path>:<line>:<char> <Severity> [<code>/<name>] <description>"
// per finding, in the same order as the grouped report.
func (r *Renderer) renderOneline(msgs lint.ByPath) (Outcome, error) {
	w := output.NewSticky(r.out)
	if len(msgs) == 0 {
		writeNoIssues(w)
		return OutcomeEmpty, w.Err
	}
	wd, err := r.opts.Getwd()
	if err != nil {
		return OutcomeEmpty, &PathResolutionError{Err: err}
	}

	for _, path := range sortedPaths(msgs) {
		rel, err := relativePath(path, wd)
		if err != nil {
			return OutcomePrinted, err
		}
		for i := range msgs[path] {
			writeOneline(w, rel, &msgs[path][i])
		}
		if w.Err != nil {
			return OutcomePrinted, w.Err
		}
	}
	return OutcomePrinted, nil
}

func writeOneline(w output.Writer, rel string, m *lint.Message) {
	loc := rel
	if m.Line != nil {
		loc += ":" + strconv.FormatUint(uint64(*m.Line), 10)
		if m.Char != nil {
			loc += ":" + strconv.FormatUint(uint64(*m.Char), 10)
		}
	}
	w.Write(output.Bold, loc)
	w.Write(output.Plain, " ")
	w.Write(severityStyle(m.Severity), m.Severity.Label())
	w.Write(output.Plain, " ["+m.Code+"/"+m.Name+"]")
	if m.Description != nil {
		first, _, _ := strings.Cut(*m.Description, "\n")
		if first = strings.TrimSpace(first); first != "" {
			w.Write(output.Plain, " "+first)
		}
	}
	w.WriteLine("")
}
