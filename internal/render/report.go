package render

import (
	"context"
	"maps"
	"path/filepath"
	"slices"
	"strconv"

	"lintrender/internal/lint"
	"lintrender/internal/output"
	"lintrender/internal/trace"
)

// Outcome tells the caller whether anything beyond the empty confirmation
// was printed.
type Outcome uint8

const (
	// OutcomeEmpty means there were no findings.
	OutcomeEmpty Outcome = iota
	// OutcomePrinted means at least one file section was written.
	OutcomePrinted
)

func (o Outcome) String() string {
	if o == OutcomePrinted {
		return "printed"
	}
	return "empty"
}

// Renderer writes lint reports to an output.Writer.
type Renderer struct {
	out  output.Writer
	opts Options
}

// New returns a Renderer writing to out.
func New(out output.Writer, opts Options) *Renderer {
	return &Renderer{out: out, opts: opts.withDefaults()}
}

// Render writes the report for msgs. Paths are visited in ascending order
// and findings of one path keep their order. The Outcome is only meaningful
// when err is nil.
func (r *Renderer) Render(ctx context.Context, msgs lint.ByPath) (Outcome, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeReport, "render", trace.CurrentSpan(ctx))
	span.Set("format", r.opts.Format.String()).
		Set("files", strconv.Itoa(len(msgs)))
	ctx = trace.WithSpan(ctx, span)

	var (
		outcome Outcome
		err     error
	)
	switch r.opts.Format {
	case FormatOneline:
		outcome, err = r.renderOneline(msgs)
	case FormatJSON:
		outcome, err = r.renderJSON(msgs)
	default:
		outcome, err = r.renderReport(ctx, msgs)
	}

	if err != nil {
		span.Fail(err)
	} else {
		span.End(outcome.String())
	}
	return outcome, err
}

func (r *Renderer) renderReport(ctx context.Context, msgs lint.ByPath) (Outcome, error) {
	w := output.NewSticky(r.out)
	if len(msgs) == 0 {
		writeNoIssues(w)
		return OutcomeEmpty, w.Err
	}

	wd, err := r.opts.Getwd()
	if err != nil {
		return OutcomeEmpty, &PathResolutionError{Err: err}
	}

	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)
	for _, path := range sortedPaths(msgs) {
		rel, err := relativePath(path, wd)
		if err != nil {
			return OutcomePrinted, err
		}

		fileSpan := trace.Begin(tracer, trace.ScopeFile, "file:"+rel, parent)
		w.Write(output.Plain, "\n\n")
		w.Write(output.Bold, ">>>")
		w.Write(output.Plain, " Lint for ")
		w.Write(output.Underline, rel)
		w.WriteLine(":")
		w.WriteLine("")

		for i := range msgs[path] {
			m := &msgs[path][i]
			trace.Point(tracer, trace.ScopeFinding, "finding", m.Code+"/"+m.Name, fileSpan.ID())
			if err := r.renderFinding(w, m); err != nil {
				fileSpan.Fail(err)
				return OutcomePrinted, err
			}
		}
		fileSpan.End("")
	}
	return OutcomePrinted, w.Err
}

func writeNoIssues(w output.Writer) {
	w.Write(output.Green, "ok")
	w.WriteLine(" No lint issues.")
}

func sortedPaths(msgs lint.ByPath) []string {
	return slices.Sorted(maps.Keys(msgs))
}

// relativePath makes path relative to wd for display.
func relativePath(path, wd string) (string, error) {
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return "", &PathResolutionError{Path: path, Err: err}
	}
	return rel, nil
}
