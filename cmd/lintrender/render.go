package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"lintrender/internal/lint"
	"lintrender/internal/observ"
	"lintrender/internal/output"
	"lintrender/internal/prof"
	"lintrender/internal/render"
	"lintrender/internal/trace"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [findings...]",
		Short: "Render lint findings grouped by file",
		Long: `Render reads findings from each file argument, or from stdin when no
argument (or "-") is given, and prints them grouped by source file.

Exits with status 1 when any finding has severity error.`,
		Args: cobra.ArbitraryArgs,
		RunE: runRender,
	}
	cmd.Flags().String("format", "default", "output format (default|oneline|json)")
	cmd.Flags().String("input-format", "auto", "input format (auto|json|msgpack)")
	cmd.Flags().Int("jobs", 0, "max parallel input decoders (0=auto)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, s)
	if err != nil {
		return err
	}
	defer cleanup()

	session, err := prof.Start(prof.Options{
		CPUPath: flagString(cmd, "cpuprofile"),
		MemPath: flagString(cmd, "memprofile"),
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	}()

	timer := observ.NewTimer()
	ctx := cmd.Context()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeCommand, "lintrender render", 0)
	ctx = trace.WithSpan(ctx, span)

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{lint.StdinPath}
	}
	phase := timer.Begin("load")
	msgs, err := lint.Load(ctx, inputs, lint.LoadOptions{
		Format: s.InputFormat,
		Stdin:  cmd.InOrStdin(),
		Jobs:   s.Jobs,
	})
	timer.End(phase, fmt.Sprintf("%d inputs", len(inputs)))
	if err != nil {
		span.Fail(err)
		return fmt.Errorf("failed to load findings: %w", err)
	}
	span.Set("findings", strconv.Itoa(msgs.Len()))

	out := newTerminal(cmd.OutOrStdout(), s.Color)
	phase = timer.Begin("render")
	_, err = render.New(out, render.Options{Format: s.Format}).Render(ctx, msgs)
	timer.End(phase, fmt.Sprintf("%d findings", msgs.Len()))
	if err != nil {
		span.Fail(err)
		return fmt.Errorf("failed to render lint report: %w", err)
	}

	if timings, _ := cmd.Flags().GetBool("timings"); timings {
		if err := timer.Write(newTerminal(cmd.ErrOrStderr(), s.Color)); err != nil {
			return err
		}
	}

	if msgs.HasErrors() {
		span.End("error findings")
		return errFindings
	}
	span.End("")
	return nil
}

// newTerminal wraps w for styled output. Colour auto-detection only applies
// to real files; anything else is treated as a pipe.
func newTerminal(w io.Writer, mode output.ColorMode) *output.Terminal {
	f, ok := w.(*os.File)
	if !ok {
		return output.NewTerminal(w, output.ShouldColor(mode, nil))
	}
	return output.NewTerminal(colorable.NewColorable(f), output.ShouldColor(mode, f))
}
