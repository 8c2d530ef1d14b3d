package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lintrender/internal/trace"
)

// setupTracing builds the tracer described by s and attaches it to the
// command context. The returned cleanup flushes and closes it.
func setupTracing(cmd *cobra.Command, s settings) (func(), error) {
	if s.TraceLevel == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	tracer, err := trace.New(trace.Config{
		Level:      s.TraceLevel,
		OutputPath: s.TraceOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	cleanup := func() {
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}
