// Package trace provides the tracing subsystem of lintrender.
//
// lintrender has no log output of its own: what the tool did while loading
// and rendering findings is recorded as trace events, written to stderr or a
// file only when requested.
//
// # Usage
//
//	lintrender render --trace=- --trace-level=file findings.json
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelCommand: Command and report boundaries
//   - LevelFile: Per input file and per rendered file
//   - LevelDebug: Everything including individual findings
//
// # Scopes
//
//   - ScopeCommand: Top-level CLI operations
//   - ScopeReport: One render pass over all findings
//   - ScopeFile: One input file being decoded, or one file section being rendered
//   - ScopeFinding: One finding
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeReport, "render", 0)
//	defer span.End("")
package trace
