// Package output is the write side of lintrender.
//
// Renderers never touch a terminal directly. They receive a Writer, a small
// capability with two operations: write a styled span and write a plain
// line. Terminal applies styles with fatih/color (or drops them when colour
// is off); Recorder keeps every span in memory so tests can assert on the
// plain text and on the styles that were requested.
//
// Every Writer error is a *WriteError so callers can tell output failures
// apart from problems with the data being rendered.
package output
