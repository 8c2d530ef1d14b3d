// Package render turns grouped lint findings into terminal output.
//
// A Renderer walks a lint.ByPath in sorted path order and writes, per file, a
// header followed by every finding: a severity label, code and name, the
// wrapped description and then either a line diff of the suggested fix or a
// few lines of the file around the reported line. PrintError renders a fatal
// error and its chain of causes.
//
// All output goes through an output.Writer; nothing here touches the terminal
// directly.
package render
