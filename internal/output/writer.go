package output

import "fmt"

// Writer receives rendered output.
type Writer interface {
	// Write emits text with the given style. Plain writes text unchanged.
	Write(st Style, text string) error
	// WriteLine emits text followed by a newline.
	WriteLine(text string) error
}

// WriteError reports that the underlying stream rejected output.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Text writes text without styling.
func Text(w Writer, text string) error {
	return w.Write(Plain, text)
}

// Newline ends the current line.
func Newline(w Writer) error {
	return w.WriteLine("")
}
