package render

import "fmt"

// FileReadError reports a source file that could not be re-read for a
// context window.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// PathResolutionError reports a failure to compute a display path. Path is
// empty when the working directory itself could not be determined.
type PathResolutionError struct {
	Path string
	Err  error
}

func (e *PathResolutionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to determine working directory: %v", e.Err)
	}
	return fmt.Sprintf("failed to resolve display path for %s: %v", e.Path, e.Err)
}

func (e *PathResolutionError) Unwrap() error {
	return e.Err
}
