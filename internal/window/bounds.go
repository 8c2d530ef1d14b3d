// Package window computes the slice of a file shown around a reported line.
//
// All index arithmetic lives in this file: Bounds clamps at both file ends
// with saturating subtraction and never produces a negative start or an end
// past the last line.
package window

import (
	"errors"
	"fmt"
)

// ErrLineMismatch marks a target line that does not exist in the file.
var ErrLineMismatch = errors.New("line mismatch")

// LineMismatchError reports a 1-based line beyond the end of a file.
type LineMismatchError struct {
	Line  int // requested 1-based line
	Lines int // lines actually present
}

func (e *LineMismatchError) Error() string {
	return fmt.Sprintf("line %d does not exist, file has %d lines", e.Line, e.Lines)
}

// Is makes errors.Is(err, ErrLineMismatch) hold.
func (e *LineMismatchError) Is(target error) bool {
	return target == ErrLineMismatch
}

// SatSub returns a-b, or 0 when b > a.
func SatSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// Bounds returns the inclusive index range [start, end] of a window of
// context lines on each side of the 0-based target, in a file of length
// lines. target outside [0, length) is a LineMismatchError.
func Bounds(target, length, context int) (start, end int, err error) {
	if target < 0 || target >= length {
		return 0, 0, &LineMismatchError{Line: target + 1, Lines: length}
	}
	context = max(context, 0)
	start = SatSub(target, context)
	end = min(SatSub(length, 1), target+context)
	return start, end, nil
}
