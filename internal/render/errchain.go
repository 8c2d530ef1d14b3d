package render

import (
	"errors"
	"strings"

	"lintrender/internal/output"
	"lintrender/internal/textfmt"
)

const (
	errorLabel = "error:"
	causeLabel = "caused_by:"
)

// Chain returns the messages of err and each error it wraps, outermost
// first. A wrapper's message loses the ": <cause>" suffix that fmt.Errorf
// adds, so every element reads on its own. An error wrapping several
// causes ends the chain.
func Chain(err error) []string {
	var out []string
	for err != nil {
		msg := err.Error()
		if _, multi := err.(interface{ Unwrap() []error }); multi {
			out = append(out, msg)
			break
		}
		next := errors.Unwrap(err)
		if next != nil {
			cause := next.Error()
			if msg == cause {
				// transparent wrapper, e.g. fmt.Errorf("%w", err)
				err = next
				continue
			}
			msg = strings.TrimSuffix(msg, ": "+cause)
		}
		out = append(out, msg)
		err = next
	}
	return out
}

// PrintError writes err as an "error:" line followed by one "caused_by:"
// line per cause. Continuation lines of a multi-line message are indented
// under the text. A nil err writes nothing.
func PrintError(w output.Writer, err error) error {
	chain := Chain(err)
	if len(chain) == 0 {
		return nil
	}
	ew := output.NewSticky(w)
	writeChainEntry(ew, errorLabel, chain[0])
	for _, cause := range chain[1:] {
		writeChainEntry(ew, causeLabel, cause)
	}
	return ew.Err
}

func writeChainEntry(w output.Writer, label, msg string) {
	w.Write(output.Red.With(output.Bold), label)
	w.Write(output.Plain, " ")
	w.WriteLine(textfmt.Hanging(msg, len(label)+1))
}
