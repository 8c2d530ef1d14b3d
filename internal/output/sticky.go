package output

// Sticky wraps a Writer and keeps the first error it returns. Once an error
// is recorded every later call is skipped and returns that error, so a
// renderer can issue a run of writes and check Err once.
type Sticky struct {
	W   Writer
	Err error
}

// NewSticky wraps w.
func NewSticky(w Writer) *Sticky {
	return &Sticky{W: w}
}

// Write implements Writer.
func (s *Sticky) Write(st Style, text string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Err = s.W.Write(st, text)
	return s.Err
}

// WriteLine implements Writer.
func (s *Sticky) WriteLine(text string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Err = s.W.WriteLine(text)
	return s.Err
}
