package lint

// Message is one reported lint issue.
type Message struct {
	Path        string   `json:"path,omitempty" msgpack:"path,omitempty"`
	Line        *uint32  `json:"line,omitempty" msgpack:"line,omitempty"`
	Char        *uint32  `json:"char,omitempty" msgpack:"char,omitempty"`
	Code        string   `json:"code" msgpack:"code"`
	Severity    Severity `json:"severity" msgpack:"severity"`
	Name        string   `json:"name" msgpack:"name"`
	Description *string  `json:"description,omitempty" msgpack:"description,omitempty"`
	Original    *string  `json:"original,omitempty" msgpack:"original,omitempty"`
	Replacement *string  `json:"replacement,omitempty" msgpack:"replacement,omitempty"`
}

// HasFix reports whether the message carries both sides of a replacement.
func (m *Message) HasFix() bool {
	return m.Original != nil && m.Replacement != nil
}

// ByPath maps an absolute file path to its messages in emission order.
type ByPath map[string][]Message

// Add appends msg under path.
func (b ByPath) Add(path string, msg Message) {
	b[path] = append(b[path], msg)
}

// Len returns the total number of messages across all paths.
func (b ByPath) Len() int {
	n := 0
	for _, msgs := range b {
		n += len(msgs)
	}
	return n
}

// HasErrors returns true if at least one message has SevError.
func (b ByPath) HasErrors() bool {
	for _, msgs := range b {
		for i := range msgs {
			if msgs[i].Severity == SevError {
				return true
			}
		}
	}
	return false
}

// Count returns the number of messages with the given severity.
func (b ByPath) Count(sev Severity) int {
	n := 0
	for _, msgs := range b {
		for i := range msgs {
			if msgs[i].Severity == sev {
				n++
			}
		}
	}
	return n
}
