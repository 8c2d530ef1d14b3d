package lint

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the wire encoding of a findings stream.
type Format uint8

const (
	// FormatAuto picks the format from the file extension, falling back to JSON.
	FormatAuto Format = iota
	// FormatJSON accepts either a JSON array or a stream of JSON objects (NDJSON).
	FormatJSON
	FormatMsgpack
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json", "ndjson", "jsonl":
		return FormatJSON, nil
	case "msgpack", "mpk":
		return FormatMsgpack, nil
	default:
		return FormatAuto, fmt.Errorf("invalid input format %q (expected auto|json|msgpack)", s)
	}
}

// FormatForPath resolves FormatAuto using the extension of path.
func FormatForPath(path string, f Format) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk", ".mp":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// Decode reads every message from r. FormatAuto is treated as JSON.
func Decode(r io.Reader, format Format) ([]Message, error) {
	var (
		msgs []Message
		err  error
	)
	switch format {
	case FormatMsgpack:
		msgs, err = decodeMsgpack(r)
	case FormatAuto, FormatJSON:
		msgs, err = decodeJSON(r)
	default:
		return nil, fmt.Errorf("unknown input format: %v", format)
	}
	if err != nil {
		return nil, err
	}
	for i := range msgs {
		if err := validate(&msgs[i]); err != nil {
			return nil, fmt.Errorf("message %d: %w", i+1, err)
		}
	}
	return msgs, nil
}

func decodeJSON(r io.Reader) ([]Message, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var msgs []Message
		if err := dec.Decode(&msgs); err != nil {
			return nil, fmt.Errorf("failed to decode JSON array: %w", err)
		}
		return msgs, nil
	}

	// NDJSON: one object per line, blank lines are skipped by the decoder
	msgs := make([]Message, 0, 16)
	for {
		var m Message
		err := dec.Decode(&m)
		if errors.Is(err, io.EOF) {
			return msgs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode JSON message %d: %w", len(msgs)+1, err)
		}
		msgs = append(msgs, m)
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if strings.IndexByte(" \t\r\n", b) < 0 {
			return b, br.UnreadByte()
		}
	}
}

func decodeMsgpack(r io.Reader) ([]Message, error) {
	dec := msgpack.NewDecoder(r)
	msgs := make([]Message, 0, 16)
	for {
		var m Message
		err := dec.Decode(&m)
		if errors.Is(err, io.EOF) {
			return msgs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode msgpack message %d: %w", len(msgs)+1, err)
		}
		msgs = append(msgs, m)
	}
}

func validate(m *Message) error {
	if strings.TrimSpace(m.Path) == "" {
		return errors.New("missing path")
	}
	if m.Severity == SevUnset {
		return fmt.Errorf("%s: missing severity", m.Path)
	}
	if strings.TrimSpace(m.Code) == "" {
		return fmt.Errorf("%s: missing code", m.Path)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%s: missing name", m.Path)
	}
	if (m.Original == nil) != (m.Replacement == nil) {
		return fmt.Errorf("%s: original and replacement must be given together", m.Path)
	}
	if m.Line != nil && *m.Line == 0 {
		return fmt.Errorf("%s: line numbers start at 1", m.Path)
	}
	return nil
}

// Encode writes msgs to w in the given format. JSON output is NDJSON.
func Encode(w io.Writer, msgs []Message, format Format) error {
	switch format {
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		for i := range msgs {
			if err := enc.Encode(&msgs[i]); err != nil {
				return err
			}
		}
		return nil
	case FormatAuto, FormatJSON:
		enc := json.NewEncoder(w)
		for i := range msgs {
			if err := enc.Encode(&msgs[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %v", format)
	}
}
