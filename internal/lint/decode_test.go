package lint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDecodeNDJSON(t *testing.T) {
	input := `{"path":"/src/a.py","line":3,"code":"FLAKE8","severity":"warning","name":"E501","description":"line too long"}

{"path":"/src/a.py","code":"BLACK","severity":"error","name":"format","original":"x=1\n","replacement":"x = 1\n"}
`
	msgs, err := Decode(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, SevWarning, msgs[0].Severity)
	require.NotNil(t, msgs[0].Line)
	assert.Equal(t, uint32(3), *msgs[0].Line)
	assert.False(t, msgs[0].HasFix())

	assert.Equal(t, SevError, msgs[1].Severity)
	assert.True(t, msgs[1].HasFix())
	assert.Equal(t, "x = 1\n", *msgs[1].Replacement)
}

func TestDecodeJSONArray(t *testing.T) {
	input := ` [{"path":"/a","code":"C","severity":"advice","name":"n"}]`
	msgs, err := Decode(strings.NewReader(input), FormatAuto)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, SevAdvice, msgs[0].Severity)
}

func TestDecodeEmptyInput(t *testing.T) {
	msgs, err := Decode(strings.NewReader(" \n"), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestDecodeValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "missing path",
			input: `{"code":"C","severity":"error","name":"n"}`,
			want:  "missing path",
		},
		{
			name:  "half a fix",
			input: `{"path":"/a","code":"C","severity":"error","name":"n","original":"x"}`,
			want:  "original and replacement",
		},
		{
			name:  "zero line",
			input: `{"path":"/a","line":0,"code":"C","severity":"error","name":"n"}`,
			want:  "line numbers start at 1",
		},
		{
			name:  "missing severity",
			input: `{"path":"/a","code":"C","name":"n"}`,
			want:  "missing severity",
		},
		{
			name:  "missing code",
			input: `{"path":"/a","severity":"error","name":"n"}`,
			want:  "missing code",
		},
		{
			name:  "missing name",
			input: `{"path":"/a","code":"C","severity":"advice"}`,
			want:  "missing name",
		},
		{
			name:  "bad severity",
			input: `{"path":"/a","code":"C","severity":"fatal","name":"n"}`,
			want:  "invalid severity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), FormatJSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEncodeDecodeMsgpack(t *testing.T) {
	want := []Message{
		{Path: "/a", Line: ptr(uint32(7)), Code: "C", Severity: SevWarning, Name: "w"},
		{Path: "/b", Code: "D", Severity: SevError, Name: "e", Original: ptr("a\n"), Replacement: ptr("b\n")},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want, FormatMsgpack))

	got, err := Decode(&buf, FormatMsgpack)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatMsgpack, FormatForPath("out.msgpack", FormatAuto))
	assert.Equal(t, FormatJSON, FormatForPath("out.json", FormatAuto))
	assert.Equal(t, FormatJSON, FormatForPath("-", FormatAuto))
	assert.Equal(t, FormatMsgpack, FormatForPath("out.json", FormatMsgpack))
}
