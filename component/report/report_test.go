package report

import (
	"bytes"
	"testing"

	C "github.com/Cmiroslaf/BEFA-Library/constant"
	"github.com/Cmiroslaf/BEFA-Library/component/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Report {
	r := New("(stri*ng)")
	r.Scanned = 3
	r.Matches = []Match{{Index: 0, Value: "string"}, {Index: 2, Value: "striiing"}}
	r.Counts = []stats.Entry[string]{{Key: "string", Count: 1}, {Key: "striiing", Count: 1}}
	return r
}

func TestNew(t *testing.T) {
	a, b := New(""), New("")
	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotNil(t, a.Matches)
}

func TestEncodeDecode(t *testing.T) {
	for _, format := range []C.OutputFormat{C.JSON, C.YAML, C.MSGPACK} {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, Encode(buf, format, sample()))

			decoded, err := Decode(buf, format)
			require.NoError(t, err)
			want := sample()
			want.ID = decoded.ID
			assert.Equal(t, want, decoded)
		})
	}
}

func TestEncodeText(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(buf, C.TEXT, sample()))

	out := buf.String()
	assert.Contains(t, out, "pattern  (stri*ng)")
	assert.Contains(t, out, "matched  2")
	assert.Contains(t, out, "2      striiing")

	_, err := Decode(buf, C.TEXT)
	assert.ErrorIs(t, err, C.ErrInvalidFormat)
}

func TestEncodeUnknown(t *testing.T) {
	err := Encode(&bytes.Buffer{}, C.OutputFormat(9), sample())
	assert.ErrorIs(t, err, C.ErrInvalidFormat)
}
