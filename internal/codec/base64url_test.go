package codec

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64URL_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: []byte{}},
		{name: "one byte", input: []byte{0xFF}},
		{name: "two bytes", input: []byte{0xFB, 0xFF}},
		{name: "chars that map to + and /", input: []byte{0xFB, 0xEF, 0xBE, 0xFF}},
		{name: "text", input: []byte("hello, world")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := BytesToBase64URL(tt.input)
			assert.NotContains(t, enc, "+")
			assert.NotContains(t, enc, "/")
			assert.NotContains(t, enc, "=")

			dec, err := Base64URLToBytes(enc)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.input, dec))
		})
	}
}

func TestBase64URL_RandomBytes(t *testing.T) {
	for n := 0; n < 64; n++ {
		b := make([]byte, n)
		_, err := rand.Read(b)
		require.NoError(t, err)

		enc := BytesToBase64URL(b)
		require.False(t, strings.ContainsAny(enc, "+/="), "encoded %q", enc)

		dec, err := Base64URLToBytes(enc)
		require.NoError(t, err)
		require.True(t, bytes.Equal(b, dec), "length %d", n)
	}
}

func TestBase64URLToBytes_ToleratesPadding(t *testing.T) {
	dec, err := Base64URLToBytes("aGk=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), dec)
}

func TestBase64URLToBytes_RejectsStandardAlphabet(t *testing.T) {
	_, err := Base64URLToBytes("+/+/")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBase64)
}

func TestBytesToString_RejectsInvalidUTF8(t *testing.T) {
	_, err := BytesToString([]byte{0xFF, 0xFE})
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	s, err := BytesToString(StringToBytes("héllo 🌍"))
	require.NoError(t, err)
	assert.Equal(t, "héllo 🌍", s)
}
