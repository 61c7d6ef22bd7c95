package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roundTripInputs = []string{
	"",
	"a",
	"plain ascii text",
	"emoji 🎉🚀 and flags 🇩🇪",
	"Кириллица, 日本語のタイトル, العربية",
	`{"id":"1","name":"Research","tabs":[{"t":"A","u":"https://a.com","f":""}]}`,
	strings.Repeat("https://example.com/some/long/path?q=1 ", 200),
}

func TestCompressors_RoundTrip(t *testing.T) {
	for _, name := range []string{CompressionXZ, CompressionNone} {
		c, err := NewCompressor(name)
		require.NoError(t, err)

		for _, in := range roundTripInputs {
			compressed, err := c.Compress(in)
			require.NoError(t, err, "%s: compress", name)
			assert.False(t, strings.ContainsAny(compressed, "+/="), "%s: not url safe", name)

			out, err := c.Decompress(compressed)
			require.NoError(t, err, "%s: decompress", name)
			assert.Equal(t, in, out, "%s", name)
		}
	}
}

func TestCompressors_CrossDecompress(t *testing.T) {
	xzc, err := NewCompressor(CompressionXZ)
	require.NoError(t, err)
	plain, err := NewCompressor(CompressionNone)
	require.NoError(t, err)

	in := "saved from a degraded build 🙂"

	fromPlain, err := plain.Compress(in)
	require.NoError(t, err)
	out, err := xzc.Decompress(fromPlain)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	fromXZ, err := xzc.Compress(in)
	require.NoError(t, err)
	out, err = plain.Decompress(fromXZ)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestXZCompressor_ShrinksRepetitiveText(t *testing.T) {
	c, err := NewCompressor(CompressionXZ)
	require.NoError(t, err)

	in := strings.Repeat("https://example.com/a/b/c ", 500)
	compressed, err := c.Compress(in)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(in)/4)
}

func TestDecompress_CorruptedStream(t *testing.T) {
	c, err := NewCompressor(CompressionXZ)
	require.NoError(t, err)

	compressed, err := c.Compress(strings.Repeat("payload ", 100))
	require.NoError(t, err)

	raw, err := Base64URLToBytes(compressed)
	require.NoError(t, err)
	raw = raw[:len(raw)/2]

	_, err = c.Decompress(BytesToBase64URL(raw))
	assert.ErrorIs(t, err, ErrCorruptedStream)
}

func TestNewCompressor(t *testing.T) {
	c, err := NewCompressor("")
	require.NoError(t, err)
	assert.Equal(t, CompressionXZ, c.Name())

	c, err = NewCompressor(CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, c.Name())

	_, err = NewCompressor("lz-string")
	assert.ErrorIs(t, err, ErrUnknownCompression)
}
