package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("daemon")
	l.Logger = l.Output(&buf)

	l.Info().Str("action", "copyAllTabs").Msg("message handled")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "daemon", entry["role"])
	assert.Equal(t, "copyAllTabs", entry["action"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("daemon")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "t-1").Logger()
	child.Info().Msg("request")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "daemon", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])
}

func TestFromContextAndRequest(t *testing.T) {
	t.Run("nothing attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
		require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/api/version", nil)))
	})

	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
		ctx := zl.WithContext(context.Background())

		FromContext(ctx).Info().Msg("ctx")
		assert.Equal(t, "abc", decodeEntry(t, buf.Bytes())["trace_id"])

		buf.Reset()
		req := httptest.NewRequest(http.MethodPost, "/api/messages", nil).WithContext(ctx)
		FromRequest(req).Info().Msg("req")
		assert.Equal(t, "abc", decodeEntry(t, buf.Bytes())["trace_id"])
	})
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tabkeeper.log")

	l := NewClientLogger("cli", path)
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "cli", entry["role"])
	assert.Equal(t, "to file", entry["message"])
}

func TestNewClientLogger_UnwritablePathFallsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// parent of the log file is a regular file, so MkdirAll fails
	l := NewClientLogger("cli", filepath.Join(blocker, "tabkeeper.log"))
	require.NotNil(t, l)
}

func TestDefaultLogPath(t *testing.T) {
	path := DefaultLogPath()
	assert.Equal(t, DefaultLogFileName, filepath.Base(path))
	assert.Equal(t, "tabkeeper", filepath.Base(filepath.Dir(path)))
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	SetLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("nonsense")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
