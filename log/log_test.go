package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelWarn,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, (&Config{Level: in}).SlogLevel(), in)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "info"}, &buf)

	l.Debug("hidden")
	l.Info("rates fetched", slog.String("base", "EUR"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "rates fetched", rec["msg"])
	assert.Equal(t, "EUR", rec["base"])
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "debug", Pretty: true}, &buf)

	l.Debug("loaded", slog.Int("entries", 253))
	assert.Contains(t, buf.String(), "msg=loaded entries=253")
}
