package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	l, err := NewLogger(path, "debug")
	require.NoError(t, err)

	l.With("job_id", "j1").Info("job updated", "status", "started")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "job updated", entry["msg"])
	assert.Equal(t, "j1", entry["job_id"])
	assert.Equal(t, "started", entry["status"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, nil, "warn")

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestEmptyPathDiscards(t *testing.T) {
	l, err := NewLogger("", "info")
	require.NoError(t, err)
	l.Info("nothing")
	assert.NoError(t, l.Close())
}

func TestIsValidLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "Warn", "error"} {
		assert.True(t, IsValidLevel(lvl), lvl)
	}
	assert.False(t, IsValidLevel("trace"))
}
