package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	logger, err := New(Config{Level: "debug", OutputPath: path})
	require.NoError(t, err)

	logger.Info("worksheet generated", zap.String("word", "apple"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "worksheet generated", entry["msg"])
	assert.Equal(t, "apple", entry["word"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := New(Config{Level: "WARN", OutputPath: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("image quota exhausted")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "image quota exhausted")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("VOCASHEET_LOG", "")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state/vocasheet/vocasheet.log", p)

	t.Setenv("VOCASHEET_LOG", "/var/log/v.log")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/v.log", p)
}
