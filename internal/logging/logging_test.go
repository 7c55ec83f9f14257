package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/drawboard/internal/config"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "drawboard.log")
	logger, err := New(config.LogConfig{Path: path, Level: "warn"}, false)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.NotEmpty(t, rec["session"])
}

func TestVerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := New(config.LogConfig{Path: path, Level: "error"}, true)
	require.NoError(t, err)
	logger.Debug("dbg")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"dbg"`)
}

func TestBadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.log")
	logger, err := New(config.LogConfig{Path: path, Level: "chatty"}, false)
	require.NoError(t, err)
	logger.Debug("no")
	logger.Info("yes")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), `"msg":"no"`)
	require.Contains(t, string(data), `"msg":"yes"`)
}
