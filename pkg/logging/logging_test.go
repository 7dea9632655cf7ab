package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSetupWithOptionsWritesJSONFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "wedplan.log")
	var console bytes.Buffer

	closer, err := SetupWithOptions(Options{Level: slog.LevelInfo, File: path, Console: &console})
	require.NoError(t, err)

	slog.With("component", "test").Info("hello", "n", 1)
	slog.Debug("dropped")
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "hello")
	assert.NotContains(t, console.String(), "dropped")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "test", rec["component"])
	assert.EqualValues(t, 1, rec["n"])
}

func TestSetupWithOptionsConsoleOnly(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var console bytes.Buffer
	closer, err := SetupWithOptions(Options{Level: slog.LevelWarn, Console: &console})
	require.NoError(t, err)
	defer closer.Close()

	slog.Info("quiet")
	slog.Warn("loud")
	assert.NotContains(t, console.String(), "quiet")
	assert.Contains(t, console.String(), "loud")
}

func TestSetupWithOptionsFileKeepsGroups(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "wedplan.log")
	var console bytes.Buffer

	closer, err := SetupWithOptions(Options{Level: slog.LevelDebug, File: path, Console: &console})
	require.NoError(t, err)

	slog.Default().WithGroup("rpc").Debug("call", "procedure", "/wedplan.v1.TaskService/ListTasks")
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "rpc.procedure")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	group, ok := rec["rpc"].(map[string]any)
	require.True(t, ok, "expected rpc group in %s", data)
	assert.Equal(t, "/wedplan.v1.TaskService/ListTasks", group["procedure"])
}
