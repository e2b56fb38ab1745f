package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesDatedJSONFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { Set(nil) })

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	Info("hello", "op", "test")

	data, err := os.ReadFile(logPath(dir, time.Now()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"op":"test"`)
}

func TestInit_DisabledDiscards(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	var out bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Debug("debug line", "n", 3)
	assert.Contains(t, out.String(), "debug line")
	assert.Contains(t, out.String(), "n=3")
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	old := filepath.Join(dir, "pmdm-2024-01-01.log")
	recent := filepath.Join(dir, "pmdm-2024-02-25.log")
	other := filepath.Join(dir, "notes-2020-01-01.log")
	for _, p := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}

	cleanOldLogs(dir, now)

	assert.NoFileExists(t, old)
	assert.FileExists(t, recent)
	assert.FileExists(t, other)
}

func TestClose_StopsFileLogging(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { Set(nil) })

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	Info("before")
	Close()
	Info("after")

	data, err := os.ReadFile(logPath(dir, time.Now()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "before")
	assert.NotContains(t, string(data), "after")
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}
