package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlags restores every global flag to its default between runs.
func resetFlags() {
	verbose, quiet, jsonOut, confirmDeref, inPlace = false, false, false, false, false
	translationsPath, outPath = "", ""
	getType, getModifier = "", ""
	newAddr = "0x2a982c8b0"
}

// run executes the command line and returns what it printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)
	return captureOutput(t, func() error {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	})
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// newCapture writes an empty manager capture and returns its path.
func newCapture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pmdm.bin")
	_, err := run(t, "new", path)
	require.NoError(t, err)
	return path
}
