// Package writer provides sinks for encoded captures.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives a complete encoded capture.
type Sink interface {
	WriteCapture(b []byte) error
}

// FileWriter replaces the file at Path atomically.
type FileWriter struct {
	Path string
	Perm os.FileMode // Default: 0644
}

// WriteCapture writes b to a temp file next to Path, syncs it and renames it
// over Path, so readers never observe a partial capture.
func (w *FileWriter) WriteCapture(b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(w.Path), ".pmdm-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
