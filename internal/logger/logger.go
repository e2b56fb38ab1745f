// Package logger holds the process-wide structured logger shared by the
// library and the command line tools.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L receives every log call. Nothing is written until Init or Set
// installs a real handler.
var L = discard()

const (
	filePrefix = "pmdm-"
	fileSuffix = ".log"
	dayLayout  = "2006-01-02"
	keepFor    = 30 * 24 * time.Hour
)

// file is the log file opened by the last Init, if any.
var file io.Closer

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // false discards everything
	LogDir  string     // default ~/.pouchkit/logs
	Level   slog.Level // default slog.LevelInfo
	Stderr  bool       // text on stderr instead of a JSON file per day
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Init installs the logger described by opts, replacing (and closing) any
// file opened by an earlier call.
func Init(opts Options) error {
	if !opts.Enabled {
		Set(nil)
		return nil
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}
	if opts.Level == 0 {
		hopts.Level = slog.LevelInfo
	}
	if opts.Stderr {
		Set(slog.New(slog.NewTextHandler(os.Stderr, hopts)))
		return nil
	}

	dir, err := logDir(opts.LogDir)
	if err != nil {
		return err
	}
	now := time.Now()
	cleanOldLogs(dir, now)

	f, err := os.OpenFile(logPath(dir, now), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	Set(slog.New(slog.NewJSONHandler(f, hopts)))
	file = f
	return nil
}

// Set installs l, or the discarding logger when l is nil.
func Set(l *slog.Logger) {
	Close()
	if l == nil {
		l = discard()
	}
	L = l
}

// Close releases the log file opened by Init. Later calls log nowhere.
func Close() {
	if file != nil {
		file.Close()
		file = nil
		L = discard()
	}
}

func logDir(dir string) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".pouchkit", "logs")
	}
	return dir, os.MkdirAll(dir, 0o755)
}

// logPath names the file for the given day, e.g. pmdm-2024-01-05.log.
func logPath(dir string, day time.Time) string {
	return filepath.Join(dir, filePrefix+day.Format(dayLayout)+fileSuffix)
}

// cleanOldLogs deletes our dated files older than keepFor. Errors are
// ignored; a stale log file is harmless.
func cleanOldLogs(dir string, now time.Time) {
	matches, _ := filepath.Glob(filepath.Join(dir, filePrefix+"*"+fileSuffix))
	for _, path := range matches {
		stamp := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(path), filePrefix), fileSuffix)
		day, err := time.Parse(dayLayout, stamp)
		if err != nil {
			continue
		}
		if now.Sub(day) > keepFor {
			os.Remove(path)
		}
	}
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
