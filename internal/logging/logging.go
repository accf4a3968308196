// Package logging sets up the file-backed structured logger.
//
// A terminal UI owns stdout, so log records go to a file. When the file
// cannot be opened, records are discarded rather than corrupting the screen.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu       sync.Mutex
	logFile  *os.File
	levelVar = &slog.LevelVar{}
)

// Setup opens path for appending and installs a JSON logger as the slog default.
// An empty path disables logging.
func Setup(path, level string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = io.Discard
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err == nil {
				closeLocked()
				logFile = f
				w = f
			}
		}
	}

	SetLevel(level)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelVar}))
	slog.SetDefault(logger)
	return logger
}

// SetLevel adjusts the level of the installed logger
func SetLevel(raw string) {
	levelVar.Set(ParseLevel(raw))
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close closes the log file if one is open
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
