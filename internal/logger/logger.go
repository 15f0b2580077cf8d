// Package logger provides verbose logging for the site-tools CLI.
// Debug records go to stderr only when verbose mode is enabled, so report
// output on stdout is never interleaved with log lines.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log     *slog.Logger
)

func init() {
	rebuild()
}

// rebuild must be called with mu held (or before any concurrent use)
func rebuild() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// Debug logs a message if verbose mode is enabled.
func Debug(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Info logs an informational message if verbose mode is enabled.
func Info(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Log(context.Background(), slog.LevelInfo, msg, args...)
}

// Warn logs a warning. Warnings are written even when verbose mode is off.
func Warn(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Log(context.Background(), slog.LevelWarn, msg, args...)
}
