// Package logger provides a thread-safe, structured JSON logging solution.
// It supports different log levels (INFO, ERROR, WARN, DEBUG) and optional structured data.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Logger writes one JSON object per line. The terminal belongs to the UI,
// so entries normally go to a file in the vault.
type Logger struct {
	file io.Closer
	log  *slog.Logger
}

// NewLogger creates a new logger instance that writes to the specified file.
// It creates the log directory if it doesn't exist and opens the log file in append mode.
//
// Example:
//
//	logger, err := NewLogger("/home/me/.genpad/genpad.log")
//	if err != nil {
//	    log.Fatalf("Failed to create logger: %v", err)
//	}
//	defer logger.Close()
func NewLogger(logPath string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := New(file)
	l.file = file
	return l, nil
}

// New returns a logger writing to w at debug level.
func New(w io.Writer) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{log: slog.New(h)}
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	return New(io.Discard)
}

// Close closes the underlying log file.
// It's safe to call Close multiple times.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) emit(level slog.Level, message string, data map[string]interface{}) {
	if l == nil || l.log == nil {
		return
	}

	// Keys are sorted so entries for the same event always look the same.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, data[k]))
	}
	l.log.LogAttrs(context.Background(), level, message, attrs...)
}

// Info logs an informational message.
//
// Example:
//
//	logger.Info("generation started", map[string]interface{}{
//	    "backend": "gemini",
//	})
func (l *Logger) Info(message string, data map[string]interface{}) {
	l.emit(slog.LevelInfo, message, data)
}

// Error logs an error message along with error details.
// The error text is stored under the "error" key unless data already has one.
func (l *Logger) Error(message string, err error, data map[string]interface{}) {
	if err == nil {
		l.emit(slog.LevelWarn, message+" (no error provided)", data)
		return
	}

	fields := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		fields[k] = v
	}
	if _, exists := fields["error"]; !exists {
		fields["error"] = err.Error()
	}

	l.emit(slog.LevelError, message, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, data map[string]interface{}) {
	l.emit(slog.LevelWarn, message, data)
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, data map[string]interface{}) {
	l.emit(slog.LevelDebug, message, data)
}
