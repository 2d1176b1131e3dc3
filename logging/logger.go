// Package logging provides the structured logger used across newspipe.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger provides structured logging functionality.
type Logger struct {
	internal *slog.Logger
	level    *slog.LevelVar
}

// ParseLevel maps a level name to a slog level. Unknown names are reported
// with ok == false and map to info.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a logger writing to w at the given level. format is "json" or
// "text"; anything else means text. A nil w writes to stderr.
func New(level, format string, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl := new(slog.LevelVar)
	l, _ := ParseLevel(level)
	lvl.Set(l)

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		internal: slog.New(handler),
		level:    lvl,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New("error", "text", io.Discard)
}

func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn(msg, args...)
}

// With creates a child logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With(args...),
		level:    l.level,
	}
}

// SetLevel changes the level of l and every logger derived from it.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}
