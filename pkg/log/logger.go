// Package log provides structured, leveled logging with a small interface
// that higher layers can depend on without binding to a concrete backend.
package log

import (
	"fmt"
	"strings"
)

// Level is a log severity level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// ParseLevel converts a level name to a Level, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(s)) {
	case LevelDebug:
		return LevelDebug, nil
	case LevelInfo:
		return LevelInfo, nil
	case LevelWarn:
		return LevelWarn, nil
	case LevelError:
		return LevelError, nil
	case LevelFatal:
		return LevelFatal, nil
	}
	return "", fmt.Errorf("unknown log level %q", s)
}

// Config controls the output of a concrete logger.
type Config struct {
	// Format selects the output encoding: "json" or "logfmt".
	Format string
	// Level is the minimum severity that is emitted.
	Level Level
}

// Logger is a leveled, structured logger. keysAndValues are treated as
// alternating key-value pairs (e.g., "key1", value1, "key2", value2).
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Fatal(msg string, keysAndValues ...any)

	// Name returns the dot-separated name of the logger.
	Name() string
	// WithName returns a logger whose name has the given segment appended.
	WithName(name string) Logger
	// WithKV returns a logger that attaches the key-value pair to every entry.
	WithKV(key string, value any) Logger
	// GetAllKV returns the key-value pairs attached with WithKV, in order.
	GetAllKV() []any
	// AddCallerSkip returns a logger that skips additional call frames when
	// resolving caller information, for use inside logging wrappers.
	AddCallerSkip(skip int) Logger
}

// NoopLogger discards everything. Useful as a default in tests and optional
// dependencies.
type NoopLogger struct{}

// NewNoopLogger returns a logger that drops all entries.
func NewNoopLogger() Logger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(string, ...any)      {}
func (l *NoopLogger) Info(string, ...any)       {}
func (l *NoopLogger) Warn(string, ...any)       {}
func (l *NoopLogger) Error(string, ...any)      {}
func (l *NoopLogger) Fatal(string, ...any)      {}
func (l *NoopLogger) Name() string              { return "" }
func (l *NoopLogger) WithName(string) Logger    { return l }
func (l *NoopLogger) WithKV(string, any) Logger { return l }
func (l *NoopLogger) GetAllKV() []any           { return nil }
func (l *NoopLogger) AddCallerSkip(int) Logger  { return l }
