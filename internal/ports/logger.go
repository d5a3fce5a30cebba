package ports

import (
	"context"
	"fmt"
	"strings"
)

// Level orders log entries by severity. Higher values are more severe.
type Level int

const (
	// LevelDebug shows every action a step runs.
	LevelDebug Level = iota
	// LevelInfo shows phase transitions. It is the default.
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the upper-case label printed in text entries.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel reads a log_level value. Case and surrounding space are
// ignored and the empty string means info.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Field is one key=value pair attached to an entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for Field{Key: key, Value: value}.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is the diagnostic log the orchestrator and steps write to. It is
// separate from Reporter, which owns the user-facing progress lines.
type Logger interface {
	// Debug, Info, Warn and Error write an entry at their level.
	Debug(ctx context.Context, msg string, fields ...Field)

	Info(ctx context.Context, msg string, fields ...Field)

	Warn(ctx context.Context, msg string, fields ...Field)

	Error(ctx context.Context, msg string, fields ...Field)

	// With returns a Logger that adds fields to each entry.
	With(fields ...Field) Logger

	// Level and SetLevel read and move the threshold below which entries
	// are dropped.
	Level() Level
	SetLevel(level Level)
}

// LoggerFromContext returns the Logger stored by ContextWithLogger, or nil.
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return logger
	}
	return nil
}

// ContextWithLogger stores logger in ctx so actions can log without a
// Logger parameter.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

type loggerKey struct{}
