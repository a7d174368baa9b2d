// Package log provides structured logging for gboost training and prediction.
//
// The package defines a minimal, slog-compatible Logger interface with
// ML-specific attribute keys, backed by zerolog. Loggers are obtained from
// GetLogger or GetLoggerWithName and carry structured key-value fields:
//
//	logger := log.GetLoggerWithName("boosting.trainer")
//	logger.Info("training started",
//	    log.OperationKey, "fit",
//	    log.SamplesKey, n,
//	    log.FeaturesKey, p,
//	)
package log

import (
	"context"
)

// Logger is a structured logging interface compatible with Go's log/slog
// conventions. Fields are alternating key-value pairs; keys are strings.
type Logger interface {
	// Debug logs detailed diagnostic information, usually disabled outside
	// development.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not stop the
	// operation.
	Warn(msg string, fields ...any)

	// Error logs error conditions. An error value passed under ErrAttrKey
	// is rendered with its stack trace when one is attached.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated on
	// every subsequent record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip expensive field construction for suppressed levels.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level. Values are compatible with slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the conventional upper-case name of the level.
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
