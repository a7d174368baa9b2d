package log

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

const (
	// ErrAttrKey is the conventional field key for error values.
	ErrAttrKey = "error"
	// StacktraceAttrKey carries the stack trace extracted from an error.
	StacktraceAttrKey = "stacktrace"
	// NameKey carries the component name assigned by GetLoggerWithName.
	NameKey = "logger"
)

var (
	loggerOnce sync.Once
	rootLogger *zerologLogger
)

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	loggerOnce.Do(initRootLogger)
	return rootLogger
}

// GetLoggerWithName returns a logger with a component name attached to
// every record, e.g. "boosting.trainer".
func GetLoggerWithName(name string) Logger {
	loggerOnce.Do(initRootLogger)
	return rootLogger.With(NameKey, name)
}

// SetLevel sets the minimum level emitted by all loggers in the process.
func SetLevel(level Level) {
	zerolog.SetGlobalLevel(toZerologLevel(level))
}

func initRootLogger() {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	rootLogger = &zerologLogger{zl: zl}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger. Tests use this to
// capture output into a buffer.
func NewZerologLogger(zl zerolog.Logger) Logger {
	return &zerologLogger{zl: zl}
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.emit(l.zl.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	l.emit(l.zl.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.emit(l.zl.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	l.emit(l.zl.Error(), msg, fields)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	pairs(fields)(func(key string, value any) bool {
		ctx = ctx.Interface(key, value)
		return true
	})
	return &zerologLogger{zl: ctx.Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.zl.GetLevel() &&
		toZerologLevel(level) >= zerolog.GlobalLevel()
}

func (l *zerologLogger) emit(e *zerolog.Event, msg string, fields []any) {
	pairs(fields)(func(key string, value any) bool {
		if key == ErrAttrKey {
			if err, ok := value.(error); ok {
				e = e.Err(err)
				if trace := extractStacktrace(err); trace != "" {
					e = e.Str(StacktraceAttrKey, trace)
				}
				return true
			}
		}
		if obj, ok := value.(zerolog.LogObjectMarshaler); ok {
			e = e.Object(key, obj)
			return true
		}
		e = e.Interface(key, value)
		return true
	})
	e.Msg(msg)
}

// pairs iterates fields as key-value pairs. A non-string key is stringified
// rather than dropped, so malformed call sites stay visible in the output.
func pairs(fields []any) func(yield func(string, any) bool) {
	return func(yield func(string, any) bool) {
		for i := 0; i+1 < len(fields); i += 2 {
			key, ok := fields[i].(string)
			if !ok {
				key = fmt.Sprint(fields[i])
			}
			if !yield(key, fields[i+1]) {
				return
			}
		}
	}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
