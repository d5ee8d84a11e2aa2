package log

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger writes structured entries through zerolog.
type Logger struct {
	mu sync.RWMutex
	zl zerolog.Logger
}

// New creates a JSON logger with the given minimum level. Without writers
// it logs to stdout; several writers all receive every entry.
func New(level Level, writers ...io.Writer) *Logger {
	return &Logger{zl: zerolog.New(output(writers)).Level(level.zerolog()).With().Timestamp().Logger()}
}

// NewConsole creates a human readable logger for local development.
func NewConsole(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return &Logger{zl: zerolog.New(cw).Level(level.zerolog()).With().Timestamp().Logger()}
}

func output(writers []io.Writer) io.Writer {
	switch len(writers) {
	case 0:
		return os.Stdout
	case 1:
		return writers[0]
	default:
		return zerolog.MultiLevelWriter(writers...)
	}
}

// SetLevel changes the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.zl = l.zl.Level(level.zerolog())
	l.mu.Unlock()
}

// With creates a child logger with additional base fields.
func (l *Logger) With(keysAndValues ...any) *Logger {
	l.mu.RLock()
	child := l.zl.With().Fields(keysAndValues).Logger()
	l.mu.RUnlock()
	return &Logger{zl: child}
}

func (l *Logger) log(level Level, ctx context.Context, msg string, keysAndValues ...any) {
	l.mu.RLock()
	zl := l.zl
	l.mu.RUnlock()

	ev := zl.WithLevel(level.zerolog())
	if ev == nil {
		return
	}
	if ctx != nil {
		if id := RequestIDFromContext(ctx); id != "" {
			ev = ev.Str("request_id", id)
		}
		if fields := FieldsFromContext(ctx); len(fields) > 0 {
			ev = ev.Fields(fields)
		}
	}
	if len(keysAndValues) > 1 {
		ev = ev.Fields(keysAndValues)
	}
	ev.Msg(msg)
}

// Trace logs at Trace level.
func (l *Logger) Trace(msg string, keysAndValues ...any) {
	l.log(Trace, nil, msg, keysAndValues...)
}

// Debug logs at Debug level.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.log(Debug, nil, msg, keysAndValues...)
}

// Info logs at Info level.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.log(Info, nil, msg, keysAndValues...)
}

// Warn logs at Warn level.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.log(Warn, nil, msg, keysAndValues...)
}

// Error logs at Error level.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.log(Error, nil, msg, keysAndValues...)
}

// Fatal logs at Fatal level. It does not exit.
func (l *Logger) Fatal(msg string, keysAndValues ...any) {
	l.log(Fatal, nil, msg, keysAndValues...)
}

// TraceCtx logs at Trace level with context.
func (l *Logger) TraceCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Trace, ctx, msg, keysAndValues...)
}

// DebugCtx logs at Debug level with context.
func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Debug, ctx, msg, keysAndValues...)
}

// InfoCtx logs at Info level with context.
func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Info, ctx, msg, keysAndValues...)
}

// WarnCtx logs at Warn level with context.
func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Warn, ctx, msg, keysAndValues...)
}

// ErrorCtx logs at Error level with context.
func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Error, ctx, msg, keysAndValues...)
}

// FatalCtx logs at Fatal level with context.
func (l *Logger) FatalCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Fatal, ctx, msg, keysAndValues...)
}

// --- Global Logger ---

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
	nopLogger    = &Logger{zl: zerolog.Nop()}
)

// SetDefault sets the global default logger.
func SetDefault(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// Default returns the global logger, or one that discards everything.
func Default() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()

	if l == nil {
		return nopLogger
	}
	return l
}

// GlobalTrace logs at Trace level using the global logger.
func GlobalTrace(msg string, keysAndValues ...any) {
	Default().Trace(msg, keysAndValues...)
}

// GlobalDebug logs at Debug level using the global logger.
func GlobalDebug(msg string, keysAndValues ...any) {
	Default().Debug(msg, keysAndValues...)
}

// GlobalInfo logs at Info level using the global logger.
func GlobalInfo(msg string, keysAndValues ...any) {
	Default().Info(msg, keysAndValues...)
}

// GlobalWarn logs at Warn level using the global logger.
func GlobalWarn(msg string, keysAndValues ...any) {
	Default().Warn(msg, keysAndValues...)
}

// GlobalError logs at Error level using the global logger.
func GlobalError(msg string, keysAndValues ...any) {
	Default().Error(msg, keysAndValues...)
}

// GlobalFatal logs at Fatal level using the global logger.
func GlobalFatal(msg string, keysAndValues ...any) {
	Default().Fatal(msg, keysAndValues...)
}

// GlobalDebugCtx logs at Debug level with context using the global logger.
func GlobalDebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().DebugCtx(ctx, msg, keysAndValues...)
}

// GlobalInfoCtx logs at Info level with context using the global logger.
func GlobalInfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().InfoCtx(ctx, msg, keysAndValues...)
}

// GlobalWarnCtx logs at Warn level with context using the global logger.
func GlobalWarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().WarnCtx(ctx, msg, keysAndValues...)
}

// GlobalErrorCtx logs at Error level with context using the global logger.
func GlobalErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().ErrorCtx(ctx, msg, keysAndValues...)
}
