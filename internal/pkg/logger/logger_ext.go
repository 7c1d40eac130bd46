package logger

import (
	"go.uber.org/zap"
)

// Logger wraps zap.Logger so helper methods report the caller's file, not this one.
type Logger struct {
	*zap.Logger
}

// NewLogger wraps base. A nil base yields a no-op logger.
func NewLogger(base *zap.Logger) *Logger {
	if base == nil {
		base = zap.NewNop()
	}
	return &Logger{Logger: base}
}

// Debug logs at DebugLevel, skipping this wrapper frame.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.Logger.WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

// Info logs at InfoLevel, skipping this wrapper frame.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.Logger.WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

// Error logs at ErrorLevel, skipping this wrapper frame.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.Logger.WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}

// With adds fields and returns a new Logger.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

// Named adds a name segment and returns a new Logger.
func (l *Logger) Named(name string) *Logger {
	return &Logger{Logger: l.Logger.Named(name)}
}
