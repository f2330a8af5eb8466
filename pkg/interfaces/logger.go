package interfaces

import "context"

// Logger is the leveled logging contract used across the pipeline. It mirrors
// the surface of github.com/goliatone/go-logger so host applications can plug
// that package in directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. Implementations may scope loggers
// per module or return a shared instance for every name.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for attaching persistent structured
// fields. Providers supporting it should return a new logger that applies the
// fields to every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
