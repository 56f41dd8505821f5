// Package utils provides common utilities shared across packages
package utils

// Logger defines a common logging interface used throughout the application.
// The ignore and walker packages only ever see this interface, so they can be
// used as libraries without pulling in the colored terminal logger.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// NoopLogger is a logger implementation that does nothing
type NoopLogger struct{}

func (NoopLogger) Debug(format string, args ...any) {}
func (NoopLogger) Info(format string, args ...any)  {}
func (NoopLogger) Warn(format string, args ...any)  {}
func (NoopLogger) Error(format string, args ...any) {}

// OrNoop returns l, or a NoopLogger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}
