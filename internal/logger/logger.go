// Package logger provides the leveled stderr logger used by the CLI.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogLevel defines log severity levels
type LogLevel int

const (
	// Log levels from least to most restrictive
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = map[LogLevel]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelColors = map[LogLevel]func(format string, a ...interface{}) string{
	LevelDebug: color.CyanString,
	LevelInfo:  color.BlueString,
	LevelWarn:  color.YellowString,
	LevelError: color.RedString,
}

// Logger provides leveled logging. It is safe for concurrent use.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	useColors bool
	level     LogLevel
	now       func() time.Time
}

// New creates a new Logger with the given settings
func New(out io.Writer, verbose bool, useColors bool) *Logger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}

	return &Logger{
		out:       out,
		useColors: useColors,
		level:     level,
		now:       time.Now,
	}
}

// WithLevel sets the log level and returns the logger
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
	return l
}

// SetLevel sets the log level from its name
func (l *Logger) SetLevel(levelStr string) {
	l.WithLevel(ParseLevel(levelStr))
}

// Level returns the current level.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// ParseLevel converts a level name to a LogLevel. Unknown names map to Info.
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

func (l *Logger) log(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	prefix := levelNames[level]
	if l.useColors {
		prefix = levelColors[level]("%s", prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", l.now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}
