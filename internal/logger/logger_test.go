package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *Logger {
	l := New(buf, verbose, false)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	return l
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Info("scanned %d files", 3)

	assert.Equal(t, "[03:04:05.006 INFO] scanned 3 files\n", buf.String())
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Debug("hidden")
	assert.Empty(t, buf.String(), "debug is below the default level")

	l.SetLevel("warn")
	l.Info("hidden")
	l.Warn("shown")
	assert.Contains(t, buf.String(), "WARN] shown")
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	l.SetLevel("off")
	l.Error("nothing")
	assert.Empty(t, buf.String())
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, true)

	l.Debug("x=%v", true)

	assert.Equal(t, LevelDebug, l.Level())
	assert.Contains(t, buf.String(), "DEBUG] x=true")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"Warning": LevelWarn,
		"error":   LevelError,
		"none":    LevelNone,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
