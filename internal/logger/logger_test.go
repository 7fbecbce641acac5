package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		logDebug  bool
		logInfo   bool
		logErrors bool
	}{
		{name: "empty defaults to info", level: "", logDebug: false, logInfo: true, logErrors: true},
		{name: "debug logs everything", level: "debug", logDebug: true, logInfo: true, logErrors: true},
		{name: "warn drops info", level: "warn", logDebug: false, logInfo: false, logErrors: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DebugEnv, "")

			var buf bytes.Buffer
			l, err := New(&buf, tt.level)
			require.NoError(t, err)

			l.Debug("debug line %d", 1)
			l.Info("info line %d", 2)
			l.Error("error line %d", 3)

			out := buf.String()
			assert.Equal(t, tt.logDebug, bytes.Contains(buf.Bytes(), []byte("debug line 1")), out)
			assert.Equal(t, tt.logInfo, bytes.Contains(buf.Bytes(), []byte("info line 2")), out)
			assert.Equal(t, tt.logErrors, bytes.Contains(buf.Bytes(), []byte("error line 3")), out)
		})
	}
}

func TestNew_DebugEnvForcesDebug(t *testing.T) {
	t.Setenv(DebugEnv, "1")

	var buf bytes.Buffer
	l, err := New(&buf, "error")
	require.NoError(t, err)

	l.Debug("chip %s", "hwmon:hwmon0")
	assert.Contains(t, buf.String(), "chip hwmon:hwmon0")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Setenv(DebugEnv, "")

	_, err := New(&bytes.Buffer{}, "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestInit_WritesAsynchronouslyAndCloses(t *testing.T) {
	t.Setenv(DebugEnv, "")
	path := filepath.Join(t.TempDir(), "logs", "senso.log")

	closer, err := Init(Options{Path: path, Level: "info"})
	require.NoError(t, err)

	Default().Info("tick_rate = %s", "100ms")

	// The diode drains on its own goroutine.
	assert.Eventually(t, func() bool {
		data, _ := os.ReadFile(path)
		return bytes.Contains(data, []byte("tick_rate = 100ms"))
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, closer.Close())

	// After Close the default logger is inert again.
	Default().Info("after close")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after close")
}

func TestInit_TruncatesExistingFile(t *testing.T) {
	t.Setenv(DebugEnv, "")
	path := filepath.Join(t.TempDir(), "senso.log")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0o644))

	closer, err := Init(Options{Path: path})
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale contents")
}

func TestAsyncCloser_ClosesFileThroughDiode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "senso.log")
	f, err := os.Create(path)
	require.NoError(t, err)

	dw := diode.NewWriter(zerolog.ConsoleWriter{Out: f, NoColor: true}, diodeSize, diodePollInterval, func(int) {})
	closer := &asyncCloser{diode: dw}

	require.NoError(t, closer.Close())

	_, err = f.WriteString("late")
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestNoopLogger(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("debug")
		l.Info("info")
		l.Warn("warn")
		l.Error("error")
	})
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	require.Len(t, l.Messages, 4)

	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "debug msg", l.Messages[0].Message)
	assert.Equal(t, "warn", l.Messages[2].Level)
	assert.Equal(t, "error msg", l.Messages[3].Message)
}

func TestBufferLogger_HasLevelAndClear(t *testing.T) {
	l := NewBufferLogger()
	assert.False(t, l.HasLevel("warn"))

	l.Warn("sensor %s unreadable", "temp3")
	assert.True(t, l.HasLevel("warn"))

	l.Clear()
	assert.Empty(t, l.Messages)
	assert.False(t, l.HasLevel("warn"))
}

func TestSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("hello")

	require.Len(t, buf.Messages, 1)
	assert.Equal(t, "hello", buf.Messages[0].Message)
}
