// Package logger provides a simple logging interface for senso components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
//
// The process-wide logger is backed by zerolog writing through a diode, so
// a log call never blocks the dashboard's tick loop. Messages that cannot be
// drained fast enough are dropped rather than delaying the caller.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

// DebugEnv forces debug level when set to any non-empty value.
const DebugEnv = "SENSO_DEBUG"

const (
	diodeSize         = 1000
	diodePollInterval = 10 * time.Millisecond
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Options configures the process-wide logger.
type Options struct {
	// Path is the log file. It is truncated on open.
	Path string
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
}

// DefaultPath returns the log file used when none is configured.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "senso.log")
}

// zeroLogger implements Logger on top of a zerolog.Logger.
type zeroLogger struct {
	log zerolog.Logger
}

// New creates a Logger writing synchronously to w at the given level.
func New(w io.Writer, level string) (Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return &zeroLogger{log: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}, nil
}

func (l *zeroLogger) Debug(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zeroLogger) Info(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l *zeroLogger) Warn(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zeroLogger) Error(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// parseLevel maps a config level to zerolog, honoring SENSO_DEBUG.
func parseLevel(level string) (zerolog.Level, error) {
	if os.Getenv(DebugEnv) != "" {
		return zerolog.DebugLevel, nil
	}
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// asyncCloser tears down the diode. Closing the diode closes the console
// writer, which closes the log file it wraps.
type asyncCloser struct {
	diode diode.Writer
}

// Close flushes what the diode still holds (best effort) and closes the file.
func (c *asyncCloser) Close() error {
	err := c.diode.Close()
	SetDefault(Noop())
	return err
}

// Init opens the log file, installs an asynchronous zerolog logger as the
// package default, and returns a Closer that must be called at exit.
func Init(opts Options) (io.Closer, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	console := zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
	dw := diode.NewWriter(console, diodeSize, diodePollInterval, func(missed int) {
		fmt.Fprintf(f, "logger dropped %d messages\n", missed)
	})

	SetDefault(&zeroLogger{log: zerolog.New(dw).Level(lvl).With().Timestamp().Logger()})

	return &asyncCloser{diode: dw}, nil
}

// noopLogger implements Logger but discards all messages.
// Useful for testing or when logging is not desired.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

// defaultLogger discards everything until Init installs the file logger.
// The terminal belongs to the dashboard, so nothing is written to stdout.
var defaultLogger = Noop()

// Default returns the default logger for the package.
func Default() Logger {
	return defaultLogger
}

// SetDefault sets the default logger for the package.
func SetDefault(l Logger) {
	defaultLogger = l
}
