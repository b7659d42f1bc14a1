package loggers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// FileOptions configures the optional rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// New creates a new zerolog logger writing to stdout based on the provided log level string.
// Returns an error if the log level string cannot be parsed.
func New(level string) (Logger, error) {
	return newWithWriter(level, os.Stdout)
}

// NewWithFile creates a logger writing to stdout and to a rotating file.
// The returned closer releases the file and must be closed on shutdown.
// An empty opts.Path behaves like New.
func NewWithFile(level string, opts FileOptions) (Logger, io.Closer, error) {
	if opts.Path == "" {
		logger, err := New(level)
		return logger, io.NopCloser(nil), err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB, // megabytes, 0 means lumberjack default
		MaxBackups: opts.MaxBackups,
	}

	logger, err := newWithWriter(level, io.MultiWriter(os.Stdout, fileWriter))
	if err != nil {
		_ = fileWriter.Close()
		return logger, io.NopCloser(nil), err
	}
	return logger, fileWriter, nil
}

func newWithWriter(level string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	// JSON output, timestamp, caller
	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts a logger from the context.
// Returns a disabled logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
