// Package logging builds the zerolog logger roster writes to.
//
// The interactive TUI owns the terminal, so it logs to a file. Plain runs
// write human-readable lines to stderr instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options select where and how much to log.
type Options struct {
	Level string // zerolog level name; unknown values mean info
	File  string // append to this file when set
	// Console writes to Stderr (or os.Stderr) instead of a file. Used for
	// non-interactive runs.
	Console bool
	Stderr  io.Writer
}

// Logger bundles the configured logger with whatever it needs closed.
type Logger struct {
	zerolog.Logger
	closer io.Closer
	Path   string // log file path, empty when not logging to a file
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// New returns a logger for opts. With neither Console nor File set it
// returns a disabled logger.
func New(opts Options) (*Logger, error) {
	level := ParseLevel(opts.Level)

	switch {
	case opts.Console:
		out := opts.Stderr
		if out == nil {
			out = os.Stderr
		}
		console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
		return &Logger{Logger: zerolog.New(console).Level(level).With().Timestamp().Logger()}, nil

	case strings.TrimSpace(opts.File) != "":
		path := strings.TrimSpace(opts.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l := zerolog.New(file).Level(level).With().Timestamp().Logger()
		return &Logger{Logger: l, closer: file, Path: path}, nil

	default:
		return &Logger{Logger: zerolog.Nop()}, nil
	}
}

// ParseLevel maps a level name onto zerolog, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Component returns a child logger tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
