package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/exnwm/exn/internal/paths"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Options configures New.
type Options struct {
	Level     string
	File      string // relative paths resolve under the state directory
	MaxSizeMB int
	MaxFiles  int

	// Stderr overrides os.Stderr. It is never treated as a terminal.
	Stderr io.Writer
}

// ParseLevel maps a configured level name to a zerolog level, defaulting
// to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds the process logger. Output goes to stderr, human-readable on a
// terminal and JSON lines otherwise, and is copied to a rotating log file
// when one is configured. The returned closer releases that file.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	out := consoleWriter(opts.Stderr)
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		path, err := paths.StatePath(opts.File)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		rf, err := OpenRotatingFile(path, opts.MaxSizeMB, opts.MaxFiles)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		out = zerolog.MultiLevelWriter(out, rf)
		closer = rf
	}

	log := zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
	return log, closer, nil
}

func consoleWriter(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}
	return os.Stderr
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
