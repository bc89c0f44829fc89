package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the engine logger with a human-readable console writer
// on the given output. level is parsed as a zerolog level and defaults to
// info when unparseable.
func NewLogger(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(consoleWriter).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// NewDefaultLogger returns a logger writing to stderr at the config's
// level.
func (c Config) NewDefaultLogger() zerolog.Logger {
	return NewLogger(os.Stderr, c.Logging.Level)
}
