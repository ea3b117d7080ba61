// Package logging configures the structured logger for aws-reporter.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
}

// Init configures the logger from the -v count: 0 warn, 1 info, 2+ debug.
func Init(verbosity int) {
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger = zerolog.New(out).With().Timestamp().Logger().Level(LevelFor(verbosity))
}

// LevelFor maps a verbosity count to a zerolog level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// L returns the configured logger.
func L() *zerolog.Logger {
	return &logger
}

// SetLogger overrides the logger (useful for testing).
func SetLogger(l zerolog.Logger) {
	logger = l
}
