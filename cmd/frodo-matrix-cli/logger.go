package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const (
	logLevelFlag  = "loglevel"
	loggerMetaKey = "logger"

	consoleTimeFormat = time.RFC3339
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = utcNow
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// newLogger writes human-readable events to w at or above minLevel.
// An unparsable level falls back to info and says so.
func newLogger(w io.Writer, minLevel string) *zerolog.Logger {
	level, levelErr := zerolog.ParseLevel(minLevel)
	if levelErr != nil || minLevel == "" {
		level = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: consoleTimeFormat}
	log := zerolog.New(console).Level(level).With().Timestamp().Logger()
	if levelErr != nil {
		log.Error().Msgf("Failed to parse log level %q, using %q instead", minLevel, level)
	}
	return &log
}

// setupLogger is the app's Before hook.
func setupLogger(c *cli.Context) error {
	c.App.Metadata[loggerMetaKey] = newLogger(c.App.ErrWriter, c.String(logLevelFlag))
	return nil
}

func loggerFromContext(c *cli.Context) *zerolog.Logger {
	if log, ok := c.App.Metadata[loggerMetaKey].(*zerolog.Logger); ok {
		return log
	}
	nop := zerolog.Nop()
	return &nop
}
