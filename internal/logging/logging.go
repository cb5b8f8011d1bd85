// Package logging configures zerolog for the CLI and loads a .env file from
// the working directory.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupEnvironment loads .env if present and configures the global zerolog
// logger to write to w. debug forces the debug level; otherwise LOGLEVEL
// decides, defaulting to warn so regular command output stays clean.
func SetupEnvironment(w io.Writer, debug, color bool) zerolog.Logger {
	err := godotenv.Load()

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !color, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	level := ParseLevel(os.Getenv("LOGLEVEL"))
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	// wait until now to report on the .env file so logging is set up first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found; proceeding with existing environment variables.")
	}

	return log.Logger
}

// ParseLevel maps a LOGLEVEL value to a zerolog level. Unknown and empty
// values map to warn.
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
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	}
	return zerolog.WarnLevel
}
