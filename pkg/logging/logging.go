// Package logging configures the zerolog global logger used across the
// exporter packages and its CLI.
package logging

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFileName is resolved against XDG_STATE_HOME.
const logFileName = "exporter/exporter.log"

// configured is set once SetupLogger or SetupLoggerTo has run. Until then
// component loggers only pass warnings, so library callers see no chatter.
var configured atomic.Bool

// SetupLogger configures the global logger based on verbosity.
// It writes to stderr and, when the state directory is writable, to a log
// file.
func SetupLogger(verbosity int) {
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}}

	logFile, err := openLogFile()
	if err == nil {
		writers = append(writers, logFile)
	}

	SetupLoggerTo(io.MultiWriter(writers...), verbosity)

	if err != nil {
		log.Warn().Err(err).Msg("Failed to create log file, logging to console only")
	}
}

// SetupLoggerTo configures the global logger to write JSON lines to w.
func SetupLoggerTo(w io.Writer, verbosity int) {
	configured.Store(true)
	zerolog.SetGlobalLevel(LevelFor(verbosity))
	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// LevelFor maps a -v count to a level: warn, info, debug, then trace.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	logger := log.With().Str("component", name).Logger()
	if !configured.Load() {
		logger = logger.Level(LevelFor(0))
	}
	return logger
}

// LogOperationStart logs the start of an operation and returns a function
// to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

func openLogFile() (*os.File, error) {
	path, err := xdg.StateFile(logFileName)
	if err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
