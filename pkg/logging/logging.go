// Package logging configures the process-wide zerolog logger. Console
// output goes to stderr so it never mixes with rendered reports on stdout;
// every run also appends to a log file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the name of the log file kept under the XDG state directory
const LogFileName = "dotlink.log"

// verbosityLevels maps the number of --verbose flags to a level; anything
// past the end is trace.
var verbosityLevels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

// LevelFor returns the global level used for a --verbose count
func LevelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(verbosityLevels) {
		return zerolog.TraceLevel
	}
	return verbosityLevels[verbosity]
}

// SetupLogger installs the global logger for one dotlink run. A log file
// that cannot be opened downgrades to console-only logging with a warning.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}}

	logPath := LogFilePath()
	file, fileErr := openLogFile(logPath)
	if fileErr == nil {
		writers = append(writers, file)
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Log file unavailable, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger ready")
}

// GetLogger returns a logger tagged with component
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogFilePath is $XDG_STATE_HOME/dotlink/dotlink.log, falling back to
// ~/.local/state when XDG_STATE_HOME is unset. The environment is read on
// every call so tests can redirect it.
func LogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return LogFileName
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "dotlink", LogFileName)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogInvocation records which dotlink subcommand is running and its arguments
func LogInvocation(commandPath string, args []string) {
	log.Info().
		Str("command", commandPath).
		Strs("args", args).
		Msg("Running command")
}

// LogExternal records an external tool call, git in practice, before it runs
func LogExternal(logger zerolog.Logger, tool, dir string, args []string) {
	logger.Debug().
		Str("tool", tool).
		Str("dir", dir).
		Strs("args", args).
		Msg("Running external tool")
}

// LogOperationStart logs that operation began and returns the func that logs
// its completion with the elapsed time. Callers defer the returned func.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
