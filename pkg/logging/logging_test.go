// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp state directory
// PURPOSE: Test verbosity levels, log file placement and log helpers

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger_CreatesLogFile(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	SetupLogger(2)

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	_, err := os.Stat(filepath.Join(stateHome, "dotlink", LogFileName))
	assert.NoError(t, err)
}

func TestSetupLogger_UnwritableStateDir(t *testing.T) {
	stateHome := t.TempDir()
	// A file where the dotlink directory should be makes MkdirAll fail
	assert.NoError(t, os.WriteFile(filepath.Join(stateHome, "dotlink"), []byte("x"), 0644))
	t.Setenv("XDG_STATE_HOME", stateHome)

	assert.NotPanics(t, func() { SetupLogger(0) })
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "dotlink", LogFileName), LogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_STATE_HOME", "")
		t.Setenv("HOME", home)
		assert.Equal(t, filepath.Join(home, ".local", "state", "dotlink", LogFileName), LogFilePath())
	})
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("commands.link")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"commands.link"`)
}

func TestLogInvocation(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	LogInvocation("dotlink link", []string{"--force"})

	assert.Contains(t, buf.String(), `"command":"dotlink link"`)
	assert.Contains(t, buf.String(), "--force")
}

func TestLogExternal(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	LogExternal(logger, "git", "/repo", []string{"pull", "--rebase"})

	output := buf.String()
	assert.Contains(t, output, `"tool":"git"`)
	assert.Contains(t, output, `"dir":"/repo"`)
	assert.Contains(t, output, "--rebase")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "link")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
