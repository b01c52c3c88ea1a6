package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestSetupWritesDebugFile(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), DebugLogName)

	closeLog, err := Setup(Options{Debug: true, FilePath: path})
	require.NoError(t, err)

	log.Debug().Str("component", "test").Msg("hello trace")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello trace")
	assert.Contains(t, string(data), "component=test")
}

func TestSetupWithoutDebugSkipsDebugEntries(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), DebugLogName)

	closeLog, err := Setup(Options{FilePath: path})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSetupBadPath(t *testing.T) {
	restoreLogger(t)
	_, err := Setup(Options{FilePath: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
