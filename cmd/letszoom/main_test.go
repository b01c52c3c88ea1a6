package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letszoom/internal/config"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPDATA", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigPathPrintsLocation(t *testing.T) {
	dir := isolateConfig(t)

	out, err := execute(t, "config-path")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, "config.ini", filepath.Base(path))
	assert.True(t, strings.HasPrefix(path, dir))
}

func TestSetHotkeySavesBinding(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "set-hotkey", "zoom", "ctrl+shift+z")
	require.NoError(t, err)
	assert.Contains(t, out, "zoom hotkey set to Ctrl+Shift+Z")

	path, err := config.GetConfigPath()
	require.NoError(t, err)
	var s config.Settings
	require.NoError(t, s.Load(path))

	assert.Equal(t, config.Hotkey{Mod: config.ModControl | config.ModShift, Key: 'Z'}, s.ZoomHotkey)
	assert.Equal(t, config.Default().DrawHotkey, s.DrawHotkey)
}

func TestSetHotkeyRejectsBadInput(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "set-hotkey", "teleport", "ctrl+alt+t")
	assert.Error(t, err)

	_, err = execute(t, "set-hotkey", "zoom", "ctrl+alt+nope")
	assert.Error(t, err)

	_, err = execute(t, "set-hotkey", "zoom")
	assert.Error(t, err)
}
