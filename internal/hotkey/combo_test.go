package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letszoom/internal/config"
)

func TestParseCombo(t *testing.T) {
	tests := []struct {
		in   string
		want config.Hotkey
	}{
		{"ctrl+alt+1", config.Hotkey{Mod: config.ModControl | config.ModAlt, Key: '1'}},
		{"Shift + Win + F5", config.Hotkey{Mod: config.ModShift | config.ModWin, Key: 0x74}},
		{"control+z", config.Hotkey{Mod: config.ModControl, Key: 'Z'}},
		{"alt+space", config.Hotkey{Mod: config.ModAlt, Key: 0x20}},
		{"ctrl+F24", config.Hotkey{Mod: config.ModControl, Key: 0x87}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCombo(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseComboErrors(t *testing.T) {
	for _, in := range []string{"", "1", "ctrl+", "hyper+1", "ctrl+F25", "ctrl+F01", "ctrl+??"} {
		_, err := ParseCombo(in)
		assert.Error(t, err, in)
	}
}

func TestFormatCombo(t *testing.T) {
	assert.Equal(t, "Ctrl+Alt+1", FormatCombo(config.Default().ZoomHotkey))
	assert.Equal(t, "Shift+Win+F12", FormatCombo(config.Hotkey{Mod: config.ModShift | config.ModWin, Key: 0x7B}))
	assert.Equal(t, "Alt+Escape", FormatCombo(config.Hotkey{Mod: config.ModAlt, Key: 0x1B}))
	assert.Equal(t, "Ctrl+0xFE", FormatCombo(config.Hotkey{Mod: config.ModControl, Key: 0xFE}))
}

func TestRawKeyCodesRoundTrip(t *testing.T) {
	for _, hk := range []config.Hotkey{
		{Mod: config.ModControl | config.ModAlt, Key: 0xBB},
		{Mod: config.ModShift, Key: 0xFE},
		{Mod: config.ModWin, Key: 0x01},
	} {
		got, err := ParseCombo(FormatCombo(hk))
		require.NoError(t, err, FormatCombo(hk))
		assert.Equal(t, hk, got)
	}

	for _, in := range []string{"ctrl+0x", "ctrl+0x00", "ctrl+0xFF", "ctrl+0x100", "ctrl+0xZZ"} {
		_, err := ParseCombo(in)
		assert.Error(t, err, in)
	}
}

func TestFormatParseAgree(t *testing.T) {
	for _, b := range Bindings(config.Default()) {
		got, err := ParseCombo(FormatCombo(b.Hotkey))
		require.NoError(t, err)
		assert.Equal(t, b.Hotkey, got)
	}
}
