package hotkey

import (
	"fmt"
	"strconv"
	"strings"

	"letszoom/internal/config"
)

// Virtual-key codes for the named keys accepted by ParseCombo.
var namedKeys = map[string]uint32{
	"SPACE":    0x20,
	"RETURN":   0x0D,
	"ENTER":    0x0D,
	"ESCAPE":   0x1B,
	"ESC":      0x1B,
	"TAB":      0x09,
	"CAPSLOCK": 0x14,
	"DELETE":   0x2E,
	"DEL":      0x2E,
	"INSERT":   0x2D,
	"HOME":     0x24,
	"END":      0x23,
	"PAGEUP":   0x21,
	"PAGEDOWN": 0x22,
	"UP":       0x26,
	"DOWN":     0x28,
	"LEFT":     0x25,
	"RIGHT":    0x27,
	"PRINT":    0x2C,
}

const vkF1 = 0x70

// ParseCombo parses strings such as "ctrl+alt+1" or "Shift+Win+F5".
// At least one modifier is required.
func ParseCombo(s string) (config.Hotkey, error) {
	var hk config.Hotkey

	parts := strings.Split(strings.TrimSpace(s), "+")
	if len(parts) < 2 {
		return hk, fmt.Errorf("hotkey %q needs at least one modifier and a key", s)
	}

	for _, part := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "ctrl", "control":
			hk.Mod |= config.ModControl
		case "alt":
			hk.Mod |= config.ModAlt
		case "shift":
			hk.Mod |= config.ModShift
		case "win", "super":
			hk.Mod |= config.ModWin
		default:
			return hk, fmt.Errorf("unknown modifier %q", part)
		}
	}

	key, err := parseKey(parts[len(parts)-1])
	if err != nil {
		return hk, err
	}
	hk.Key = key
	return hk, nil
}

func parseKey(key string) (uint32, error) {
	key = strings.ToUpper(strings.TrimSpace(key))

	if len(key) == 1 && (key[0] >= 'A' && key[0] <= 'Z' || key[0] >= '0' && key[0] <= '9') {
		return uint32(key[0]), nil
	}

	var n int
	if _, err := fmt.Sscanf(key, "F%d", &n); err == nil && n >= 1 && n <= 24 && key == fmt.Sprintf("F%d", n) {
		return vkF1 + uint32(n-1), nil
	}

	if vk, ok := namedKeys[key]; ok {
		return vk, nil
	}

	// Raw virtual-key codes, as FormatCombo prints unnamed keys.
	if hex, ok := strings.CutPrefix(key, "0X"); ok && hex != "" {
		vk, err := strconv.ParseUint(hex, 16, 8)
		if err == nil && vk > 0 && vk < 0xFF {
			return uint32(vk), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", key)
}

// FormatCombo renders hk the way ParseCombo reads it.
func FormatCombo(hk config.Hotkey) string {
	var parts []string
	if hk.Mod&config.ModControl != 0 {
		parts = append(parts, "Ctrl")
	}
	if hk.Mod&config.ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if hk.Mod&config.ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if hk.Mod&config.ModWin != 0 {
		parts = append(parts, "Win")
	}
	return strings.Join(append(parts, keyName(hk.Key)), "+")
}

func keyName(vk uint32) string {
	switch {
	case vk >= 'A' && vk <= 'Z', vk >= '0' && vk <= '9':
		return string(rune(vk))
	case vk >= vkF1 && vk < vkF1+24:
		return fmt.Sprintf("F%d", vk-vkF1+1)
	}
	// Prefer the longer alias so ENTER/RETURN style pairs format stably.
	best := ""
	for name, code := range namedKeys {
		if code == vk && (len(name) > len(best) || len(name) == len(best) && name < best) {
			best = name
		}
	}
	if best != "" {
		return best[:1] + strings.ToLower(best[1:])
	}
	return fmt.Sprintf("0x%02X", vk)
}
