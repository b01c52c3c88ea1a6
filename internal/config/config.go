package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/ini.v1"
)

// INI section names.
const (
	SectionHotkeys    = "Hotkeys"
	SectionZoom       = "Zoom"
	SectionDraw       = "Draw"
	SectionScreenshot = "Screenshot"
	SectionGeneral    = "General"
)

// Win32 RegisterHotKey modifier bits.
const (
	ModAlt     uint32 = 0x0001
	ModControl uint32 = 0x0002
	ModShift   uint32 = 0x0004
	ModWin     uint32 = 0x0008
)

// Limits enforced by Validate.
const (
	MinZoomLevel = 100
	MaxZoomLevel = 2000
	MinPenWidth  = 1
	MaxPenWidth  = 20
	MaxOpacity   = 255
)

// Screenshot formats.
const (
	FormatPNG = iota
	FormatJPG
	FormatBMP
)

// Notification styles.
const (
	NotifyBalloon = "balloon"
	NotifyToast   = "toast"
)

const appDirName = "LetsZoom"

// Hotkey is one global key combination: a MOD_* mask and a virtual-key code.
type Hotkey struct {
	Mod uint32
	Key uint32
}

// Settings is the flat user configuration persisted to config.ini.
type Settings struct {
	ZoomHotkey       Hotkey
	DrawHotkey       Hotkey
	ZoomDrawHotkey   Hotkey
	ScreenshotHotkey Hotkey

	ZoomLevel  int  // percent, 100-2000
	SmoothZoom bool // HALFTONE stretching

	PenColor   uint32 // COLORREF 0x00BBGGRR
	PenWidth   int    // 1-20 px
	PenOpacity int    // 0-255

	ScreenshotPath   string
	ScreenshotFormat int

	StartWithWindows  bool
	ShowNotifications bool
	NotificationStyle string
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		ZoomHotkey:       Hotkey{Mod: ModControl | ModAlt, Key: '1'},
		DrawHotkey:       Hotkey{Mod: ModControl | ModAlt, Key: '2'},
		ZoomDrawHotkey:   Hotkey{Mod: ModControl | ModAlt, Key: '3'},
		ScreenshotHotkey: Hotkey{Mod: ModControl | ModAlt, Key: '4'},

		ZoomLevel:  200,
		SmoothZoom: true,

		PenColor:   RGB(255, 0, 0),
		PenWidth:   3,
		PenOpacity: 255,

		ScreenshotPath:   DefaultScreenshotPath(),
		ScreenshotFormat: FormatPNG,

		StartWithWindows:  false,
		ShowNotifications: true,
		NotificationStyle: NotifyBalloon,
	}
}

// DefaultScreenshotPath is <Pictures>\LetsZoom, or C:\Screenshots when the
// pictures folder cannot be resolved.
func DefaultScreenshotPath() string {
	pictures, err := picturesDir()
	if err != nil || pictures == "" {
		return `C:\Screenshots`
	}
	return filepath.Join(pictures, appDirName)
}

// GetConfigPath returns %APPDATA%\LetsZoom\config.ini, creating the
// directory if needed.
func GetConfigPath() (string, error) {
	var configDir string

	if runtime.GOOS == "windows" {
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve config dir: %w", err)
			}
			configDir = filepath.Join(homeDir, "AppData", "Roaming")
		}
	} else {
		var err error
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
	}

	dir := filepath.Join(configDir, appDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return filepath.Join(dir, "config.ini"), nil
}

// Load reads path over s. Missing or malformed keys keep their defaults and a
// missing file leaves s at defaults; both count as a successful load.
func (s *Settings) Load(path string) error {
	*s = *Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	hk := f.Section(SectionHotkeys)
	readHotkey(hk, "Zoom", &s.ZoomHotkey)
	readHotkey(hk, "Draw", &s.DrawHotkey)
	readHotkey(hk, "ZoomDraw", &s.ZoomDrawHotkey)
	readHotkey(hk, "Screenshot", &s.ScreenshotHotkey)

	zoom := f.Section(SectionZoom)
	s.ZoomLevel = zoom.Key("ZoomLevel").MustInt(s.ZoomLevel)
	s.SmoothZoom = zoom.Key("SmoothZoom").MustInt(boolToInt(s.SmoothZoom)) != 0

	draw := f.Section(SectionDraw)
	s.PenColor = uint32(draw.Key("PenColor").MustUint(uint(s.PenColor)))
	s.PenWidth = draw.Key("PenWidth").MustInt(s.PenWidth)
	s.PenOpacity = draw.Key("PenOpacity").MustInt(s.PenOpacity)

	shot := f.Section(SectionScreenshot)
	if p := shot.Key("Path").String(); p != "" {
		s.ScreenshotPath = p
	}
	s.ScreenshotFormat = shot.Key("Format").MustInt(s.ScreenshotFormat)

	general := f.Section(SectionGeneral)
	s.StartWithWindows = general.Key("StartWithWindows").MustInt(boolToInt(s.StartWithWindows)) != 0
	s.ShowNotifications = general.Key("ShowNotifications").MustInt(boolToInt(s.ShowNotifications)) != 0
	s.NotificationStyle = general.Key("NotificationStyle").In(s.NotificationStyle, []string{NotifyBalloon, NotifyToast})

	s.Validate()
	return nil
}

func readHotkey(sec *ini.Section, name string, hk *Hotkey) {
	hk.Mod = uint32(sec.Key(name + "Mod").MustUint(uint(hk.Mod)))
	hk.Key = uint32(sec.Key(name + "Key").MustUint(uint(hk.Key)))
}

// Save writes every field to path, replacing the file.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f := ini.Empty()

	hk := f.Section(SectionHotkeys)
	writeHotkey(hk, "Zoom", s.ZoomHotkey)
	writeHotkey(hk, "Draw", s.DrawHotkey)
	writeHotkey(hk, "ZoomDraw", s.ZoomDrawHotkey)
	writeHotkey(hk, "Screenshot", s.ScreenshotHotkey)

	zoom := f.Section(SectionZoom)
	zoom.Key("ZoomLevel").SetValue(strconv.Itoa(s.ZoomLevel))
	zoom.Key("SmoothZoom").SetValue(strconv.Itoa(boolToInt(s.SmoothZoom)))

	draw := f.Section(SectionDraw)
	draw.Key("PenColor").SetValue(utoa(s.PenColor))
	draw.Key("PenWidth").SetValue(strconv.Itoa(s.PenWidth))
	draw.Key("PenOpacity").SetValue(strconv.Itoa(s.PenOpacity))

	shot := f.Section(SectionScreenshot)
	shot.Key("Path").SetValue(s.ScreenshotPath)
	shot.Key("Format").SetValue(strconv.Itoa(s.ScreenshotFormat))

	general := f.Section(SectionGeneral)
	general.Key("StartWithWindows").SetValue(strconv.Itoa(boolToInt(s.StartWithWindows)))
	general.Key("ShowNotifications").SetValue(strconv.Itoa(boolToInt(s.ShowNotifications)))
	general.Key("NotificationStyle").SetValue(s.NotificationStyle)

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeHotkey(sec *ini.Section, name string, hk Hotkey) {
	sec.Key(name + "Mod").SetValue(utoa(hk.Mod))
	sec.Key(name + "Key").SetValue(utoa(hk.Key))
}

// Validate resets out-of-range values to their defaults.
func (s *Settings) Validate() {
	defaults := Default()

	if s.ZoomLevel < MinZoomLevel || s.ZoomLevel > MaxZoomLevel {
		s.ZoomLevel = defaults.ZoomLevel
	}
	if s.PenWidth < MinPenWidth || s.PenWidth > MaxPenWidth {
		s.PenWidth = defaults.PenWidth
	}
	if s.PenOpacity < 0 || s.PenOpacity > MaxOpacity {
		s.PenOpacity = defaults.PenOpacity
	}
	if s.PenColor > 0x00FFFFFF {
		s.PenColor = defaults.PenColor
	}
	if s.ScreenshotFormat < FormatPNG || s.ScreenshotFormat > FormatBMP {
		s.ScreenshotFormat = defaults.ScreenshotFormat
	}

	for _, pair := range []struct {
		hk  *Hotkey
		def Hotkey
	}{
		{&s.ZoomHotkey, defaults.ZoomHotkey},
		{&s.DrawHotkey, defaults.DrawHotkey},
		{&s.ZoomDrawHotkey, defaults.ZoomDrawHotkey},
		{&s.ScreenshotHotkey, defaults.ScreenshotHotkey},
	} {
		if pair.hk.Key == 0 || pair.hk.Key > 0xFE || pair.hk.Mod&^(ModAlt|ModControl|ModShift|ModWin) != 0 {
			*pair.hk = pair.def
		}
	}
}

// NRGBA combines a COLORREF with an opacity, clamped to 0-255.
func NRGBA(colorRef uint32, opacity int) color.NRGBA {
	opacity = max(0, min(opacity, MaxOpacity))
	r, g, b := SplitRGB(colorRef)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity)}
}

// RGB builds a COLORREF.
func RGB(r, g, b uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16
}

// SplitRGB unpacks a COLORREF.
func SplitRGB(c uint32) (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func utoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
