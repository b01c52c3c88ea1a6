// Package app wires the overlays, hotkeys and tray icon together.
package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"letszoom/internal/config"
	"letszoom/internal/hotkey"
	"letszoom/internal/notify"
	"letszoom/internal/tray"
)

const appName = "LetsZoom"

// ZoomOverlay is the magnifier window.
type ZoomOverlay interface {
	Show(level int, smooth bool) error
	// Freeze stops live capture and keeps magnifying the last frame.
	Freeze() error
	Hide()
	IsActive() bool
}

// DrawOverlay is the annotation window.
type DrawOverlay interface {
	Show(color uint32, width, opacity int) error
	Hide()
	Clear()
	IsActive() bool
}

// Dialogs shows blocking message boxes.
type Dialogs interface {
	Info(title, text string)
	Warning(title, text string)
	Error(title, text string)
}

// Deps are the components a Controller drives.
type Deps struct {
	Zoom     ZoomOverlay
	Draw     DrawOverlay
	Notifier notify.Notifier
	Dialogs  Dialogs
	// Quit asks the message loop to end.
	Quit func()
}

// Controller reacts to hotkeys and menu commands. All methods run on the UI
// thread.
type Controller struct {
	log zerolog.Logger

	settings   *config.Settings
	configPath string
	version    string
	deps       Deps
}

// NewController creates a controller over settings, which it saves to
// configPath on shutdown.
func NewController(settings *config.Settings, configPath, version string, deps Deps) *Controller {
	if deps.Notifier == nil {
		deps.Notifier = notify.Nop{}
	}
	if deps.Quit == nil {
		deps.Quit = func() {}
	}
	return &Controller{
		log:        log.With().Str("component", "app").Logger(),
		settings:   settings,
		configPath: configPath,
		version:    version,
		deps:       deps,
	}
}

// Settings returns the live settings.
func (c *Controller) Settings() *config.Settings {
	return c.settings
}

// OnHotkey runs the action bound to a global hotkey.
func (c *Controller) OnHotkey(a hotkey.Action) {
	c.log.Debug().Stringer("action", a).Msg("hotkey")

	switch a {
	case hotkey.ActionZoom:
		c.toggleZoom()
	case hotkey.ActionDraw:
		c.toggleDraw()
	case hotkey.ActionZoomDraw:
		c.toggleZoomDraw()
	case hotkey.ActionScreenshot:
		c.notify("Screenshot capture is not available yet.")
	default:
		c.log.Debug().Uint32("id", uint32(a)).Msg("unknown action")
	}
}

func (c *Controller) toggleZoom() {
	if c.deps.Zoom.IsActive() {
		c.deps.Zoom.Hide()
		return
	}
	c.showZoom()
}

func (c *Controller) showZoom() bool {
	s := c.settings
	if err := c.deps.Zoom.Show(s.ZoomLevel, s.SmoothZoom); err != nil {
		c.fail("Zoom", "Could not start zoom mode", err)
		return false
	}
	return true
}

func (c *Controller) toggleDraw() {
	if c.deps.Draw.IsActive() {
		c.deps.Draw.Hide()
		return
	}
	if c.deps.Zoom.IsActive() {
		c.freezeZoom()
	}
	c.showDraw()
}

func (c *Controller) showDraw() bool {
	s := c.settings
	if err := c.deps.Draw.Show(s.PenColor, s.PenWidth, s.PenOpacity); err != nil {
		c.fail("Draw", "Could not start drawing mode", err)
		return false
	}
	return true
}

// freezeZoom keeps ink from being captured into the magnified view.
func (c *Controller) freezeZoom() {
	if err := c.deps.Zoom.Freeze(); err != nil {
		c.log.Warn().Err(err).Msg("freeze zoom")
	}
}

// toggleZoomDraw shows zoom with drawing on top, or hides both when either
// is up.
func (c *Controller) toggleZoomDraw() {
	if c.deps.Zoom.IsActive() || c.deps.Draw.IsActive() {
		c.deps.Draw.Hide()
		c.deps.Zoom.Hide()
		return
	}
	if !c.showZoom() {
		return
	}
	c.freezeZoom()
	if !c.showDraw() {
		c.deps.Zoom.Hide()
	}
}

// OnMenu runs a tray menu command.
func (c *Controller) OnMenu(cmd tray.Command) {
	c.log.Debug().Stringer("command", cmd).Msg("menu")

	switch cmd {
	case tray.CommandAbout:
		c.deps.Dialogs.Info("About "+appName, c.aboutText())
	case tray.CommandSettings:
		c.deps.Dialogs.Info(appName, c.settingsText())
	case tray.CommandExit:
		c.deps.Quit()
	}
}

func (c *Controller) aboutText() string {
	s := c.settings
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", appName, c.version)
	b.WriteString("Screen zoom and annotation tool.\n\n")
	fmt.Fprintf(&b, "Zoom:\t\t%s\n", hotkey.FormatCombo(s.ZoomHotkey))
	fmt.Fprintf(&b, "Draw:\t\t%s\n", hotkey.FormatCombo(s.DrawHotkey))
	fmt.Fprintf(&b, "Zoom + Draw:\t%s\n", hotkey.FormatCombo(s.ZoomDrawHotkey))
	fmt.Fprintf(&b, "Screenshot:\t%s", hotkey.FormatCombo(s.ScreenshotHotkey))
	return b.String()
}

func (c *Controller) settingsText() string {
	return fmt.Sprintf("The settings window is not available yet.\n\nEdit %s and restart %s to change settings.", c.configPath, appName)
}

// Started announces that the app is running in the tray.
func (c *Controller) Started() {
	c.notify(fmt.Sprintf("Running in the tray. Press %s to zoom.", hotkey.FormatCombo(c.settings.ZoomHotkey)))
}

// HotkeysFailed reports a registration failure once.
func (c *Controller) HotkeysFailed(err error) {
	c.log.Warn().Err(err).Msg("hotkeys unavailable")
	c.deps.Dialogs.Warning(appName, "Some hotkeys could not be registered.\nAnother program may already be using them.\n\n"+unwrapAll(err))
}

// Shutdown hides both overlays and saves the settings. Failures are only
// logged.
func (c *Controller) Shutdown() {
	c.deps.Draw.Hide()
	c.deps.Zoom.Hide()

	if c.configPath == "" {
		return
	}
	if err := c.settings.Save(c.configPath); err != nil {
		c.log.Error().Err(err).Str("path", c.configPath).Msg("save settings")
		return
	}
	c.log.Debug().Str("path", c.configPath).Msg("settings saved")
}

func (c *Controller) notify(message string) {
	if !c.settings.ShowNotifications {
		c.log.Debug().Str("message", message).Msg("notification suppressed")
		return
	}
	if err := c.deps.Notifier.Show(appName, message); err != nil {
		c.log.Debug().Err(err).Msg("notification failed")
	}
}

func (c *Controller) fail(title, what string, err error) {
	c.log.Error().Err(err).Msg(what)
	c.deps.Dialogs.Error(appName+" - "+title, what+".\n\n"+err.Error())
}

// unwrapAll renders the leaves of a joined error one per line.
func unwrapAll(err error) string {
	var leaves []string
	var walk func(error)
	walk = func(e error) {
		if j, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range j.Unwrap() {
				walk(inner)
			}
			return
		}
		leaves = append(leaves, e.Error())
	}
	walk(err)
	return strings.Join(leaves, "\n")
}
