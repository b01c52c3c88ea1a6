//go:build windows

package app

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"letszoom/internal/annotate"
	"letszoom/internal/autostart"
	"letszoom/internal/config"
	"letszoom/internal/hotkey"
	"letszoom/internal/notify"
	"letszoom/internal/tray"
	"letszoom/internal/winapi"
	"letszoom/internal/zoom"
)

const (
	hostClass = "LetsZoomHost"

	// msgHotkey carries a hotkey.Action in wParam from the listener
	// goroutines to the UI thread.
	msgHotkey = winapi.WM_APP + 2
)

// host owns the hidden top-level window that receives tray callbacks and
// hotkey posts. It is never shown.
type host struct {
	log zerolog.Logger

	hwnd           uintptr
	ctrl           *Controller
	hotkeys        *hotkey.Registrar
	icon           *tray.Icon
	taskbarCreated uint32
	teardown       sync.Once
}

var (
	active       *host
	registerOnce sync.Once
	registerErr  error
)

// Run starts the tray application and blocks until Exit is chosen. It locks
// the calling goroutine to its OS thread, which then owns every window.
func Run(settings *config.Settings, configPath, version string) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h := &host{log: log.With().Str("component", "host").Logger()}

	registerOnce.Do(func() {
		registerErr = winapi.RegisterClass(hostClass, 0, 0, 0, hostWndProc)
	})
	if registerErr != nil {
		return registerErr
	}

	// Set before CreateWindow so messages sent during creation find it.
	active = h
	defer func() { active = nil }()

	hwnd, err := winapi.CreateWindow(0, hostClass, appName, 0, 0, 0, 0, 0, 0)
	if err != nil {
		return err
	}
	h.hwnd = hwnd
	h.taskbarCreated = winapi.RegisterWindowMessage("TaskbarCreated")

	h.icon, err = tray.New(hwnd, func(cmd tray.Command) { h.ctrl.OnMenu(cmd) })
	if err != nil {
		winapi.ProcDestroyWindow.Call(hwnd)
		return fmt.Errorf("start tray: %w", err)
	}

	h.ctrl = NewController(settings, configPath, version, Deps{
		Zoom:     zoom.NewOverlay(),
		Draw:     annotate.NewOverlay(),
		Notifier: notify.New(settings.NotificationStyle, h.icon),
		Dialogs:  messageBoxes{owner: hwnd},
		Quit:     func() { winapi.ProcPostMessageW.Call(hwnd, winapi.WM_CLOSE, 0, 0) },
	})

	h.hotkeys = hotkey.NewRegistrar(func(a hotkey.Action) {
		winapi.ProcPostMessageW.Call(hwnd, msgHotkey, uintptr(a), 0)
	})
	for _, a := range hotkey.Actions() {
		h.hotkeys.Handle(a, func() { h.ctrl.OnHotkey(a) })
	}
	if err := h.hotkeys.Register(hotkey.Bindings(settings)); err != nil {
		h.ctrl.HotkeysFailed(err)
	}

	if on, err := autostart.Enabled(); err != nil || on != settings.StartWithWindows {
		if err := autostart.Set(settings.StartWithWindows); err != nil {
			h.log.Warn().Err(err).Bool("enabled", settings.StartWithWindows).Msg("update autostart")
		}
	}

	h.log.Info().Str("config", configPath).Msg("running")
	h.ctrl.Started()

	winapi.RunMessageLoop()

	h.shutdown()
	h.log.Info().Msg("stopped")
	return nil
}

// shutdown stops the hotkeys, saves settings and removes the tray icon
// while the window still exists.
func (h *host) shutdown() {
	h.teardown.Do(func() {
		h.hotkeys.Unregister()
		h.ctrl.Shutdown()
		h.icon.Remove()
	})
}

func (h *host) wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	switch {
	case msg == msgHotkey:
		h.hotkeys.Dispatch(uint32(wParam))
		return 0

	case msg == tray.CallbackMessage:
		if h.icon != nil {
			h.icon.HandleMessage(lParam)
		}
		return 0

	case h.taskbarCreated != 0 && msg == uintptr(h.taskbarCreated):
		if h.icon != nil {
			h.icon.Readd()
		}
		return 0

	case msg == winapi.WM_CLOSE:
		if h.ctrl != nil {
			h.shutdown()
		}
		winapi.ProcDestroyWindow.Call(hwnd)
		return 0

	case msg == winapi.WM_DESTROY:
		winapi.ProcPostQuitMessage.Call(0)
		return 0
	}
	return winapi.DefWindowProc(hwnd, msg, wParam, lParam)
}

func hostWndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	if h := active; h != nil {
		return h.wndProc(hwnd, msg, wParam, lParam)
	}
	return winapi.DefWindowProc(hwnd, msg, wParam, lParam)
}
