//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"letszoom/internal/config"
)

type osHandle struct {
	hk *hotkey.Hotkey
}

func newOSHandle(c config.Hotkey) handle {
	var mods []hotkey.Modifier
	if c.Mod&config.ModControl != 0 {
		mods = append(mods, hotkey.ModCtrl)
	}
	if c.Mod&config.ModAlt != 0 {
		mods = append(mods, hotkey.ModAlt)
	}
	if c.Mod&config.ModShift != 0 {
		mods = append(mods, hotkey.ModShift)
	}
	if c.Mod&config.ModWin != 0 {
		mods = append(mods, hotkey.ModWin)
	}
	return &osHandle{hk: hotkey.New(mods, hotkey.Key(c.Key))}
}

func (h *osHandle) Register() error   { return h.hk.Register() }
func (h *osHandle) Unregister() error { return h.hk.Unregister() }

func (h *osHandle) Listen(stop <-chan struct{}, fire func()) {
	keydown := h.hk.Keydown()
	for {
		select {
		case <-stop:
			return
		case <-keydown:
			fire()
		}
	}
}
