//go:build !windows

package hotkey

import (
	"errors"

	"letszoom/internal/config"
)

var errUnsupported = errors.New("global hotkeys are only supported on Windows")

type unsupportedHandle struct{}

func newOSHandle(config.Hotkey) handle { return unsupportedHandle{} }

func (unsupportedHandle) Register() error   { return errUnsupported }
func (unsupportedHandle) Unregister() error { return nil }

func (unsupportedHandle) Listen(stop <-chan struct{}, _ func()) { <-stop }
