//go:build !windows

package autostart

import "errors"

var errUnsupported = errors.New("start with Windows is only supported on Windows")

// Set fails when asked to enable; disabling is a no-op.
func Set(enabled bool) error {
	if enabled {
		return errUnsupported
	}
	return nil
}

// Enabled is always false.
func Enabled() (bool, error) {
	return false, nil
}
