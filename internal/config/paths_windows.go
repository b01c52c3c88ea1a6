//go:build windows

package config

import "golang.org/x/sys/windows"

func picturesDir() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_Pictures, 0)
}
