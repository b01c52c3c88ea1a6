//go:build !windows

package main

import (
	"fmt"
	"runtime"
)

func runApp(bool) error {
	return fmt.Errorf("letszoom needs Windows, not %s", runtime.GOOS)
}
