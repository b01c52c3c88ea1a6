//go:build windows

package main

import (
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"

	"letszoom/internal/winapi"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")
)

// DPI awareness must be set before the first window or DC exists, so the
// capture and overlays work in physical pixels.
func init() {
	ctx := user32.NewProc("SetProcessDpiAwarenessContext")
	if ctx.Find() == nil {
		// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2, then V1.
		if r, _, _ := ctx.Call(^uintptr(3)); r != 0 {
			return
		}
		if r, _, _ := ctx.Call(^uintptr(2)); r != 0 {
			return
		}
	}

	awareness := shcore.NewProc("SetProcessDpiAwareness")
	if awareness.Find() == nil {
		if r, _, _ := awareness.Call(2); r == 0 { // PROCESS_PER_MONITOR_DPI_AWARE
			return
		}
		awareness.Call(1) // PROCESS_SYSTEM_DPI_AWARE
		return
	}

	user32.NewProc("SetProcessDPIAware").Call()
}

// logDPIInfo records the screen metrics the overlays will see.
func logDPIInfo() {
	w, h := winapi.ScreenSize()
	ev := log.Debug().Int("screen_w", w).Int("screen_h", h)

	if p := user32.NewProc("GetDpiForSystem"); p.Find() == nil {
		dpi, _, _ := p.Call()
		ev = ev.Uint64("dpi", uint64(dpi)).Uint64("scale_pct", uint64(dpi*100/96))
	}

	if p := shcore.NewProc("GetProcessDpiAwareness"); p.Find() == nil {
		var awareness uint32
		p.Call(0, uintptr(unsafe.Pointer(&awareness)))
		ev = ev.Uint32("awareness", awareness)
	}

	ev.Msg("display")
}
