//go:build windows

package logging

import (
	"io"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"

	"letszoom/internal/winapi"
)

// debugStringWriter sends each entry to OutputDebugStringW, visible in a
// debugger or DebugView.
type debugStringWriter struct{}

func traceWriter() io.Writer { return debugStringWriter{} }

func (debugStringWriter) Write(p []byte) (int, error) {
	s := "[LetsZoom] " + strings.ReplaceAll(string(p), "\x00", "")
	ptr, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return 0, err
	}
	winapi.ProcOutputDebugString.Call(uintptr(unsafe.Pointer(ptr)))
	return len(p), nil
}
