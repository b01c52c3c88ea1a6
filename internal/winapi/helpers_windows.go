//go:build windows

package winapi

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	// ErrClassRegistration implies RegisterClassExW failed for a reason other
	// than the class already existing.
	ErrClassRegistration = errors.New("window class registration failed")

	// ErrWindowCreation implies CreateWindowExW returned a null handle.
	ErrWindowCreation = errors.New("window creation failed")

	// ErrDeviceContext implies a DC or bitmap could not be created.
	ErrDeviceContext = errors.New("device context or bitmap creation failed")
)

const errorClassAlreadyExists = 1410

// ModuleHandle returns the HINSTANCE of the running executable.
func ModuleHandle() uintptr {
	h, _, _ := ProcGetModuleHandleW.Call(0)
	return h
}

// RegisterClass registers a window class with the given procedure. An
// already registered class is not an error.
func RegisterClass(name string, style uint32, cursor uintptr, background uintptr, proc func(hwnd, msg, wParam, lParam uintptr) uintptr) error {
	className, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	var wc WndClassEx
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.Style = style
	wc.LpfnWndProc = syscall.NewCallback(proc)
	wc.HInstance = ModuleHandle()
	if cursor != 0 {
		wc.HCursor, _, _ = ProcLoadCursorW.Call(0, cursor)
	}
	wc.HbrBackground = background
	wc.LpszClassName = className

	r, _, callErr := ProcRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if r == 0 {
		if errno, ok := callErr.(syscall.Errno); ok && errno == errorClassAlreadyExists {
			return nil
		}
		return fmt.Errorf("%w: %s: %v", ErrClassRegistration, name, callErr)
	}
	return nil
}

// CreateWindow wraps CreateWindowExW for class-named windows without menus.
func CreateWindow(exStyle uint32, class, title string, style uint32, x, y, w, h int, parent uintptr) (uintptr, error) {
	className, _ := windows.UTF16PtrFromString(class)
	windowName, _ := windows.UTF16PtrFromString(title)
	hwnd, _, callErr := ProcCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowName)),
		uintptr(style),
		uintptr(x), uintptr(y), uintptr(w), uintptr(h),
		parent, 0, ModuleHandle(), 0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("%w: %s: %v", ErrWindowCreation, class, callErr)
	}
	return hwnd, nil
}

// DefWindowProc forwards to DefWindowProcW.
func DefWindowProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	ret, _, _ := ProcDefWindowProcW.Call(hwnd, msg, wParam, lParam)
	return ret
}

// Invalidate marks the whole client area dirty without erasing it.
func Invalidate(hwnd uintptr) {
	if hwnd != 0 {
		ProcInvalidateRect.Call(hwnd, 0, 0)
	}
}

// ScreenSize returns the primary monitor size in pixels.
// GetSystemMetrics returns an int32, so the result is sign extended.
func ScreenSize() (int, int) {
	w, _, _ := ProcGetSystemMetrics.Call(SM_CXSCREEN)
	h, _, _ := ProcGetSystemMetrics.Call(SM_CYSCREEN)
	return int(int32(w)), int(int32(h))
}

// CursorPos returns the cursor position in screen coordinates.
func CursorPos() (int, int) {
	var pt Point
	ProcGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	return int(pt.X), int(pt.Y)
}

// PointFromLParam unpacks the signed client coordinates of a mouse message.
func PointFromLParam(lParam uintptr) (int, int) {
	x := int(int16(lParam & 0xFFFF))
	y := int(int16((lParam >> 16) & 0xFFFF))
	return x, y
}

// WheelDelta extracts GET_WHEEL_DELTA_WPARAM.
func WheelDelta(wParam uintptr) int {
	return int(int16((wParam >> 16) & 0xFFFF))
}

// KeyDown reports whether a virtual key is currently held.
func KeyDown(vk int) bool {
	state, _, _ := ProcGetKeyState.Call(uintptr(vk))
	return int16(state) < 0
}

// MessageBox shows a blocking message box and returns the pressed button.
func MessageBox(hwnd uintptr, text, caption string, flags uint32) int {
	t, _ := windows.UTF16PtrFromString(text)
	c, _ := windows.UTF16PtrFromString(caption)
	r, _, _ := ProcMessageBoxW.Call(hwnd, uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(c)), uintptr(flags))
	return int(r)
}

// RGB builds a GDI COLORREF.
func RGB(r, g, b byte) uintptr {
	return uintptr(r) | uintptr(g)<<8 | uintptr(b)<<16
}

// DrawText draws a single centered line of text into rc.
func DrawText(hdc uintptr, text string, rc *Rect, format uint32) {
	s, err := windows.UTF16FromString(text)
	if err != nil || len(s) <= 1 {
		return
	}
	ProcDrawTextW.Call(hdc, uintptr(unsafe.Pointer(&s[0])), uintptr(len(s)-1), uintptr(unsafe.Pointer(rc)), uintptr(format))
}

// RunMessageLoop pumps messages for the calling thread until WM_QUIT.
func RunMessageLoop() {
	var m Msg
	for {
		ret, _, _ := ProcGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if ret == 0 || ret == ^uintptr(0) {
			return
		}
		ProcTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		ProcDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// CopyUTF16 copies s into a fixed-size WCHAR field, truncating so the
// terminating NUL always fits.
func CopyUTF16(dst []uint16, s string) {
	if len(dst) == 0 {
		return
	}
	u, err := windows.UTF16FromString(s)
	if err != nil {
		u = []uint16{0}
	}
	n := copy(dst[:len(dst)-1], u)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// RegisterWindowMessage returns the id of a named system-wide message.
func RegisterWindowMessage(name string) uint32 {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0
	}
	id, _, _ := ProcRegisterWindowMsgW.Call(uintptr(unsafe.Pointer(p)))
	return uint32(id)
}
