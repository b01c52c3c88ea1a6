//go:build windows

package winapi

import (
	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
)

// user32
var (
	ProcGetDC               = user32.NewProc("GetDC")
	ProcReleaseDC           = user32.NewProc("ReleaseDC")
	ProcGetSystemMetrics    = user32.NewProc("GetSystemMetrics")
	ProcGetCursorPos        = user32.NewProc("GetCursorPos")
	ProcRegisterClassExW    = user32.NewProc("RegisterClassExW")
	ProcCreateWindowExW     = user32.NewProc("CreateWindowExW")
	ProcDestroyWindow       = user32.NewProc("DestroyWindow")
	ProcShowWindow          = user32.NewProc("ShowWindow")
	ProcUpdateWindow        = user32.NewProc("UpdateWindow")
	ProcSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	ProcSetFocus            = user32.NewProc("SetFocus")
	ProcDefWindowProcW      = user32.NewProc("DefWindowProcW")
	ProcPostQuitMessage     = user32.NewProc("PostQuitMessage")
	ProcPostMessageW        = user32.NewProc("PostMessageW")
	ProcGetMessageW         = user32.NewProc("GetMessageW")
	ProcTranslateMessage    = user32.NewProc("TranslateMessage")
	ProcDispatchMessageW    = user32.NewProc("DispatchMessageW")
	ProcSetCapture          = user32.NewProc("SetCapture")
	ProcReleaseCapture      = user32.NewProc("ReleaseCapture")
	ProcLoadCursorW         = user32.NewProc("LoadCursorW")
	ProcInvalidateRect      = user32.NewProc("InvalidateRect")
	ProcBeginPaint          = user32.NewProc("BeginPaint")
	ProcEndPaint            = user32.NewProc("EndPaint")
	ProcFillRect            = user32.NewProc("FillRect")
	ProcDrawTextW           = user32.NewProc("DrawTextW")
	ProcGetKeyState         = user32.NewProc("GetKeyState")
	ProcSetTimer            = user32.NewProc("SetTimer")
	ProcKillTimer           = user32.NewProc("KillTimer")
	ProcMessageBoxW         = user32.NewProc("MessageBoxW")
	ProcUpdateLayeredWindow = user32.NewProc("UpdateLayeredWindow")
	ProcCreatePopupMenu     = user32.NewProc("CreatePopupMenu")
	ProcAppendMenuW         = user32.NewProc("AppendMenuW")
	ProcTrackPopupMenu      = user32.NewProc("TrackPopupMenu")
	ProcDestroyMenu         = user32.NewProc("DestroyMenu")
	ProcCreateIconFromResEx = user32.NewProc("CreateIconFromResourceEx")
	ProcDestroyIcon         = user32.NewProc("DestroyIcon")
	ProcLoadIconW           = user32.NewProc("LoadIconW")
	ProcSetWindowDisplayAff = user32.NewProc("SetWindowDisplayAffinity")
	ProcRegisterWindowMsgW  = user32.NewProc("RegisterWindowMessageW")
)

// gdi32
var (
	ProcCreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	ProcCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	ProcCreateDIBSection       = gdi32.NewProc("CreateDIBSection")
	ProcSelectObject           = gdi32.NewProc("SelectObject")
	ProcDeleteDC               = gdi32.NewProc("DeleteDC")
	ProcDeleteObject           = gdi32.NewProc("DeleteObject")
	ProcBitBlt                 = gdi32.NewProc("BitBlt")
	ProcStretchBlt             = gdi32.NewProc("StretchBlt")
	ProcSetStretchBltMode      = gdi32.NewProc("SetStretchBltMode")
	ProcSetBrushOrgEx          = gdi32.NewProc("SetBrushOrgEx")
	ProcCreatePen              = gdi32.NewProc("CreatePen")
	ProcCreateSolidBrush       = gdi32.NewProc("CreateSolidBrush")
	ProcGetStockObject         = gdi32.NewProc("GetStockObject")
	ProcMoveToEx               = gdi32.NewProc("MoveToEx")
	ProcLineTo                 = gdi32.NewProc("LineTo")
	ProcRectangle              = gdi32.NewProc("Rectangle")
	ProcSetTextColor           = gdi32.NewProc("SetTextColor")
	ProcSetBkMode              = gdi32.NewProc("SetBkMode")
	ProcCreateFontW            = gdi32.NewProc("CreateFontW")
	ProcAlphaBlend             = windows.NewLazySystemDLL("msimg32.dll").NewProc("AlphaBlend")
)

var (
	ProcGetModuleHandleW  = kernel32.NewProc("GetModuleHandleW")
	ProcOutputDebugString = kernel32.NewProc("OutputDebugStringW")

	ProcShellNotifyIconW = shell32.NewProc("Shell_NotifyIconW")
)
