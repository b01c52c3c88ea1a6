//go:build windows

package winapi

import (
	"golang.org/x/sys/windows"
)

const (
	WS_POPUP      = 0x80000000
	WS_EX_TOPMOST = 0x00000008
	WS_EX_TOOLWIN = 0x00000080
	WS_EX_LAYERED = 0x00080000

	CS_HREDRAW = 0x0002
	CS_VREDRAW = 0x0001
	CS_DBLCLKS = 0x0008

	SW_SHOW = 5

	// HWND_MESSAGE as a parent makes a message-only window.
	HWND_MESSAGE = ^uintptr(2) // (HWND)-3

	WM_NULL           = 0x0000
	WM_CREATE         = 0x0001
	WM_DESTROY        = 0x0002
	WM_PAINT          = 0x000F
	WM_CLOSE          = 0x0010
	WM_QUIT           = 0x0012
	WM_ERASEBKGND     = 0x0014
	WM_CONTEXTMENU    = 0x007B
	WM_KEYDOWN        = 0x0100
	WM_COMMAND        = 0x0111
	WM_TIMER          = 0x0113
	WM_MOUSEMOVE      = 0x0200
	WM_LBUTTONDOWN    = 0x0201
	WM_LBUTTONUP      = 0x0202
	WM_LBUTTONDBLCLK  = 0x0203
	WM_RBUTTONUP      = 0x0205
	WM_MOUSEWHEEL     = 0x020A
	WM_CAPTURECHANGED = 0x0215
	WM_USER           = 0x0400
	WM_APP            = 0x8000

	VK_ESCAPE    = 0x1B
	VK_LEFT      = 0x25
	VK_UP        = 0x26
	VK_RIGHT     = 0x27
	VK_DOWN      = 0x28
	VK_SHIFT     = 0x10
	VK_CONTROL   = 0x11
	VK_ADD       = 0x6B
	VK_SUBTRACT  = 0x6D
	VK_OEM_PLUS  = 0xBB
	VK_OEM_MINUS = 0xBD

	IDC_ARROW       = 32512
	IDC_CROSS       = 32515
	IDI_APPLICATION = 32512

	SM_CXSCREEN = 0
	SM_CYSCREEN = 1

	SRCCOPY        = 0x00CC0020
	BI_RGB         = 0
	DIB_RGB_COLORS = 0

	HALFTONE     = 4
	COLORONCOLOR = 3

	PS_SOLID    = 0
	PS_NULL     = 5
	BLACK_BRUSH = 4
	TRANSPARENT = 1

	DT_CENTER     = 0x0001
	DT_VCENTER    = 0x0004
	DT_SINGLELINE = 0x0020

	ULW_ALPHA    = 0x00000002
	AC_SRC_OVER  = 0x00
	AC_SRC_ALPHA = 0x01

	MB_OK              = 0x00000000
	MB_ICONERROR       = 0x00000010
	MB_ICONWARNING     = 0x00000030
	MB_ICONINFORMATION = 0x00000040
	MB_SETFOREGROUND   = 0x00010000
	MB_TOPMOST         = 0x00040000

	MF_STRING    = 0x0000
	MF_SEPARATOR = 0x0800

	TPM_LEFTALIGN   = 0x0000
	TPM_BOTTOMALIGN = 0x0020
	TPM_NONOTIFY    = 0x0080
	TPM_RETURNCMD   = 0x0100

	NIM_ADD     = 0x00000000
	NIM_MODIFY  = 0x00000001
	NIM_DELETE  = 0x00000002
	NIF_MESSAGE = 0x00000001
	NIF_ICON    = 0x00000002
	NIF_TIP     = 0x00000004
	NIF_INFO    = 0x00000010
	NIIF_INFO   = 0x00000001

	LR_DEFAULTCOLOR = 0x00000000

	// WDA_EXCLUDEFROMCAPTURE hides a window from BitBlt of the screen DC
	// (Windows 10 2004 and later).
	WDA_EXCLUDEFROMCAPTURE = 0x00000011

	FW_SEMIBOLD        = 600
	DEFAULT_CHARSET    = 1
	CLEARTYPE_QUALITY  = 5
	OUT_DEFAULT_PRECIS = 0
)

type WndClassEx struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     uintptr
	HIcon         uintptr
	HCursor       uintptr
	HbrBackground uintptr
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       uintptr
}

type Point struct {
	X int32
	Y int32
}

type Size struct {
	CX int32
	CY int32
}

type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type Msg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
}

type PaintStruct struct {
	Hdc         uintptr
	FErase      int32
	RcPaint     Rect
	FRestore    int32
	FIncUpdate  int32
	RgbReserved [32]byte
}

type BitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

type BitmapInfo struct {
	BmiHeader BitmapInfoHeader
	BmiColors [1]uint32
}

type BlendFunction struct {
	BlendOp             byte
	BlendFlags          byte
	SourceConstantAlpha byte
	AlphaFormat         byte
}

// NotifyIconData is NOTIFYICONDATAW (Vista+ layout).
type NotifyIconData struct {
	CbSize           uint32
	HWnd             uintptr
	UID              uint32
	UFlags           uint32
	UCallbackMessage uint32
	HIcon            uintptr
	SzTip            [128]uint16
	DwState          uint32
	DwStateMask      uint32
	SzInfo           [256]uint16
	UTimeout         uint32
	SzInfoTitle      [64]uint16
	DwInfoFlags      uint32
	GuidItem         windows.GUID
	HBalloonIcon     uintptr
}
