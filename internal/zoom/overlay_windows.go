//go:build windows

package zoom

import (
	"fmt"
	"image"
	"strconv"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"

	"letszoom/internal/capture"
	"letszoom/internal/winapi"
)

const (
	className     = "LetsZoomZoomOverlay"
	timerRedraw   = 1
	frameInterval = 16 // ms, about 60 Hz
	crossSize     = 20
	hintText      = "ESC: exit | Wheel: zoom | Drag: move | +/-: zoom | Arrows: pan"
)

var (
	// active receives messages for the overlay window; the window procedure
	// is a plain callback and cannot carry a receiver.
	active *Overlay

	registerOnce sync.Once
	registerErr  error
)

// Overlay is the full-screen magnifier window. Resources exist only while
// it is shown.
type Overlay struct {
	log zerolog.Logger

	hwnd    uintptr
	grabber *capture.Grabber
	frozen  bool // capture is no longer refreshed

	backDC     uintptr
	backBitmap uintptr
	oldBack    uintptr
	font       uintptr

	view   *Viewport
	smooth bool
}

// NewOverlay returns a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{log: log.With().Str("component", "zoom").Logger()}
}

// IsActive reports whether the overlay is shown.
func (o *Overlay) IsActive() bool {
	return o.hwnd != 0
}

// Show covers the primary screen with a magnified live view around the
// cursor. Showing an active overlay does nothing.
func (o *Overlay) Show(level int, smooth bool) error {
	if o.IsActive() {
		return nil
	}

	registerOnce.Do(func() {
		registerErr = winapi.RegisterClass(className, 0, winapi.IDC_CROSS, 0, wndProc)
	})
	if registerErr != nil {
		return registerErr
	}

	if err := o.createResources(); err != nil {
		o.releaseResources()
		return err
	}

	o.view = NewViewport(level)
	o.smooth = smooth
	active = o

	size := o.grabber.Size()
	hwnd, err := winapi.CreateWindow(
		winapi.WS_EX_TOPMOST|winapi.WS_EX_TOOLWIN,
		className, "LetsZoom",
		winapi.WS_POPUP,
		0, 0, size.X, size.Y, 0,
	)
	if err != nil {
		active = nil
		o.view = nil
		o.releaseResources()
		return err
	}
	o.hwnd = hwnd

	// Keep the overlay out of its own screen grabs. Without that the view
	// would magnify itself, so fall back to a still image taken now.
	if ok, _, _ := winapi.ProcSetWindowDisplayAff.Call(hwnd, winapi.WDA_EXCLUDEFROMCAPTURE); ok == 0 {
		o.frozen = true
		if err := o.grabber.Grab(); err != nil {
			o.Hide()
			return err
		}
		o.log.Warn().Msg("display affinity unavailable, showing a still capture")
	}

	winapi.ProcShowWindow.Call(hwnd, winapi.SW_SHOW)
	winapi.ProcSetForegroundWindow.Call(hwnd)
	winapi.ProcSetFocus.Call(hwnd)
	winapi.ProcSetTimer.Call(hwnd, timerRedraw, frameInterval, 0)

	o.log.Debug().Int("level", o.view.Level).Bool("smooth", smooth).Bool("frozen", o.frozen).Msg("shown")
	return nil
}

// Freeze stops refreshing the capture; the view keeps magnifying the last
// frame and still follows pan and zoom input.
func (o *Overlay) Freeze() error {
	if !o.IsActive() || o.frozen {
		return nil
	}
	if err := o.grabber.Grab(); err != nil {
		return err
	}
	o.frozen = true
	o.log.Debug().Msg("frozen")
	return nil
}

// Hide closes the window and frees every resource. Pan and level are
// discarded.
func (o *Overlay) Hide() {
	if !o.IsActive() {
		return
	}

	hwnd := o.hwnd
	winapi.ProcKillTimer.Call(hwnd, timerRedraw)
	if o.view.EndDrag() {
		winapi.ProcReleaseCapture.Call()
	}
	o.hwnd = 0
	winapi.ProcDestroyWindow.Call(hwnd)

	o.releaseResources()
	o.view = nil
	o.frozen = false
	if active == o {
		active = nil
	}
	o.log.Debug().Msg("hidden")
}

func (o *Overlay) createResources() error {
	g, err := capture.NewGrabber()
	if err != nil {
		return err
	}
	o.grabber = g

	size := g.Size()
	o.backDC, _, _ = winapi.ProcCreateCompatibleDC.Call(g.ScreenDC())
	if o.backDC == 0 {
		return fmt.Errorf("%w: back buffer DC", winapi.ErrDeviceContext)
	}
	o.backBitmap, _, _ = winapi.ProcCreateCompatibleBitmap.Call(g.ScreenDC(), uintptr(size.X), uintptr(size.Y))
	if o.backBitmap == 0 {
		return fmt.Errorf("%w: back buffer bitmap %dx%d", winapi.ErrDeviceContext, size.X, size.Y)
	}
	o.oldBack, _, _ = winapi.ProcSelectObject.Call(o.backDC, o.backBitmap)

	face, _ := windows.UTF16PtrFromString("Segoe UI")
	height := int32(-20) // negative: character height in pixels
	o.font, _, _ = winapi.ProcCreateFontW.Call(
		uintptr(height), 0, 0, 0,
		winapi.FW_SEMIBOLD, 0, 0, 0,
		winapi.DEFAULT_CHARSET, winapi.OUT_DEFAULT_PRECIS, 0,
		winapi.CLEARTYPE_QUALITY, 0,
		uintptr(unsafe.Pointer(face)),
	)
	return nil
}

func (o *Overlay) releaseResources() {
	if o.font != 0 {
		winapi.ProcDeleteObject.Call(o.font)
		o.font = 0
	}
	if o.backDC != 0 && o.oldBack != 0 {
		winapi.ProcSelectObject.Call(o.backDC, o.oldBack)
		o.oldBack = 0
	}
	if o.backBitmap != 0 {
		winapi.ProcDeleteObject.Call(o.backBitmap)
		o.backBitmap = 0
	}
	if o.backDC != 0 {
		winapi.ProcDeleteDC.Call(o.backDC)
		o.backDC = 0
	}
	if o.grabber != nil {
		o.grabber.Close()
		o.grabber = nil
	}
}

// paint renders one frame into the back buffer and copies it to hdc.
func (o *Overlay) paint(hdc uintptr) {
	size := o.grabber.Size()

	if !o.frozen {
		if err := o.grabber.Grab(); err != nil {
			o.log.Debug().Err(err).Msg("grab")
		}
	}

	cx, cy := winapi.CursorPos()
	src := o.view.CaptureRect(size, image.Pt(cx, cy))

	mode := uintptr(winapi.COLORONCOLOR)
	if o.smooth {
		mode = winapi.HALFTONE
	}
	oldMode, _, _ := winapi.ProcSetStretchBltMode.Call(o.backDC, mode)
	winapi.ProcSetBrushOrgEx.Call(o.backDC, 0, 0, 0)
	winapi.ProcStretchBlt.Call(
		o.backDC, 0, 0, uintptr(size.X), uintptr(size.Y),
		o.grabber.DC(), uintptr(src.Min.X), uintptr(src.Min.Y), uintptr(src.Dx()), uintptr(src.Dy()),
		winapi.SRCCOPY,
	)
	winapi.ProcSetStretchBltMode.Call(o.backDC, oldMode)

	o.drawCrosshair(size)
	o.drawReadout(size)

	winapi.ProcBitBlt.Call(hdc, 0, 0, uintptr(size.X), uintptr(size.Y), o.backDC, 0, 0, winapi.SRCCOPY)
}

func (o *Overlay) drawCrosshair(size image.Point) {
	pen, _, _ := winapi.ProcCreatePen.Call(winapi.PS_SOLID, 2, winapi.RGB(255, 0, 0))
	old, _, _ := winapi.ProcSelectObject.Call(o.backDC, pen)

	cx, cy := size.X/2, size.Y/2
	line(o.backDC, cx-crossSize, cy, cx+crossSize, cy)
	line(o.backDC, cx, cy-crossSize, cx, cy+crossSize)

	winapi.ProcSelectObject.Call(o.backDC, old)
	winapi.ProcDeleteObject.Call(pen)
}

func line(hdc uintptr, x1, y1, x2, y2 int) {
	winapi.ProcMoveToEx.Call(hdc, uintptr(x1), uintptr(y1), 0)
	winapi.ProcLineTo.Call(hdc, uintptr(x2), uintptr(y2))
}

func (o *Overlay) drawReadout(size image.Point) {
	box := winapi.Rect{Left: 20, Top: 20, Right: 300, Bottom: 60}

	brush, _, _ := winapi.ProcGetStockObject.Call(winapi.BLACK_BRUSH)
	winapi.ProcFillRect.Call(o.backDC, uintptr(unsafe.Pointer(&box)), brush)

	var oldFont uintptr
	if o.font != 0 {
		oldFont, _, _ = winapi.ProcSelectObject.Call(o.backDC, o.font)
	}
	winapi.ProcSetBkMode.Call(o.backDC, winapi.TRANSPARENT)
	winapi.ProcSetTextColor.Call(o.backDC, winapi.RGB(255, 255, 255))

	winapi.DrawText(o.backDC, "Zoom: "+strconv.Itoa(o.view.Level)+"%", &box, winapi.DT_CENTER|winapi.DT_VCENTER|winapi.DT_SINGLELINE)

	hint := winapi.Rect{Left: 20, Top: int32(size.Y - 60), Right: int32(size.X - 20), Bottom: int32(size.Y - 20)}
	winapi.DrawText(o.backDC, hintText, &hint, winapi.DT_CENTER|winapi.DT_VCENTER|winapi.DT_SINGLELINE)

	if oldFont != 0 {
		winapi.ProcSelectObject.Call(o.backDC, oldFont)
	}
}

// handleKey applies a key press and reports whether a redraw is needed.
func (o *Overlay) handleKey(vk uintptr) bool {
	switch vk {
	case winapi.VK_ESCAPE:
		o.Hide()
		return false
	case winapi.VK_ADD, winapi.VK_OEM_PLUS:
		o.view.ZoomIn()
	case winapi.VK_SUBTRACT, winapi.VK_OEM_MINUS:
		o.view.ZoomOut()
	case winapi.VK_LEFT:
		o.view.Pan(-1, 0)
	case winapi.VK_RIGHT:
		o.view.Pan(1, 0)
	case winapi.VK_UP:
		o.view.Pan(0, -1)
	case winapi.VK_DOWN:
		o.view.Pan(0, 1)
	default:
		return false
	}
	return true
}

func wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	o := active
	if o == nil || o.view == nil {
		return winapi.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case winapi.WM_ERASEBKGND:
		return 1

	case winapi.WM_PAINT:
		var ps winapi.PaintStruct
		hdc, _, _ := winapi.ProcBeginPaint.Call(hwnd, uintptr(unsafe.Pointer(&ps)))
		if hdc != 0 {
			o.paint(hdc)
		}
		winapi.ProcEndPaint.Call(hwnd, uintptr(unsafe.Pointer(&ps)))
		return 0

	case winapi.WM_TIMER:
		if wParam == timerRedraw {
			winapi.Invalidate(hwnd)
		}
		return 0

	case winapi.WM_KEYDOWN:
		if o.handleKey(wParam) {
			winapi.Invalidate(hwnd)
		}
		return 0

	case winapi.WM_MOUSEWHEEL:
		o.view.Wheel(winapi.WheelDelta(wParam))
		winapi.Invalidate(hwnd)
		return 0

	case winapi.WM_LBUTTONDOWN:
		x, y := winapi.PointFromLParam(lParam)
		o.view.BeginDrag(image.Pt(x, y))
		winapi.ProcSetCapture.Call(hwnd)
		return 0

	case winapi.WM_MOUSEMOVE:
		x, y := winapi.PointFromLParam(lParam)
		if o.view.DragTo(image.Pt(x, y)) {
			winapi.Invalidate(hwnd)
		}
		return 0

	case winapi.WM_LBUTTONUP:
		if o.view.EndDrag() {
			winapi.ProcReleaseCapture.Call()
		}
		return 0

	case winapi.WM_CAPTURECHANGED:
		o.view.EndDrag()
		return 0
	}

	return winapi.DefWindowProc(hwnd, msg, wParam, lParam)
}
