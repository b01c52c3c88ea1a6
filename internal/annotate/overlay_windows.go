//go:build windows

package annotate

import (
	"fmt"
	"image"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"letszoom/internal/config"
	"letszoom/internal/winapi"
)

const (
	className = "LetsZoomDrawingOverlay"

	// backdropAlpha keeps empty areas hit-testable without being visible.
	backdropAlpha = 1
)

var (
	// active receives messages for the drawing window.
	active *Overlay

	registerOnce sync.Once
	registerErr  error
)

// Overlay is the transparent full-screen drawing window. Strokes live only
// as long as the overlay is shown.
type Overlay struct {
	log zerolog.Logger

	hwnd   uintptr
	canvas *Canvas
	pen    Pen

	size      image.Point
	base      *image.RGBA // finalized strokes and hint
	frame     *image.RGBA
	baseDirty bool

	screenDC uintptr
	memDC    uintptr
	dib      uintptr
	oldDIB   uintptr
	bits     uintptr
}

// NewOverlay returns a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{
		log:    log.With().Str("component", "draw").Logger(),
		canvas: NewCanvas(),
	}
}

// IsActive reports whether the overlay is shown.
func (o *Overlay) IsActive() bool {
	return o.hwnd != 0
}

// Show covers the primary screen with a transparent drawing surface. The
// pen is fixed for the session: color is a COLORREF, width is clamped to
// 1-20 px and opacity to 0-255. Showing an active overlay does nothing.
func (o *Overlay) Show(colorRef uint32, width, opacity int) error {
	if o.IsActive() {
		return nil
	}

	registerOnce.Do(func() {
		registerErr = winapi.RegisterClass(className, 0, winapi.IDC_CROSS, 0, wndProc)
	})
	if registerErr != nil {
		return registerErr
	}

	o.pen = Pen{
		Color: config.NRGBA(colorRef, opacity),
		Width: clamp(width, config.MinPenWidth, config.MaxPenWidth),
	}

	if err := o.createSurface(); err != nil {
		o.releaseSurface()
		return err
	}

	active = o
	hwnd, err := winapi.CreateWindow(
		winapi.WS_EX_LAYERED|winapi.WS_EX_TOPMOST|winapi.WS_EX_TOOLWIN,
		className, "LetsZoom Drawing",
		winapi.WS_POPUP,
		0, 0, o.size.X, o.size.Y, 0,
	)
	if err != nil {
		active = nil
		o.releaseSurface()
		return err
	}
	o.hwnd = hwnd

	o.canvas.Clear()
	o.baseDirty = true
	o.present()

	winapi.ProcShowWindow.Call(hwnd, winapi.SW_SHOW)
	winapi.ProcSetForegroundWindow.Call(hwnd)
	winapi.ProcSetFocus.Call(hwnd)

	o.log.Debug().Interface("pen", o.pen.Color).Int("width", o.pen.Width).Msg("shown")
	return nil
}

// Hide closes the window, discards all strokes and frees every resource.
func (o *Overlay) Hide() {
	if !o.IsActive() {
		return
	}

	hwnd := o.hwnd
	o.hwnd = 0
	if o.canvas.Drawing() {
		o.canvas.Clear()
		winapi.ProcReleaseCapture.Call()
	}
	winapi.ProcDestroyWindow.Call(hwnd)

	o.canvas.Clear()
	o.releaseSurface()
	if active == o {
		active = nil
	}
	o.log.Debug().Msg("hidden")
}

// Clear removes every stroke and redraws.
func (o *Overlay) Clear() {
	o.canvas.Clear()
	o.baseDirty = true
	if o.IsActive() {
		o.present()
	}
}

func (o *Overlay) createSurface() error {
	w, h := winapi.ScreenSize()
	o.size = image.Pt(w, h)

	o.screenDC, _, _ = winapi.ProcGetDC.Call(0)
	if o.screenDC == 0 {
		return fmt.Errorf("%w: GetDC", winapi.ErrDeviceContext)
	}
	o.memDC, _, _ = winapi.ProcCreateCompatibleDC.Call(o.screenDC)
	if o.memDC == 0 {
		return fmt.Errorf("%w: CreateCompatibleDC", winapi.ErrDeviceContext)
	}

	var bi winapi.BitmapInfo
	bi.BmiHeader.BiSize = uint32(unsafe.Sizeof(bi.BmiHeader))
	bi.BmiHeader.BiWidth = int32(w)
	bi.BmiHeader.BiHeight = -int32(h) // top-down
	bi.BmiHeader.BiPlanes = 1
	bi.BmiHeader.BiBitCount = 32
	bi.BmiHeader.BiCompression = winapi.BI_RGB

	o.dib, _, _ = winapi.ProcCreateDIBSection.Call(
		o.memDC,
		uintptr(unsafe.Pointer(&bi)),
		winapi.DIB_RGB_COLORS,
		uintptr(unsafe.Pointer(&o.bits)),
		0, 0,
	)
	if o.dib == 0 || o.bits == 0 {
		return fmt.Errorf("%w: CreateDIBSection %dx%d", winapi.ErrDeviceContext, w, h)
	}
	o.oldDIB, _, _ = winapi.ProcSelectObject.Call(o.memDC, o.dib)

	o.base = image.NewRGBA(image.Rectangle{Max: o.size})
	o.frame = image.NewRGBA(image.Rectangle{Max: o.size})
	return nil
}

func (o *Overlay) releaseSurface() {
	if o.memDC != 0 && o.oldDIB != 0 {
		winapi.ProcSelectObject.Call(o.memDC, o.oldDIB)
		o.oldDIB = 0
	}
	if o.dib != 0 {
		winapi.ProcDeleteObject.Call(o.dib)
		o.dib = 0
		o.bits = 0
	}
	if o.memDC != 0 {
		winapi.ProcDeleteDC.Call(o.memDC)
		o.memDC = 0
	}
	if o.screenDC != 0 {
		winapi.ProcReleaseDC.Call(0, o.screenDC)
		o.screenDC = 0
	}
	o.base = nil
	o.frame = nil
}

// present redraws from scratch and pushes the frame to the layered window.
func (o *Overlay) present() {
	if o.baseDirty {
		Render(o.base, o.canvas.Strokes(), nil)
		DrawHint(o.base, HintText)
		o.baseDirty = false
	}

	copy(o.frame.Pix, o.base.Pix)
	if cur := o.canvas.Current(); cur != nil {
		RenderStroke(o.frame, cur)
	}

	pixels := unsafe.Slice((*byte)(unsafe.Pointer(o.bits)), o.size.X*o.size.Y*4)
	ToPremultipliedBGRA(pixels, o.frame, backdropAlpha)

	var (
		origin winapi.Point
		size   = winapi.Size{CX: int32(o.size.X), CY: int32(o.size.Y)}
		blend  = winapi.BlendFunction{
			BlendOp:             winapi.AC_SRC_OVER,
			SourceConstantAlpha: 255,
			AlphaFormat:         winapi.AC_SRC_ALPHA,
		}
	)
	ret, _, err := winapi.ProcUpdateLayeredWindow.Call(
		o.hwnd, o.screenDC,
		uintptr(unsafe.Pointer(&origin)),
		uintptr(unsafe.Pointer(&size)),
		o.memDC,
		uintptr(unsafe.Pointer(&origin)),
		0,
		uintptr(unsafe.Pointer(&blend)),
		winapi.ULW_ALPHA,
	)
	if ret == 0 {
		o.log.Debug().Err(err).Msg("UpdateLayeredWindow")
	}
}

func (o *Overlay) onKeyDown(vk uintptr) {
	ctrl := winapi.KeyDown(winapi.VK_CONTROL)
	shift := winapi.KeyDown(winapi.VK_SHIFT)

	switch {
	case vk == winapi.VK_ESCAPE:
		o.Hide()
	case vk == 'C' && !ctrl:
		o.Clear()
	case ctrl && vk == 'Z' && !shift:
		if o.canvas.Undo() {
			o.baseDirty = true
			o.present()
		}
	case ctrl && (vk == 'Y' || vk == 'Z' && shift):
		if o.canvas.Redo() {
			o.baseDirty = true
			o.present()
		}
	}
}

func (o *Overlay) finishStroke() {
	if o.canvas.End() {
		o.baseDirty = true
	}
	o.present()
}

func wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	o := active
	if o == nil || o.hwnd != hwnd {
		return winapi.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case winapi.WM_LBUTTONDOWN:
		x, y := winapi.PointFromLParam(lParam)
		o.canvas.Begin(image.Pt(x, y), o.pen)
		winapi.ProcSetCapture.Call(hwnd)
		o.present()
		return 0

	case winapi.WM_MOUSEMOVE:
		x, y := winapi.PointFromLParam(lParam)
		if o.canvas.Extend(image.Pt(x, y)) {
			o.present()
		}
		return 0

	case winapi.WM_LBUTTONUP:
		if o.canvas.Drawing() {
			x, y := winapi.PointFromLParam(lParam)
			o.canvas.Extend(image.Pt(x, y))
			o.finishStroke()
			winapi.ProcReleaseCapture.Call()
		}
		return 0

	case winapi.WM_CAPTURECHANGED:
		if o.canvas.Drawing() {
			o.finishStroke()
		}
		return 0

	case winapi.WM_KEYDOWN:
		o.onKeyDown(wParam)
		return 0
	}

	return winapi.DefWindowProc(hwnd, msg, wParam, lParam)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
