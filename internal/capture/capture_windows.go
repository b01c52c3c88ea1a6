//go:build windows

package capture

import (
	"fmt"
	"image"
	"unsafe"

	"letszoom/internal/winapi"
)

// Grabber keeps a memory DC and a DIB section the size of the primary screen
// alive between grabs, so each frame costs a single BitBlt.
type Grabber struct {
	screenDC  uintptr
	memDC     uintptr
	bitmap    uintptr
	oldBitmap uintptr
	bits      uintptr // DIB pixels, owned by bitmap
	size      image.Point
}

// NewGrabber allocates the buffers for the primary screen.
func NewGrabber() (*Grabber, error) {
	w, h := winapi.ScreenSize()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: screen size %dx%d", winapi.ErrDeviceContext, w, h)
	}

	g := &Grabber{size: image.Pt(w, h)}

	g.screenDC, _, _ = winapi.ProcGetDC.Call(0)
	if g.screenDC == 0 {
		return nil, fmt.Errorf("%w: GetDC", winapi.ErrDeviceContext)
	}

	g.memDC, _, _ = winapi.ProcCreateCompatibleDC.Call(g.screenDC)
	if g.memDC == 0 {
		g.Close()
		return nil, fmt.Errorf("%w: CreateCompatibleDC", winapi.ErrDeviceContext)
	}

	var bi winapi.BitmapInfo
	bi.BmiHeader.BiSize = uint32(unsafe.Sizeof(bi.BmiHeader))
	bi.BmiHeader.BiWidth = int32(w)
	bi.BmiHeader.BiHeight = -int32(h) // top-down
	bi.BmiHeader.BiPlanes = 1
	bi.BmiHeader.BiBitCount = 32
	bi.BmiHeader.BiCompression = winapi.BI_RGB

	g.bitmap, _, _ = winapi.ProcCreateDIBSection.Call(
		g.memDC,
		uintptr(unsafe.Pointer(&bi)),
		winapi.DIB_RGB_COLORS,
		uintptr(unsafe.Pointer(&g.bits)),
		0, 0,
	)
	if g.bitmap == 0 || g.bits == 0 {
		g.Close()
		return nil, fmt.Errorf("%w: CreateDIBSection %dx%d", winapi.ErrDeviceContext, w, h)
	}
	g.oldBitmap, _, _ = winapi.ProcSelectObject.Call(g.memDC, g.bitmap)

	return g, nil
}

// Grab copies the whole screen into the memory DC.
func (g *Grabber) Grab() error {
	ret, _, _ := winapi.ProcBitBlt.Call(
		g.memDC, 0, 0, uintptr(g.size.X), uintptr(g.size.Y),
		g.screenDC, 0, 0,
		winapi.SRCCOPY,
	)
	if ret == 0 {
		return fmt.Errorf("%w: BitBlt", winapi.ErrDeviceContext)
	}
	return nil
}

// DC is the memory DC holding the last grab.
func (g *Grabber) DC() uintptr { return g.memDC }

// ScreenDC is the shared screen DC the buffers are compatible with.
func (g *Grabber) ScreenDC() uintptr { return g.screenDC }

// Size of the grabbed area.
func (g *Grabber) Size() image.Point { return g.size }

// Close frees everything; safe on a partially built Grabber.
func (g *Grabber) Close() {
	if g.memDC != 0 && g.oldBitmap != 0 {
		winapi.ProcSelectObject.Call(g.memDC, g.oldBitmap)
		g.oldBitmap = 0
	}
	if g.bitmap != 0 {
		winapi.ProcDeleteObject.Call(g.bitmap)
		g.bitmap = 0
		g.bits = 0
	}
	if g.memDC != 0 {
		winapi.ProcDeleteDC.Call(g.memDC)
		g.memDC = 0
	}
	if g.screenDC != 0 {
		winapi.ProcReleaseDC.Call(0, g.screenDC)
		g.screenDC = 0
	}
}
