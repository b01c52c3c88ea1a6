package annotate

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// HintText is shown at the bottom of the drawing overlay.
const HintText = "ESC: exit | C: clear | Ctrl+Z: undo | Ctrl+Y: redo | Mouse: draw"

// Render clears dst to fully transparent, then draws every finalized stroke
// in order followed by the stroke in progress, if any.
func Render(dst *image.RGBA, strokes []Stroke, current *Stroke) {
	clear(dst.Pix)
	for i := range strokes {
		RenderStroke(dst, &strokes[i])
	}
	if current != nil {
		RenderStroke(dst, current)
	}
}

// RenderStroke composites s over dst as connected, round-capped,
// anti-aliased segments. Coverage is collected per stroke first, so
// translucent ink does not darken where the stroke crosses itself.
func RenderStroke(dst *image.RGBA, s *Stroke) {
	if !s.Visible() {
		return
	}
	r := s.Bounds().Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	mask := image.NewAlpha(r)
	for i := 1; i < len(s.Points); i++ {
		drawThickLine(mask, s.Points[i-1], s.Points[i], s.Pen.Width)
	}
	draw.DrawMask(dst, r, image.NewUniform(s.Pen.Color), image.Point{}, mask, r.Min, draw.Over)
}

// drawThickLine writes the coverage of a round-capped segment into mask
// using its distance field.
func drawThickLine(mask *image.Alpha, p0, p1 image.Point, width int) {
	halfW := float64(width) / 2.0
	if halfW < 0.75 {
		halfW = 0.75
	}

	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)
	length := math.Hypot(dx, dy)

	if length < 0.5 {
		drawFilledCircleAA(mask, float64(p0.X), float64(p0.Y), halfW)
		return
	}

	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux

	margin := int(halfW) + 2
	box := image.Rectangle{Min: p0, Max: p1}.Canon()
	box.Min = box.Min.Sub(image.Pt(margin, margin))
	box.Max = box.Max.Add(image.Pt(margin+1, margin+1))
	box = box.Intersect(mask.Bounds())

	x0f, y0f := float64(p0.X), float64(p0.Y)
	x1f, y1f := float64(p1.X), float64(p1.Y)

	for py := box.Min.Y; py < box.Max.Y; py++ {
		for px := box.Min.X; px < box.Max.X; px++ {
			vx := float64(px) - x0f
			vy := float64(py) - y0f
			along := vx*ux + vy*uy

			var dist float64
			switch {
			case along <= 0:
				dist = math.Hypot(vx, vy)
			case along >= length:
				dist = math.Hypot(float64(px)-x1f, float64(py)-y1f)
			default:
				dist = math.Abs(vx*nx + vy*ny)
			}

			plotCoverage(mask, px, py, dist, halfW)
		}
	}
}

// drawFilledCircleAA covers a disc, used for zero-length segments.
func drawFilledCircleAA(mask *image.Alpha, cx, cy, r float64) {
	ri := int(r) + 2
	box := image.Rect(int(cx)-ri, int(cy)-ri, int(cx)+ri+1, int(cy)+ri+1).Intersect(mask.Bounds())
	for py := box.Min.Y; py < box.Max.Y; py++ {
		for px := box.Min.X; px < box.Max.X; px++ {
			plotCoverage(mask, px, py, math.Hypot(float64(px)-cx, float64(py)-cy), r)
		}
	}
}

// plotCoverage keeps the highest coverage seen for a pixel. The caller has
// clipped (x, y) to the mask.
func plotCoverage(mask *image.Alpha, x, y int, dist, halfW float64) {
	if dist > halfW+0.5 {
		return
	}
	cov := 1.0
	if dist > halfW-0.5 {
		cov = halfW + 0.5 - dist
	}
	a := uint8(cov*255 + 0.5)
	i := mask.PixOffset(x, y)
	if a > mask.Pix[i] {
		mask.Pix[i] = a
	}
}

// DrawHint writes text centered in a band 20 px above the bottom edge of
// dst, white with a dark outline so it reads on any background.
func DrawHint(dst *image.RGBA, text string) {
	face := basicfont.Face7x13
	b := dst.Bounds()

	w := font.MeasureString(face, text).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	x := b.Min.X + (b.Dx()-w)/2
	y := b.Max.Y - 40 + ascent/2

	d := &font.Drawer{Dst: dst, Face: face}

	d.Src = image.NewUniform(color.NRGBA{A: 200})
	for _, off := range []image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		d.Dot = fixed.P(x+off.X, y+off.Y)
		d.DrawString(text)
	}

	d.Src = image.White
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// ToPremultipliedBGRA converts src into the premultiplied BGRA layout used
// by layered windows. Pixels less opaque than backdrop are raised to a black
// backdrop of that alpha. dst must hold 4 bytes per pixel of src.
func ToPremultipliedBGRA(dst []byte, src *image.RGBA, backdrop uint8) {
	b := src.Bounds()
	rowBytes := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+rowBytes]
		d := dst[y*rowBytes : (y+1)*rowBytes]
		for i := 0; i < rowBytes; i += 4 {
			if s[i+3] < backdrop {
				d[i+0], d[i+1], d[i+2], d[i+3] = 0, 0, 0, backdrop
				continue
			}
			d[i+0] = s[i+2]
			d[i+1] = s[i+1]
			d[i+2] = s[i+0]
			d[i+3] = s[i+3]
		}
	}
}
