// Package annotate implements freehand screen annotation: the stroke model,
// a software renderer and the transparent drawing window.
package annotate

import (
	"image"
	"image/color"
)

// initialPoints is the starting capacity of a stroke's point buffer.
const initialPoints = 100

// Pen is the ink a stroke is drawn with. Color.A is the opacity.
type Pen struct {
	Color color.NRGBA
	Width int
}

// Stroke is one freehand polyline. The pen is fixed when the stroke starts.
type Stroke struct {
	Points []image.Point
	Pen    Pen
}

func newStroke(p image.Point, pen Pen) *Stroke {
	s := &Stroke{
		Points: make([]image.Point, 0, initialPoints),
		Pen:    pen,
	}
	s.Points = append(s.Points, p)
	return s
}

// Visible reports whether the stroke draws anything.
func (s *Stroke) Visible() bool {
	return s != nil && len(s.Points) >= 2 && s.Pen.Color.A > 0
}

// Bounds is the area the stroke may touch, including the pen width and one
// pixel of anti-aliasing.
func (s *Stroke) Bounds() image.Rectangle {
	if len(s.Points) == 0 {
		return image.Rectangle{}
	}

	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY

	for _, p := range s.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	pad := s.Pen.Width/2 + 2
	return image.Rect(minX-pad, minY-pad, maxX+pad+1, maxY+pad+1)
}
