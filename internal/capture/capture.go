package capture

import (
	"image"
)

// ClampRect moves r inside bounds without changing its size. A rectangle
// larger than bounds is shrunk to fit first.
func ClampRect(r, bounds image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()
	if w > bounds.Dx() {
		w = bounds.Dx()
	}
	if h > bounds.Dy() {
		h = bounds.Dy()
	}

	x, y := r.Min.X, r.Min.Y
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	if y < bounds.Min.Y {
		y = bounds.Min.Y
	}
	if x+w > bounds.Max.X {
		x = bounds.Max.X - w
	}
	if y+h > bounds.Max.Y {
		y = bounds.Max.Y - h
	}
	return image.Rect(x, y, x+w, y+h)
}

// CenteredRect returns a size-sized rectangle centered on c.
func CenteredRect(c image.Point, size image.Point) image.Rectangle {
	min := c.Sub(size.Div(2))
	return image.Rectangle{Min: min, Max: min.Add(size)}
}
