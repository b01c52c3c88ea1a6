// Package zoom implements the full-screen magnifier.
package zoom

import (
	"image"

	"letszoom/internal/capture"
	"letszoom/internal/config"
)

// Step sizes for keyboard and wheel input.
const (
	LevelStep = 25
	PanStep   = 50
)

// Viewport is the magnifier state for one overlay session: the zoom level in
// percent and a pan offset in source pixels relative to the cursor.
type Viewport struct {
	Level int
	PanX  int
	PanY  int

	dragging  bool
	dragStart image.Point
	panStart  image.Point
}

// NewViewport starts a session at level, clamped to the valid range.
func NewViewport(level int) *Viewport {
	return &Viewport{Level: clampLevel(level)}
}

func clampLevel(level int) int {
	if level < config.MinZoomLevel {
		return config.MinZoomLevel
	}
	if level > config.MaxZoomLevel {
		return config.MaxZoomLevel
	}
	return level
}

// Scale is the magnification factor.
func (v *Viewport) Scale() float64 {
	return float64(v.Level) / 100
}

// ZoomIn raises the level by one step.
func (v *Viewport) ZoomIn() {
	v.Level = clampLevel(v.Level + LevelStep)
}

// ZoomOut lowers the level by one step.
func (v *Viewport) ZoomOut() {
	v.Level = clampLevel(v.Level - LevelStep)
}

// Wheel zooms in for a positive delta and out otherwise.
func (v *Viewport) Wheel(delta int) {
	if delta > 0 {
		v.ZoomIn()
	} else {
		v.ZoomOut()
	}
}

// Pan moves the view by whole steps, e.g. Pan(-1, 0) for the left arrow.
func (v *Viewport) Pan(dx, dy int) {
	v.PanX += dx * PanStep
	v.PanY += dy * PanStep
}

// BeginDrag records the pointer and pan at the start of a drag.
func (v *Viewport) BeginDrag(p image.Point) {
	v.dragging = true
	v.dragStart = p
	v.panStart = image.Pt(v.PanX, v.PanY)
}

// DragTo sets the pan from the pointer movement since BeginDrag, scaled back
// to source pixels. It reports whether a drag is in progress.
func (v *Viewport) DragTo(p image.Point) bool {
	if !v.dragging {
		return false
	}
	scale := v.Scale()
	v.PanX = v.panStart.X + int(float64(p.X-v.dragStart.X)/scale)
	v.PanY = v.panStart.Y + int(float64(p.Y-v.dragStart.Y)/scale)
	return true
}

// EndDrag finishes a drag. It reports whether one was in progress.
func (v *Viewport) EndDrag() bool {
	was := v.dragging
	v.dragging = false
	return was
}

// Dragging reports whether a drag is in progress.
func (v *Viewport) Dragging() bool {
	return v.dragging
}

// CaptureRect is the source rectangle that, stretched over a screen of the
// given size, shows the cursor area at the current level. The rectangle is
// centered on cursor plus pan and kept inside the screen.
func (v *Viewport) CaptureRect(screen image.Point, cursor image.Point) image.Rectangle {
	size := image.Pt(screen.X*100/v.Level, screen.Y*100/v.Level)
	r := capture.CenteredRect(cursor.Add(image.Pt(v.PanX, v.PanY)), size)
	return capture.ClampRect(r, image.Rectangle{Max: screen})
}
