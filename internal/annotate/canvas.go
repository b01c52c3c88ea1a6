package annotate

import (
	"image"
)

// Canvas collects strokes as the pointer draws them.
type Canvas struct {
	history History
	current *Stroke
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Begin starts a stroke at p. A stroke still in progress is finalized first.
func (c *Canvas) Begin(p image.Point, pen Pen) {
	if c.current != nil {
		c.End()
	}
	c.current = newStroke(p, pen)
}

// Extend appends p to the stroke in progress. It reports whether the stroke
// changed; repeated points are dropped.
func (c *Canvas) Extend(p image.Point) bool {
	if c.current == nil {
		return false
	}
	pts := c.current.Points
	if pts[len(pts)-1] == p {
		return false
	}
	c.current.Points = append(pts, p)
	return true
}

// End finalizes the stroke in progress into the collection. It reports
// whether there was one. A single-point stroke is kept but never rendered.
func (c *Canvas) End() bool {
	s := c.current
	if s == nil {
		return false
	}
	c.current = nil
	c.history.Add(*s)
	return true
}

// Clear drops every stroke, including one in progress.
func (c *Canvas) Clear() {
	c.current = nil
	c.history.Clear()
}

// Undo removes the last finalized stroke.
func (c *Canvas) Undo() bool {
	return c.history.Undo()
}

// Redo restores the last undone stroke.
func (c *Canvas) Redo() bool {
	return c.history.Redo()
}

// Strokes returns the finalized strokes in drawing order.
func (c *Canvas) Strokes() []Stroke {
	return c.history.Strokes()
}

// Current is the stroke in progress, or nil.
func (c *Canvas) Current() *Stroke {
	return c.current
}

// Drawing reports whether a stroke is in progress.
func (c *Canvas) Drawing() bool {
	return c.current != nil
}
