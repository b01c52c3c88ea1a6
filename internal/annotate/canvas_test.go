package annotate

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = Pen{Color: color.NRGBA{R: 255, A: 255}, Width: 3}

func TestStrokeLifecycle(t *testing.T) {
	c := NewCanvas()
	assert.False(t, c.Drawing())

	c.Begin(image.Pt(1, 1), red)
	assert.True(t, c.Drawing())
	assert.True(t, c.Extend(image.Pt(2, 2)))
	assert.False(t, c.Extend(image.Pt(2, 2)), "repeated point")
	assert.True(t, c.Extend(image.Pt(3, 5)))

	cur := c.Current()
	require.NotNil(t, cur)
	assert.Equal(t, []image.Point{{1, 1}, {2, 2}, {3, 5}}, cur.Points)
	assert.GreaterOrEqual(t, cap(cur.Points), initialPoints)

	assert.True(t, c.End())
	assert.False(t, c.Drawing())
	assert.Nil(t, c.Current())
	require.Len(t, c.Strokes(), 1)
	assert.Equal(t, red, c.Strokes()[0].Pen)
}

func TestEndWithoutBeginIsNoop(t *testing.T) {
	c := NewCanvas()
	assert.False(t, c.End())
	assert.False(t, c.Extend(image.Pt(4, 4)))
	assert.Empty(t, c.Strokes())
}

func TestSinglePointStrokeIsKeptButInvisible(t *testing.T) {
	c := NewCanvas()
	c.Begin(image.Pt(10, 10), red)
	assert.True(t, c.End())
	require.Len(t, c.Strokes(), 1)
	assert.False(t, c.Strokes()[0].Visible())

	dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
	Render(dst, c.Strokes(), nil)
	assert.Zero(t, countInk(dst))
}

func TestBeginFinalizesPreviousStroke(t *testing.T) {
	c := NewCanvas()
	c.Begin(image.Pt(0, 0), red)
	c.Extend(image.Pt(5, 0))
	c.Begin(image.Pt(0, 10), red)
	assert.Len(t, c.Strokes(), 1)
	assert.True(t, c.Drawing())
}

func TestLongStrokeGrows(t *testing.T) {
	c := NewCanvas()
	c.Begin(image.Pt(0, 0), red)
	for i := 1; i < 1000; i++ {
		c.Extend(image.Pt(i, i%7))
	}
	require.True(t, c.End())
	assert.Len(t, c.Strokes()[0].Points, 1000)
}

func TestClearEmptiesEverything(t *testing.T) {
	c := NewCanvas()
	drawLine(c, image.Pt(0, 0), image.Pt(9, 9))
	drawLine(c, image.Pt(0, 9), image.Pt(9, 0))
	c.Begin(image.Pt(3, 3), red)

	c.Clear()
	assert.Empty(t, c.Strokes())
	assert.False(t, c.Drawing())
	assert.False(t, c.Redo())
}

func TestUndoRemovesExactlyLastStroke(t *testing.T) {
	c := NewCanvas()
	drawLine(c, image.Pt(0, 0), image.Pt(9, 9))
	drawLine(c, image.Pt(0, 9), image.Pt(9, 0))

	require.True(t, c.Undo())
	require.Len(t, c.Strokes(), 1)
	assert.Equal(t, image.Pt(9, 9), c.Strokes()[0].Points[1])

	require.True(t, c.Redo())
	assert.Len(t, c.Strokes(), 2)

	assert.True(t, c.Undo())
	assert.True(t, c.Undo())
	assert.False(t, c.Undo())
}

func TestNewStrokeClearsRedo(t *testing.T) {
	c := NewCanvas()
	drawLine(c, image.Pt(0, 0), image.Pt(9, 9))
	c.Undo()
	drawLine(c, image.Pt(1, 1), image.Pt(2, 2))
	assert.False(t, c.Redo())
	assert.Len(t, c.Strokes(), 1)
}

func TestStrokeBounds(t *testing.T) {
	s := &Stroke{Points: []image.Point{{10, 20}, {30, 5}}, Pen: Pen{Width: 4}}
	assert.Equal(t, image.Rect(6, 1, 35, 25), s.Bounds())
	assert.Equal(t, image.Rectangle{}, (&Stroke{}).Bounds())
}

func drawLine(c *Canvas, from, to image.Point) {
	c.Begin(from, red)
	c.Extend(to)
	c.End()
}
