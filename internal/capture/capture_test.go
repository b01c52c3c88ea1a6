package capture

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampRect(t *testing.T) {
	screen := image.Rect(0, 0, 1920, 1080)

	tests := []struct {
		name string
		in   image.Rectangle
		want image.Rectangle
	}{
		{"inside", image.Rect(100, 100, 1060, 640), image.Rect(100, 100, 1060, 640)},
		{"top left", image.Rect(-200, -50, 760, 490), image.Rect(0, 0, 960, 540)},
		{"bottom right", image.Rect(1500, 900, 2460, 1440), image.Rect(960, 540, 1920, 1080)},
		{"too large", image.Rect(-10, -10, 3000, 2000), image.Rect(0, 0, 1920, 1080)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampRect(tt.in, screen)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.In(screen))
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(image.Pt(960, 540), image.Pt(960, 540))
	assert.Equal(t, image.Rect(480, 270, 1440, 810), r)
}
