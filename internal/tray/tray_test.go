package tray

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconResourceLayout(t *testing.T) {
	const size = 32
	res := iconResource(size)

	maskStride := 4
	require.Len(t, res, bitmapInfoHeaderSize+size*size*4+maskStride*size)

	le := binary.LittleEndian
	assert.Equal(t, uint32(40), le.Uint32(res[0:]))
	assert.Equal(t, uint32(size), le.Uint32(res[4:]))
	assert.Equal(t, uint32(size*2), le.Uint32(res[8:]))
	assert.Equal(t, uint16(32), le.Uint16(res[14:]))
}

func TestIconHasInkAndTransparency(t *testing.T) {
	const size = 32
	res := iconResource(size)
	pixels := res[bitmapInfoHeaderSize : bitmapInfoHeaderSize+size*size*4]
	mask := res[bitmapInfoHeaderSize+size*size*4:]

	alpha := func(x, y int) byte {
		return pixels[((size-1-y)*size+x)*4+3]
	}
	masked := func(x, y int) bool {
		row := size - 1 - y
		return mask[row*4+x/8]&(0x80>>(x%8)) != 0
	}

	assert.Zero(t, alpha(0, size-1), "bottom-left corner is empty")
	assert.True(t, masked(0, size-1))

	assert.Equal(t, byte(255), alpha(size-5, size-5), "handle near the corner")
	assert.False(t, masked(size-5, size-5))

	// Top of the lens ring: center (13.44, 13.44), radius 8.96.
	assert.NotZero(t, alpha(13, 4))
	assert.Equal(t, byte(0xB0), alpha(13, 13), "translucent glass inside the ring")
}

func TestClassify(t *testing.T) {
	assert.Equal(t, GestureMenu, Classify(wmRButtonUp))
	assert.Equal(t, GestureMenu, Classify(wmContextMenu))
	assert.Equal(t, GestureOpenSettings, Classify(wmLButtonDblClk))
	assert.Equal(t, GestureNone, Classify(0x0200)) // mouse move
}

func TestMenuOrder(t *testing.T) {
	var cmds []Command
	for _, item := range Menu() {
		if item.Command != 0 {
			cmds = append(cmds, item.Command)
		}
	}
	assert.Equal(t, []Command{CommandAbout, CommandSettings, CommandExit}, cmds)
}
