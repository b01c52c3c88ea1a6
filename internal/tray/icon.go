package tray

import (
	"encoding/binary"
	"math"
)

const bitmapInfoHeaderSize = 40

// iconResource returns a size x size 32-bpp icon image in the layout
// CreateIconFromResourceEx expects: BITMAPINFOHEADER, bottom-up BGRA color
// data, then the 1-bpp AND mask.
func iconResource(size int) []byte {
	maskStride := ((size + 31) / 32) * 4
	colorBytes := size * size * 4
	maskBytes := maskStride * size

	buf := make([]byte, bitmapInfoHeaderSize+colorBytes+maskBytes)
	le := binary.LittleEndian
	le.PutUint32(buf[0:], bitmapInfoHeaderSize)
	le.PutUint32(buf[4:], uint32(size))
	le.PutUint32(buf[8:], uint32(size*2)) // color plus mask
	le.PutUint16(buf[12:], 1)
	le.PutUint16(buf[14:], 32)
	le.PutUint32(buf[20:], uint32(colorBytes+maskBytes))

	pixels := buf[bitmapInfoHeaderSize : bitmapInfoHeaderSize+colorBytes]
	mask := buf[bitmapInfoHeaderSize+colorBytes:]

	for y := 0; y < size; y++ {
		row := size - 1 - y // bottom-up
		for x := 0; x < size; x++ {
			b, g, r, a := magnifierPixel(x, y, size)
			i := (row*size + x) * 4
			pixels[i+0], pixels[i+1], pixels[i+2], pixels[i+3] = b, g, r, a
			if a == 0 {
				mask[row*maskStride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return buf
}

// magnifierPixel draws a lens ring with a handle toward the bottom right,
// anti-aliased by distance.
func magnifierPixel(x, y, size int) (b, g, r, a byte) {
	s := float64(size)
	px, py := float64(x)+0.5, float64(y)+0.5

	cx, cy := s*0.42, s*0.42
	radius := s * 0.28
	ringHalf := s * 0.06
	handleHalf := s * 0.08

	dRing := math.Abs(math.Hypot(px-cx, py-cy) - radius)

	// Handle: segment from the ring edge toward the corner.
	hx0, hy0 := cx+radius*math.Sqrt2/2, cy+radius*math.Sqrt2/2
	hx1, hy1 := s*0.88, s*0.88
	dHandle := segmentDistance(px, py, hx0, hy0, hx1, hy1)

	ring := coverage(dRing, ringHalf)
	handle := coverage(dHandle, handleHalf)
	ink := math.Max(ring, handle)

	if ink > 0 {
		// #0078D4 ring, darker handle
		if handle > ring {
			return 0x80, 0x4A, 0x10, byte(ink*255 + 0.5)
		}
		return 0xD4, 0x78, 0x00, byte(ink*255 + 0.5)
	}
	if math.Hypot(px-cx, py-cy) < radius {
		return 0xFF, 0xF0, 0xE0, 0xB0 // glass
	}
	return 0, 0, 0, 0
}

func coverage(dist, halfW float64) float64 {
	switch {
	case dist <= halfW-0.5:
		return 1
	case dist >= halfW+0.5:
		return 0
	}
	return halfW + 0.5 - dist
}

func segmentDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	t := ((px-x0)*dx + (py-y0)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}
