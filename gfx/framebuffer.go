// Package gfx provides the monochrome pixel primitives used by the LED matrix:
// a bit-addressable frame buffer and small 8x8 tiles that can be blitted onto it.
//
// The x axis runs along a row of packed bytes, the most significant bit of each
// byte being the lowest x. Rows are stacked along y.
package gfx

import (
	"fmt"
	"strings"
)

// FrameBuffer is a 1-bit surface of width x height pixels.
type FrameBuffer struct {
	width      int
	height     int
	widthBytes int
	buffer     []byte
}

// NewFrameBuffer allocates a cleared frame buffer. The width is rounded up to
// whole bytes for storage but pixels beyond width are never addressed.
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	widthBytes := (width + 7) / 8
	return &FrameBuffer{
		width:      width,
		height:     height,
		widthBytes: widthBytes,
		buffer:     make([]byte, widthBytes*height),
	}
}

// Width returns the number of addressable pixels along x.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the number of rows.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// WidthBytes returns the number of bytes per row.
func (fb *FrameBuffer) WidthBytes() int {
	return fb.widthBytes
}

// Bytes exposes the raw row-major storage. Callers must not resize it.
func (fb *FrameBuffer) Bytes() []byte {
	return fb.buffer
}

func (fb *FrameBuffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.width && y < fb.height
}

// Pixel reports whether the pixel at (x, y) is set. Coordinates outside the
// buffer read as unset.
func (fb *FrameBuffer) Pixel(x, y int) bool {
	if !fb.inside(x, y) {
		return false
	}
	return fb.buffer[y*fb.widthBytes+x/8]&(0x80>>(x%8)) != 0
}

// SetPixel sets or clears the pixel at (x, y). Writes outside the buffer are dropped.
func (fb *FrameBuffer) SetPixel(x, y int, on bool) {
	if !fb.inside(x, y) {
		return
	}
	idx := y*fb.widthBytes + x/8
	mask := byte(0x80 >> (x % 8))
	if on {
		fb.buffer[idx] |= mask
	} else {
		fb.buffer[idx] &^= mask
	}
}

// Clear unsets every pixel.
func (fb *FrameBuffer) Clear() {
	for i := range fb.buffer {
		fb.buffer[i] = 0
	}
}

// Clone returns a deep copy.
func (fb *FrameBuffer) Clone() *FrameBuffer {
	dup := *fb
	dup.buffer = make([]byte, len(fb.buffer))
	copy(dup.buffer, fb.buffer)
	return &dup
}

// CopyFrom overwrites the pixels of fb with src. It panics if the two
// buffers differ in size.
func (fb *FrameBuffer) CopyFrom(src *FrameBuffer) {
	if fb.width != src.width || fb.height != src.height {
		panic(fmt.Sprintf("gfx: copy from %dx%d into %dx%d frame buffer", src.width, src.height, fb.width, fb.height))
	}
	copy(fb.buffer, src.buffer)
}

// Equal reports whether two buffers have the same size and pixels.
func (fb *FrameBuffer) Equal(other *FrameBuffer) bool {
	if fb.width != other.width || fb.height != other.height {
		return false
	}
	for i := range fb.buffer {
		if fb.buffer[i] != other.buffer[i] {
			return false
		}
	}
	return true
}

// String renders the buffer as text, one line per row, '#' for set pixels.
func (fb *FrameBuffer) String() string {
	var sb strings.Builder
	sb.Grow((fb.width + 1) * fb.height)
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			if fb.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
