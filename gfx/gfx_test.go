package gfx_test

import (
	"testing"

	"github.com/plus3/ledblocks/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameBufferDimensions(t *testing.T) {
	tests := []struct {
		width, height, widthBytes int
	}{
		{32, 8, 4},
		{33, 8, 5},
		{1, 1, 1},
		{0, 0, 0},
		{12, 5, 2},
	}

	for _, tt := range tests {
		fb := gfx.NewFrameBuffer(tt.width, tt.height)
		assert.Equal(t, tt.width, fb.Width())
		assert.Equal(t, tt.height, fb.Height())
		assert.Equal(t, tt.widthBytes, fb.WidthBytes())
		assert.Len(t, fb.Bytes(), tt.widthBytes*tt.height)
	}
}

func TestPixelAddressing(t *testing.T) {
	fb := gfx.NewFrameBuffer(32, 8)

	fb.SetPixel(0, 0, true)
	fb.SetPixel(9, 1, true)
	fb.SetPixel(31, 7, true)

	assert.Equal(t, byte(0x80), fb.Bytes()[0])
	assert.Equal(t, byte(0x40), fb.Bytes()[1*4+1])
	assert.Equal(t, byte(0x01), fb.Bytes()[7*4+3])

	assert.True(t, fb.Pixel(0, 0))
	assert.True(t, fb.Pixel(9, 1))
	assert.True(t, fb.Pixel(31, 7))
	assert.False(t, fb.Pixel(1, 0))

	fb.SetPixel(9, 1, false)
	assert.False(t, fb.Pixel(9, 1))
	assert.Equal(t, byte(0), fb.Bytes()[1*4+1])
}

func TestPixelOutOfRange(t *testing.T) {
	fb := gfx.NewFrameBuffer(10, 3)

	fb.SetPixel(-1, 0, true)
	fb.SetPixel(10, 0, true)
	fb.SetPixel(0, 3, true)
	fb.SetPixel(0, -1, true)

	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, fb.Bytes())
	assert.False(t, fb.Pixel(-1, 0))
	assert.False(t, fb.Pixel(10, 0))
	assert.False(t, fb.Pixel(0, 3))
}

func TestTileFootprint(t *testing.T) {
	tile := gfx.Tile{Size: 0x13, Rows: [8]byte{0x80, 0x80, 0x80, 0xC0}}
	assert.Equal(t, 2, tile.Width())
	assert.Equal(t, 4, tile.Height())

	built := gfx.NewTile(2, 4, 0x80, 0x80, 0x80, 0xC0)
	assert.Equal(t, tile, built)

	assert.True(t, tile.Bit(0, 0))
	assert.False(t, tile.Bit(1, 0))
	assert.True(t, tile.Bit(1, 3))
	assert.False(t, tile.Bit(8, 0))
}

func TestPlaceTile(t *testing.T) {
	tile := gfx.NewTile(2, 2, 0x80, 0xC0)

	t.Run("or composition keeps existing pixels", func(t *testing.T) {
		fb := gfx.NewFrameBuffer(8, 4)
		fb.SetPixel(6, 1, true)

		fb.PlaceTile(3, 0, tile, false)

		assert.Equal(t, "...#....\n...##.#.\n........\n........\n", fb.String())
	})

	t.Run("overwrite clears the footprint first", func(t *testing.T) {
		fb := gfx.NewFrameBuffer(8, 4)
		fb.SetPixel(4, 0, true)
		fb.SetPixel(5, 0, true)

		fb.PlaceTile(3, 0, tile, true)

		assert.False(t, fb.Pixel(4, 0))
		assert.True(t, fb.Pixel(5, 0))
		assert.True(t, fb.Pixel(3, 0))
	})

	t.Run("clipped at the edges", func(t *testing.T) {
		fb := gfx.NewFrameBuffer(4, 2)
		fb.PlaceTile(3, 1, tile, false)

		assert.Equal(t, "....\n...#\n", fb.String())
	})
}

func TestEraseTile(t *testing.T) {
	tile := gfx.NewTile(2, 2, 0x80, 0xC0)
	fb := gfx.NewFrameBuffer(8, 2)
	fb.SetPixel(1, 0, true)
	fb.PlaceTile(0, 0, tile, false)

	fb.EraseTile(0, 0, tile)

	assert.Equal(t, ".#......\n........\n", fb.String())
}

func TestCloneAndEqual(t *testing.T) {
	fb := gfx.NewFrameBuffer(16, 2)
	fb.SetPixel(3, 1, true)

	dup := fb.Clone()
	require.True(t, fb.Equal(dup))

	dup.SetPixel(4, 1, true)
	assert.False(t, fb.Equal(dup))
	assert.False(t, fb.Pixel(4, 1))

	fb.CopyFrom(dup)
	assert.True(t, fb.Equal(dup))

	assert.Panics(t, func() { fb.CopyFrom(gfx.NewFrameBuffer(8, 2)) })
	assert.Panics(t, func() { fb.CopyFrom(gfx.NewFrameBuffer(16, 3)) })
	assert.True(t, fb.Equal(dup))

	fb.Clear()
	assert.Equal(t, gfx.NewFrameBuffer(16, 2), fb)
	assert.False(t, fb.Equal(gfx.NewFrameBuffer(8, 2)))
}
