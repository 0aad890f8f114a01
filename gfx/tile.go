package gfx

// TileRows is the fixed number of row bytes a tile carries.
const TileRows = 8

// Tile is a bitmap of up to 8x8 pixels. Size packs the footprint: the high
// nibble is width-1 and the low nibble is height-1. Row r of the bitmap is
// Rows[r], with bit 0x80>>c addressing column c.
type Tile struct {
	Size byte
	Rows [TileRows]byte
}

// NewTile builds a tile from its footprint and row bytes.
func NewTile(width, height int, rows ...byte) Tile {
	t := Tile{Size: byte((width-1)&0x0f)<<4 | byte((height-1)&0x0f)}
	copy(t.Rows[:], rows)
	return t
}

// Width returns the footprint along x.
func (t Tile) Width() int {
	return int(t.Size>>4) + 1
}

// Height returns the footprint along y.
func (t Tile) Height() int {
	return int(t.Size&0x0f) + 1
}

// Bit reports whether the tile pixel at (col, row) is set.
func (t Tile) Bit(col, row int) bool {
	if col < 0 || row < 0 || col >= TileRows || row >= TileRows {
		return false
	}
	return t.Rows[row]&(0x80>>col) != 0
}

// PlaceTile draws t with its top-left corner at (x, y). With overwrite the
// tile's whole footprint is cleared first, otherwise the tile is OR-ed onto
// the existing pixels. Pixels falling outside fb are clipped.
func (fb *FrameBuffer) PlaceTile(x, y int, t Tile, overwrite bool) {
	w, h := t.Width(), t.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if t.Bit(col, row) {
				fb.SetPixel(x+col, y+row, true)
			} else if overwrite {
				fb.SetPixel(x+col, y+row, false)
			}
		}
	}
}

// EraseTile clears the pixels set in t when placed at (x, y). Pixels of fb
// that the tile does not cover are left untouched.
func (fb *FrameBuffer) EraseTile(x, y int, t Tile) {
	w, h := t.Width(), t.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if t.Bit(col, row) {
				fb.SetPixel(x+col, y+row, false)
			}
		}
	}
}
