package blockgame

import "github.com/plus3/ledblocks/gfx"

// Shape identifies one of the piece kinds.
type Shape uint8

const (
	ShapeL Shape = iota
	ShapeZ
	ShapeI
	ShapeO
	ShapeT
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = 5

// Rotations is the number of poses per shape.
const Rotations = 4

// MaxPoseExtent is the largest footprint of any pose along either axis.
const MaxPoseExtent = 4

func (s Shape) String() string {
	switch s {
	case ShapeL:
		return "L"
	case ShapeZ:
		return "Z"
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	default:
		return "?"
	}
}

// The display is mounted rotated by 90 degrees: a tile column is a step along
// the advance axis and a tile row a step along the lateral axis.
var catalog = [ShapeCount][Rotations]gfx.Tile{
	ShapeL: {
		{Size: 0x13, Rows: [8]byte{0x80, 0x80, 0x80, 0xC0}},
		{Size: 0x31, Rows: [8]byte{0x10, 0xF0}},
		{Size: 0x13, Rows: [8]byte{0xC0, 0x40, 0x40, 0x40}},
		{Size: 0x31, Rows: [8]byte{0xF0, 0x80}},
	},
	ShapeZ: {
		{Size: 0x12, Rows: [8]byte{0x40, 0xC0, 0x80}},
		{Size: 0x21, Rows: [8]byte{0xC0, 0x60}},
		{Size: 0x12, Rows: [8]byte{0x40, 0xC0, 0x80}},
		{Size: 0x21, Rows: [8]byte{0xC0, 0x60}},
	},
	ShapeI: {
		{Size: 0x03, Rows: [8]byte{0x80, 0x80, 0x80, 0x80}},
		{Size: 0x30, Rows: [8]byte{0xF0}},
		{Size: 0x03, Rows: [8]byte{0x80, 0x80, 0x80, 0x80}},
		{Size: 0x30, Rows: [8]byte{0xF0}},
	},
	ShapeO: {
		{Size: 0x11, Rows: [8]byte{0xC0, 0xC0}},
		{Size: 0x11, Rows: [8]byte{0xC0, 0xC0}},
		{Size: 0x11, Rows: [8]byte{0xC0, 0xC0}},
		{Size: 0x11, Rows: [8]byte{0xC0, 0xC0}},
	},
	ShapeT: {
		{Size: 0x21, Rows: [8]byte{0xE0, 0x40}},
		{Size: 0x12, Rows: [8]byte{0x80, 0xC0, 0x80}},
		{Size: 0x21, Rows: [8]byte{0x40, 0xE0}},
		{Size: 0x12, Rows: [8]byte{0x40, 0xC0, 0x40}},
	},
}

// Pose returns a copy of the catalog bitmap for shape at rotation. The
// rotation is reduced modulo Rotations and the shape modulo ShapeCount.
func Pose(shape Shape, rotation int) gfx.Tile {
	r := rotation % Rotations
	if r < 0 {
		r += Rotations
	}
	return catalog[int(shape)%ShapeCount][r]
}
