package blockgame

import (
	"math/rand/v2"

	"github.com/plus3/ledblocks/gfx"
)

// Source yields uniformly distributed unsigned integers. The session reduces
// them modulo ShapeCount.
type Source interface {
	Next() uint32
}

type randSource struct {
	r *rand.Rand
}

// NewRandSource returns a PCG-backed Source. Equal seeds replay the same pieces.
func NewRandSource(seed uint64) Source {
	return &randSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *randSource) Next() uint32 {
	return s.r.Uint32()
}

// Sequence is a Source that cycles through a fixed list of values.
type Sequence struct {
	values []uint32
	next   int
}

// NewSequence returns a Sequence over values. An empty sequence always yields 0.
func NewSequence(values ...uint32) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Next() uint32 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Renderer pushes a finished frame to the display.
type Renderer interface {
	Render(fb *gfx.FrameBuffer)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(fb *gfx.FrameBuffer)

func (f RendererFunc) Render(fb *gfx.FrameBuffer) {
	f(fb)
}
