package blockgame

import (
	"fmt"
	"testing"

	"github.com/plus3/ledblocks/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	return Config{
		Width:         8,
		Height:        4,
		TicksPerFrame: 1,
		InitialSpeed:  1,
		MinSpeed:      1,
		SpeedUpEvery:  32,
		SpawnLateral:  2,
	}
}

func newTestSession(t *testing.T, cfg Config, values ...uint32) *Session {
	t.Helper()
	s, err := New(cfg, NewSequence(values...), nil, nil)
	require.NoError(t, err)
	s.Start()
	return s
}

// place puts the falling piece at an explicit pose and position.
func place(s *Session, shape Shape, rotation int, pos Position) {
	s.shape = shape
	s.rotation = rotation
	s.LoadBlock()
	s.pos = pos
}

func fill(fb *gfx.FrameBuffer, rows ...string) {
	for y, row := range rows {
		for x, c := range row {
			fb.SetPixel(x, y, c == '#')
		}
	}
}

func TestCollidesAtFarBoundary(t *testing.T) {
	cfg := smallConfig()

	for shape := Shape(0); shape < ShapeCount; shape++ {
		for rotation := 0; rotation < Rotations; rotation++ {
			t.Run(fmt.Sprintf("%s/%d", shape, rotation), func(t *testing.T) {
				s := newTestSession(t, cfg, 0)
				width := Pose(shape, rotation).Width()

				place(s, shape, rotation, Position{Advance: cfg.Width - width})
				assert.True(t, s.Collides())

				place(s, shape, rotation, Position{Advance: cfg.Width - width - 1})
				assert.False(t, s.Collides())
			})
		}
	}
}

func TestCollidesWithLanded(t *testing.T) {
	s := newTestSession(t, smallConfig(), 0)

	t.Run("leading pixel touches landed pixel", func(t *testing.T) {
		s.landed.Clear()
		s.landed.SetPixel(3, 2, true)
		place(s, ShapeI, 0, Position{Advance: 2, Lateral: 0})

		assert.True(t, s.Collides())
	})

	t.Run("landed pixel two steps ahead", func(t *testing.T) {
		s.landed.Clear()
		s.landed.SetPixel(4, 2, true)
		place(s, ShapeI, 0, Position{Advance: 2, Lateral: 0})

		assert.False(t, s.Collides())
	})

	t.Run("landed pixel in another lateral row", func(t *testing.T) {
		s.landed.Clear()
		s.landed.SetPixel(3, 2, true)
		place(s, ShapeO, 0, Position{Advance: 1, Lateral: 0})

		assert.False(t, s.Collides())
	})

	t.Run("per-row leading edge differs", func(t *testing.T) {
		// Z pose 0: rows lead at columns 1, 1, 0.
		s.landed.Clear()
		s.landed.SetPixel(2, 3, true)
		place(s, ShapeZ, 0, Position{Advance: 1, Lateral: 1})

		assert.True(t, s.Collides())
	})

	t.Run("only the leading pixel of each row is tested", func(t *testing.T) {
		s.landed.Clear()
		s.landed.SetPixel(2, 0, true)
		place(s, ShapeI, 1, Position{Advance: 0, Lateral: 0})

		assert.False(t, s.Collides())
	})
}

func TestCommitToLanded(t *testing.T) {
	s := newTestSession(t, smallConfig(), 0)
	s.landed.Clear()
	s.landed.SetPixel(7, 3, true)

	place(s, ShapeT, 0, Position{Advance: 5, Lateral: 2})
	s.CommitToLanded()

	assert.Equal(t, "........\n........\n.....###\n......##\n", s.landed.String())
}

func TestClearCompletedLines(t *testing.T) {
	t.Run("single line shifts inward content outward", func(t *testing.T) {
		s := newTestSession(t, smallConfig(), 0)
		fill(s.landed,
			"...#.#..",
			".....##.",
			"...#.#..",
			"#....#..",
		)

		assert.Equal(t, 1, s.ClearCompletedLines())
		assert.Equal(t, "....#...\n......#.\n....#...\n.#......\n", s.landed.String())
		assert.Equal(t, 8, s.landed.Width())
		assert.Equal(t, 4, s.landed.Height())
		assert.Equal(t, 1, s.Snapshot().Lines)

		for row := 0; row < 4; row++ {
			for col := 0; col <= 5; col++ {
				assert.Equal(t, s.landed.Pixel(col, row), s.display.Pixel(col, row), "display (%d,%d)", col, row)
			}
		}
	})

	t.Run("adjacent lines are cleared by re-checking the same line", func(t *testing.T) {
		s := newTestSession(t, smallConfig(), 0)
		fill(s.landed,
			".....###",
			"......##",
			"......##",
			"......##",
		)

		assert.Equal(t, 2, s.ClearCompletedLines())
		assert.Equal(t, ".......#\n........\n........\n........\n", s.landed.String())
	})

	t.Run("full spawn line terminates", func(t *testing.T) {
		s := newTestSession(t, smallConfig(), 0)
		fill(s.landed,
			"##......",
			"##......",
			"##......",
			"##......",
		)

		assert.Equal(t, 2, s.ClearCompletedLines())
		assert.Equal(t, "........\n........\n........\n........\n", s.landed.String())
	})

	t.Run("no complete line leaves the field unchanged", func(t *testing.T) {
		s := newTestSession(t, smallConfig(), 0)
		fill(s.landed,
			"#..#.###",
			".#.#.#.#",
			"......#.",
			"##.#.##.",
		)
		before := s.landed.Clone()
		display := s.display.Clone()

		assert.Equal(t, 0, s.ClearCompletedLines())
		assert.True(t, before.Equal(s.landed))
		assert.True(t, display.Equal(s.display))
	})
}

func TestRefreshRestoresLandedPixels(t *testing.T) {
	s := newTestSession(t, smallConfig(), 0)
	s.landed.SetPixel(0, 3, true)
	s.display.SetPixel(0, 3, true)

	// L pose 0 covers (0,3) when placed at the origin.
	require.True(t, s.CurrentPose().Bit(0, 3))

	s.OnButton(ButtonUp)
	require.True(t, s.Refresh())

	assert.True(t, s.display.Pixel(0, 3))
}
