package console_test

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/plus3/ledblocks/blockgame"
	"github.com/plus3/ledblocks/console"
	"github.com/plus3/ledblocks/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(values ...uint32) console.Options {
	return console.Options{
		Game: blockgame.Config{
			Width:         8,
			Height:        4,
			TicksPerFrame: 1,
			InitialSpeed:  1,
			MinSpeed:      1,
			SpeedUpEvery:  32,
			SpawnLateral:  2,
		},
		Source:       blockgame.NewSequence(values...),
		GameOverHold: 2,
	}
}

type frameCounter struct {
	frames int
	last   *gfx.FrameBuffer
}

func (f *frameCounter) Render(fb *gfx.FrameBuffer) {
	f.frames++
	f.last = fb.Clone()
}

func TestMachineModes(t *testing.T) {
	opts := testOptions(3)
	opts.Game.Width = 5
	opts.Game.SpawnLateral = 0

	m, err := console.New(opts)
	require.NoError(t, err)

	var summaries []blockgame.Summary
	m.OnGameOver(func(sum blockgame.Summary) {
		summaries = append(summaries, sum)
	})
	idle := 0
	m.OnIdle(func() { idle++ })

	t.Run("idle ignores everything but down", func(t *testing.T) {
		m.Press(blockgame.ButtonLeft)
		m.Press(blockgame.ButtonUp)
		m.Step()
		m.Step()

		assert.Equal(t, console.ModeIdle, m.Mode())
		assert.Equal(t, blockgame.StateIdle, m.Session().State())
	})

	t.Run("down starts a game", func(t *testing.T) {
		m.Press(blockgame.ButtonDown)
		m.Step()

		assert.Equal(t, console.ModePlaying, m.Mode())
		assert.Equal(t, blockgame.StateFalling, m.Session().State())
		assert.Equal(t, blockgame.ShapeO, m.Session().Snapshot().Shape)
	})

	t.Run("game over holds the final frame", func(t *testing.T) {
		for i := 0; i < 6; i++ {
			m.Step()
		}

		assert.Equal(t, console.ModeGameOver, m.Mode())
		require.Len(t, summaries, 1)
		assert.Equal(t, blockgame.Summary{Score: 2, Lines: 0, Speed: 1}, summaries[0])

		last, ok := m.LastSummary()
		assert.True(t, ok)
		assert.Equal(t, summaries[0], last)
		assert.Equal(t, 1, m.Games())

		m.Press(blockgame.ButtonDown)
		m.Step()
		assert.Equal(t, console.ModeGameOver, m.Mode())
		assert.NotEqual(t, gfx.NewFrameBuffer(5, 4), m.Session().Display())
	})

	t.Run("hold expiry returns to a blank idle display", func(t *testing.T) {
		m.Step()

		assert.Equal(t, console.ModeIdle, m.Mode())
		assert.Equal(t, gfx.NewFrameBuffer(5, 4), m.Session().Display())
		assert.Equal(t, 1, idle)
	})

	t.Run("down restarts after idle", func(t *testing.T) {
		m.Press(blockgame.ButtonDown)
		m.Step()

		assert.Equal(t, console.ModePlaying, m.Mode())
		assert.Equal(t, 1, m.Session().Snapshot().Score)
		assert.Equal(t, 1, idle)
	})
}

func TestMachinePressFromIdleHookStartsSameTick(t *testing.T) {
	opts := testOptions(3)
	opts.Game.Width = 5
	opts.Game.SpawnLateral = 0

	m, err := console.New(opts)
	require.NoError(t, err)
	m.OnIdle(func() { m.Press(blockgame.ButtonDown) })

	m.Press(blockgame.ButtonDown)
	for i := 0; i < 9; i++ {
		m.Step()
	}

	assert.Equal(t, 1, m.Games())
	assert.Equal(t, console.ModePlaying, m.Mode())
	assert.Equal(t, 1, m.Session().Snapshot().Score)
}

func TestMachineRoutesButtonsToSession(t *testing.T) {
	m, err := console.New(testOptions(3))
	require.NoError(t, err)

	m.Press(blockgame.ButtonDown)
	m.Step()
	require.Equal(t, blockgame.Position{}, m.Session().Snapshot().Position)

	m.Press(blockgame.ButtonLeft)
	m.Step()

	// The display task runs before the buttons task in every period.
	assert.Equal(t, blockgame.Position{Advance: 1, Lateral: 1}, m.Session().Snapshot().Position)
}

func TestMachinePressDropsWhenFull(t *testing.T) {
	var logs bytes.Buffer
	opts := testOptions(3)
	opts.QueueSize = 2
	opts.Logger = log.New(&logs, "", 0)

	m, err := console.New(opts)
	require.NoError(t, err)

	assert.True(t, m.Press(blockgame.ButtonDown))
	assert.True(t, m.Press(blockgame.ButtonLeft))
	assert.False(t, m.Press(blockgame.ButtonLeft))
	assert.Contains(t, logs.String(), "button queue full, dropped left")

	m.Step()
	assert.True(t, m.Press(blockgame.ButtonUp))
}

func TestMachineRendererFanOut(t *testing.T) {
	m, err := console.New(testOptions(3))
	require.NoError(t, err)

	first, second := &frameCounter{}, &frameCounter{}
	m.AddRenderer(first)
	m.AddRenderer(second)

	m.Press(blockgame.ButtonDown)
	m.Step()
	m.Step()

	assert.Equal(t, 2, first.frames)
	assert.Equal(t, first.frames, second.frames)
	assert.True(t, first.last.Equal(m.Session().Display()))
}

func TestMachineInvalidConfig(t *testing.T) {
	opts := testOptions()
	opts.Game.Width = 2

	_, err := console.New(opts)
	assert.ErrorIs(t, err, blockgame.ErrInvalidConfig)
}

func TestMachineRun(t *testing.T) {
	opts := testOptions(3)
	opts.GameOverHold = 1 << 20

	m, err := console.New(opts)
	require.NoError(t, err)
	m.Press(blockgame.ButtonDown)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	m.Run(ctx, time.Millisecond)

	assert.NotEqual(t, console.ModeIdle, m.Mode())
	assert.GreaterOrEqual(t, m.Session().Snapshot().Score, 1)

	stats := m.Scheduler().GetStats()
	require.Len(t, stats.Tasks, 2)
	assert.Equal(t, "displayTask", stats.Tasks[0].Name)
	assert.Equal(t, "buttonsTask", stats.Tasks[1].Name)
	assert.Positive(t, stats.Tasks[0].ExecutionCount)
}
