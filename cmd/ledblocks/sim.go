package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/plus3/ledblocks/blockgame"
	"github.com/plus3/ledblocks/console"
	"github.com/plus3/ledblocks/gfx"
	"github.com/plus3/ledblocks/scheduler"
)

type simOptions struct {
	Machine console.Options
	// Ticks caps a stepped run.
	Ticks int
	// Games stops the run after this many finished games.
	Games   int
	Presses []press
	// Trace receives every rendered frame when non-nil.
	Trace    io.Writer
	Realtime bool
	Interval time.Duration
	// Duration caps a realtime run. Zero runs until Games finish or ctx ends.
	Duration time.Duration
}

const taskPresses scheduler.TaskBit = 0x04

// pressTask queues scripted presses at the end of each tick for the buttons
// task of the next one. Presses due at tick 1 are queued before the run.
type pressTask struct {
	m       *console.Machine
	presses []press
	next    int
}

func (t *pressTask) Execute(frame *scheduler.Frame) {
	t.queue(frame.Tick + 1)
}

func (t *pressTask) queue(tick uint64) {
	for t.next < len(t.presses) && uint64(t.presses[t.next].Tick) <= tick {
		t.m.Press(t.presses[t.next].Button)
		t.next++
	}
}

// runSim starts a game with a DOWN press and drives the machine until the
// tick budget is spent or enough games have finished. Each return to idle
// presses DOWN again while games are still missing.
func runSim(ctx context.Context, opts simOptions) (*Report, error) {
	if opts.Games < 1 {
		return nil, errors.New("games must be at least 1")
	}
	if !opts.Realtime && opts.Ticks < 1 {
		return nil, errors.New("ticks must be at least 1")
	}
	if opts.Realtime && opts.Interval <= 0 {
		return nil, errors.New("realtime runs need a positive interval")
	}

	m, err := console.New(opts.Machine)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Config:   m.Session().Config(),
		Realtime: opts.Realtime,
		Interval: opts.Interval,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m.OnGameOver(func(sum blockgame.Summary) {
		report.Games = append(report.Games, GameResult{
			Index: len(report.Games) + 1,
			Score: sum.Score,
			Lines: sum.Lines,
			Speed: sum.Speed,
			Tick:  m.Scheduler().GetStats().Triggers,
		})
		if len(report.Games) >= opts.Games {
			cancel()
		}
	})

	if opts.Trace != nil {
		m.AddRenderer(blockgame.RendererFunc(func(fb *gfx.FrameBuffer) {
			fmt.Fprintf(opts.Trace, "tick %d\n%s\n", m.Scheduler().GetStats().Triggers, fb)
		}))
	}

	m.OnIdle(func() {
		if len(report.Games) < opts.Games {
			m.Press(blockgame.ButtonDown)
		}
	})

	presses := &pressTask{m: m, presses: opts.Presses}
	m.Scheduler().Register(taskPresses, presses)

	runtime.ReadMemStats(&report.MemStatsStart)
	start := time.Now()

	m.Press(blockgame.ButtonDown)
	presses.queue(1)
	if opts.Realtime {
		if opts.Duration > 0 {
			var stop context.CancelFunc
			ctx, stop = context.WithTimeout(ctx, opts.Duration)
			defer stop()
		}
		m.Run(ctx, opts.Interval)
	} else {
		for tick := 1; tick <= opts.Ticks && ctx.Err() == nil; tick++ {
			m.Step()
		}
	}

	report.Elapsed = time.Since(start)
	runtime.ReadMemStats(&report.MemStatsEnd)

	stats := m.Scheduler().GetStats()
	report.Ticks = stats.Triggers
	report.Tasks = stats.Tasks
	report.Mode = m.Mode()
	report.Final = m.Session().Snapshot()
	report.Landed = m.Session().Landed().String()

	return report, nil
}
