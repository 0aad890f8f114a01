// Package console runs the block game the way the LED-matrix device does:
// a display task and a buttons task share a scheduler, and a mode switch
// decides whether the display is idle, playing a game or holding the final
// frame of a finished one.
package console

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/plus3/ledblocks/blockgame"
	"github.com/plus3/ledblocks/gfx"
	"github.com/plus3/ledblocks/scheduler"
)

// Task bits of the two device tasks.
const (
	TaskDisplay scheduler.TaskBit = 0x01
	TaskButtons scheduler.TaskBit = 0x02
)

// TimerGameOver holds the final frame after a game ends.
const TimerGameOver scheduler.TimerID = 0

const (
	// DefaultTickInterval is the period of the device timer interrupt.
	DefaultTickInterval = time.Millisecond
	// DefaultGameOverHold is three seconds of device ticks.
	DefaultGameOverHold = 3000
	// DefaultQueueSize bounds the button events waiting for the buttons task.
	DefaultQueueSize = 8
)

// Mode is what the display is currently doing.
type Mode int

const (
	ModeIdle Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Options configures a Machine.
type Options struct {
	Game blockgame.Config
	// Source picks the pieces. Nil seeds a random source from the clock.
	Source blockgame.Source
	// GameOverHold is the number of ticks the final frame stays up.
	GameOverHold uint32
	// QueueSize bounds pending button presses. Zero means DefaultQueueSize.
	QueueSize int
	Logger    *log.Logger
}

// DefaultOptions returns the device settings.
func DefaultOptions() Options {
	return Options{
		Game:         blockgame.DefaultConfig(),
		GameOverHold: DefaultGameOverHold,
		QueueSize:    DefaultQueueSize,
	}
}

// Machine owns the scheduler, the session and the button queue. Press may be
// called from any goroutine; everything else belongs to the goroutine that
// drives the scheduler.
type Machine struct {
	sched     *scheduler.Scheduler
	session   *blockgame.Session
	buttons   chan blockgame.Button
	renderers []blockgame.Renderer
	logger    *log.Logger
	hold      uint32

	mode       Mode
	games      int
	last       blockgame.Summary
	onGameOver func(blockgame.Summary)
	onIdle     func()
}

// New builds a machine in idle mode with both tasks registered.
func New(opts Options) (*Machine, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Source == nil {
		opts.Source = blockgame.NewRandSource(uint64(time.Now().UnixNano()))
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	m := &Machine{
		sched:   scheduler.New(),
		buttons: make(chan blockgame.Button, opts.QueueSize),
		logger:  opts.Logger,
		hold:    opts.GameOverHold,
	}

	session, err := blockgame.New(opts.Game, opts.Source, blockgame.RendererFunc(m.render), opts.Logger)
	if err != nil {
		return nil, err
	}
	session.OnGameOver(m.gameOver)
	m.session = session

	m.sched.Register(TaskDisplay, &displayTask{m: m})
	m.sched.Register(TaskButtons, &buttonsTask{m: m})

	return m, nil
}

// AddRenderer adds r to the renderers that receive every frame.
func (m *Machine) AddRenderer(r blockgame.Renderer) {
	m.renderers = append(m.renderers, r)
}

// OnGameOver registers fn to be called with the summary of each finished game.
func (m *Machine) OnGameOver(fn func(blockgame.Summary)) {
	m.onGameOver = fn
}

// OnIdle registers fn to be called each time the game-over hold expires and
// the machine is back in idle mode.
func (m *Machine) OnIdle(fn func()) {
	m.onIdle = fn
}

// Press queues a button edge for the buttons task. It never blocks; when the
// queue is full the press is dropped and false is returned.
func (m *Machine) Press(b blockgame.Button) bool {
	select {
	case m.buttons <- b:
		return true
	default:
		m.logger.Printf("button queue full, dropped %s", b)
		return false
	}
}

// Step runs one timer period synchronously.
func (m *Machine) Step() {
	m.sched.Step()
}

// Run drives the machine off a real-time ticker until ctx is cancelled.
func (m *Machine) Run(ctx context.Context, interval time.Duration) {
	m.sched.Run(ctx, interval)
}

// Mode returns the current display mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Session returns the game session.
func (m *Machine) Session() *blockgame.Session {
	return m.session
}

// Scheduler returns the scheduler running the tasks.
func (m *Machine) Scheduler() *scheduler.Scheduler {
	return m.sched
}

// Games returns the number of finished games.
func (m *Machine) Games() int {
	return m.games
}

// LastSummary returns the summary of the most recent finished game.
func (m *Machine) LastSummary() (blockgame.Summary, bool) {
	return m.last, m.games > 0
}

func (m *Machine) render(fb *gfx.FrameBuffer) {
	for _, r := range m.renderers {
		r.Render(fb)
	}
}

func (m *Machine) startGame() {
	m.logger.Printf("starting game")
	m.mode = ModePlaying
	m.session.Start()
}

func (m *Machine) enterIdle() {
	m.mode = ModeIdle
	m.sched.Timers().Stop(TimerGameOver)
	display := m.session.Display()
	display.Clear()
	m.render(display)

	if m.onIdle != nil {
		m.onIdle()
	}
}

func (m *Machine) gameOver(summary blockgame.Summary) {
	m.mode = ModeGameOver
	m.games++
	m.last = summary
	m.sched.Timers().Set(TimerGameOver, m.hold)

	if m.onGameOver != nil {
		m.onGameOver(summary)
	}
}

func (m *Machine) handleButton(b blockgame.Button) {
	switch m.mode {
	case ModeIdle:
		if b == blockgame.ButtonDown {
			m.startGame()
		}
	case ModePlaying:
		m.session.OnButton(b)
	}
}

type displayTask struct {
	m *Machine
}

func (t *displayTask) Execute(frame *scheduler.Frame) {
	switch t.m.mode {
	case ModePlaying:
		t.m.session.OnTick()
	case ModeGameOver:
		if frame.Timers.Expired(TimerGameOver) {
			t.m.enterIdle()
		}
	}
}

type buttonsTask struct {
	m *Machine
}

func (t *buttonsTask) Execute(*scheduler.Frame) {
	for {
		select {
		case b := <-t.m.buttons:
			t.m.handleButton(b)
		default:
			return
		}
	}
}
