// Package blockgame implements the falling-block game played on the LED matrix.
//
// A Session owns the live display buffer and a separate landed field holding
// every pixel that stopped falling. The host calls OnTick once per scheduler
// tick and OnButton once per button edge, both from the same goroutine.
// Pieces fall along the advance axis (x of the frame buffer) and are moved
// along the lateral axis (y).
package blockgame

import (
	"io"
	"log"

	"github.com/plus3/ledblocks/gfx"
)

// State is the phase of a session.
type State int

const (
	// StateIdle is the state of a session that was never started.
	StateIdle State = iota
	// StateFalling is the state of a running game.
	StateFalling
	// StateGameOver is terminal until Start is called again.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFalling:
		return "falling"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Position places a pose on the field.
type Position struct {
	Advance int
	Lateral int
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	State       State
	Shape       Shape
	Rotation    int
	Position    Position
	TickCounter int
	SpeedStep   int
	Speed       int
	Score       int
	Lines       int
}

// Summary describes a finished game.
type Summary struct {
	Score int
	Lines int
	Speed int
}

// Session is one game. It is not safe for concurrent use.
type Session struct {
	cfg      Config
	src      Source
	renderer Renderer
	logger   *log.Logger

	display *gfx.FrameBuffer
	landed  *gfx.FrameBuffer

	shape        Shape
	currentPose  gfx.Tile
	previousPose gfx.Tile

	pos         Position
	previousPos Position
	rotation    int
	previousRot int
	tickCounter int
	speedStep   int
	speed       int
	score       int
	lines       int
	state       State
	onGameOver  func(Summary)
}

// New creates a session. A nil renderer discards frames and a nil logger
// discards log output.
func New(cfg Config, src Source, renderer Renderer, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = RendererFunc(func(*gfx.FrameBuffer) {})
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Session{
		cfg:      cfg,
		src:      src,
		renderer: renderer,
		logger:   logger,
		display:  gfx.NewFrameBuffer(cfg.Width, cfg.Height),
		landed:   gfx.NewFrameBuffer(cfg.Width, cfg.Height),
		speed:    cfg.InitialSpeed,
	}, nil
}

// Start clears both buffers, resets the counters, loads the first piece at
// the spawn corner and renders it. Calling Start again restarts the game.
func (s *Session) Start() {
	s.display.Clear()
	s.landed.Clear()

	s.pos = Position{}
	s.rotation = 0
	s.tickCounter = 0
	s.speed = s.cfg.InitialSpeed
	s.speedStep = 0
	s.score = 0
	s.lines = 0
	s.state = StateFalling

	s.SelectNewBlock()
	s.LoadBlock()

	s.display.PlaceTile(s.pos.Advance, s.pos.Lateral, s.currentPose, true)

	s.previousPose = s.currentPose
	s.previousPos = s.pos
	s.previousRot = s.rotation

	s.renderer.Render(s.display)
}

// OnGameOver registers fn to be called once when the game ends.
func (s *Session) OnGameOver(fn func(Summary)) {
	s.onGameOver = fn
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Config returns the configuration the session was created with.
func (s *Session) Config() Config {
	return s.cfg
}

// Display returns the buffer handed to the renderer.
func (s *Session) Display() *gfx.FrameBuffer {
	return s.display
}

// Landed returns the field of pixels that stopped falling.
func (s *Session) Landed() *gfx.FrameBuffer {
	return s.landed
}

// CurrentPose returns a copy of the falling pose.
func (s *Session) CurrentPose() gfx.Tile {
	return s.currentPose
}

// Snapshot copies the observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:       s.state,
		Shape:       s.shape,
		Rotation:    s.rotation,
		Position:    s.pos,
		TickCounter: s.tickCounter,
		SpeedStep:   s.speedStep,
		Speed:       s.speed,
		Score:       s.score,
		Lines:       s.lines,
	}
}

func (s *Session) maxLateral() int {
	return s.cfg.Height - s.currentPose.Height()
}

func (s *Session) clampLateral() {
	s.pos.Lateral = max(0, min(s.pos.Lateral, s.maxLateral()))
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	summary := Summary{Score: s.score, Lines: s.lines, Speed: s.speed}
	s.logger.Printf("game over: score=%d lines=%d speed=%d", summary.Score, summary.Lines, summary.Speed)
	s.renderer.Render(s.display)
	if s.onGameOver != nil {
		s.onGameOver(summary)
	}
}
