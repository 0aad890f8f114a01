package blockgame

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("blockgame: invalid config")

// Config sizes the playing field and tunes the pace of the game.
//
// Width is the extent along the advance axis (the direction pieces fall in),
// Height the extent along the lateral axis. On the 4-module LED matrix the
// field is 32x8.
type Config struct {
	Width  int
	Height int

	// TicksPerFrame is the number of scheduler ticks per logical frame.
	TicksPerFrame int
	// InitialSpeed is the number of logical frames per gravity step at start.
	InitialSpeed int
	// MinSpeed is the floor the speed never drops below.
	MinSpeed int
	// SpeedUpEvery is the score interval at which the speed is decremented.
	SpeedUpEvery int
	// SpawnLateral is the lateral coordinate new pieces respawn at. It is
	// clamped to the field for taller poses.
	SpawnLateral int
}

// DefaultConfig returns the settings of the 32x8 LED matrix.
func DefaultConfig() Config {
	return Config{
		Width:         32,
		Height:        8,
		TicksPerFrame: 15,
		InitialSpeed:  40,
		MinSpeed:      5,
		SpeedUpEvery:  32,
		SpawnLateral:  4,
	}
}

// Validate checks the config can host every pose of the catalog.
func (c Config) Validate() error {
	switch {
	case c.Width <= MaxPoseExtent:
		return fmt.Errorf("%w: width %d must exceed %d", ErrInvalidConfig, c.Width, MaxPoseExtent)
	case c.Height < MaxPoseExtent:
		return fmt.Errorf("%w: height %d must be at least %d", ErrInvalidConfig, c.Height, MaxPoseExtent)
	case c.TicksPerFrame < 1:
		return fmt.Errorf("%w: ticks per frame %d must be positive", ErrInvalidConfig, c.TicksPerFrame)
	case c.MinSpeed < 1:
		return fmt.Errorf("%w: min speed %d must be positive", ErrInvalidConfig, c.MinSpeed)
	case c.InitialSpeed < c.MinSpeed:
		return fmt.Errorf("%w: initial speed %d below min speed %d", ErrInvalidConfig, c.InitialSpeed, c.MinSpeed)
	case c.SpeedUpEvery < 1:
		return fmt.Errorf("%w: speed-up interval %d must be positive", ErrInvalidConfig, c.SpeedUpEvery)
	case c.SpawnLateral < 0 || c.SpawnLateral >= c.Height:
		return fmt.Errorf("%w: spawn lateral %d outside [0, %d)", ErrInvalidConfig, c.SpawnLateral, c.Height)
	}
	return nil
}
