package main

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/plus3/ledblocks/blockgame"
	"github.com/plus3/ledblocks/console"
	"github.com/urfave/cli/v2"
)

// press is a button edge scheduled before a given tick.
type press struct {
	Tick   int
	Button blockgame.Button
}

var buttonNames = map[string]blockgame.Button{
	"left":  blockgame.ButtonLeft,
	"right": blockgame.ButtonRight,
	"up":    blockgame.ButtonUp,
	"down":  blockgame.ButtonDown,
}

func gameConfig(c *cli.Context) blockgame.Config {
	return blockgame.Config{
		Width:         c.Int("width"),
		Height:        c.Int("height"),
		TicksPerFrame: c.Int("ticks-per-frame"),
		InitialSpeed:  c.Int("speed"),
		MinSpeed:      c.Int("min-speed"),
		SpeedUpEvery:  c.Int("speed-up-every"),
		SpawnLateral:  c.Int("spawn-lateral"),
	}
}

func machineOptions(c *cli.Context, logger *log.Logger) (console.Options, error) {
	cfg := gameConfig(c)
	if err := cfg.Validate(); err != nil {
		return console.Options{}, err
	}

	src, err := pieceSource(c.String("sequence"), c.Uint64("seed"))
	if err != nil {
		return console.Options{}, err
	}

	return console.Options{
		Game:         cfg,
		Source:       src,
		GameOverHold: uint32(c.Uint("hold")),
		QueueSize:    console.DefaultQueueSize,
		Logger:       logger,
	}, nil
}

// pieceSource returns a Sequence when sequence is set, a seeded source when
// seed is non-zero and nil otherwise.
func pieceSource(sequence string, seed uint64) (blockgame.Source, error) {
	if sequence != "" {
		var values []uint32
		for _, field := range strings.Split(sequence, ",") {
			v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid sequence value %q: %w", field, err)
			}
			values = append(values, uint32(v))
		}
		return blockgame.NewSequence(values...), nil
	}
	if seed != 0 {
		return blockgame.NewRandSource(seed), nil
	}
	return nil, nil
}

// parsePresses parses TICK:BUTTON specs and orders them by tick.
func parsePresses(specs []string) ([]press, error) {
	presses := make([]press, 0, len(specs))
	for _, spec := range specs {
		tickStr, name, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("invalid press %q: want TICK:BUTTON", spec)
		}

		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("invalid press %q: bad tick", spec)
		}

		b, ok := buttonNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("invalid press %q: unknown button %q", spec, name)
		}

		presses = append(presses, press{Tick: tick, Button: b})
	}

	sort.SliceStable(presses, func(i, j int) bool {
		return presses[i].Tick < presses[j].Tick
	})
	return presses, nil
}
