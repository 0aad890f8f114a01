package main

import (
	"io"
	"log"
	"os"

	"github.com/plus3/ledblocks/blockgame"
	"github.com/plus3/ledblocks/console"
	"github.com/plus3/ledblocks/host"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "ledblocks"
	app.Usage = "Falling-block game for a 32x8 LED matrix"
	app.Version = "1.0.0"

	defaults := blockgame.DefaultConfig()

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.IntFlag{
			Name:    "width",
			EnvVars: []string{"LEDBLOCKS_WIDTH"},
			Value:   defaults.Width,
			Usage:   "field extent along the falling direction",
		},
		&cli.IntFlag{
			Name:    "height",
			EnvVars: []string{"LEDBLOCKS_HEIGHT"},
			Value:   defaults.Height,
			Usage:   "field extent across the falling direction",
		},
		&cli.IntFlag{
			Name:    "ticks-per-frame",
			EnvVars: []string{"LEDBLOCKS_TICKS_PER_FRAME"},
			Value:   defaults.TicksPerFrame,
			Usage:   "scheduler ticks per logical frame",
		},
		&cli.IntFlag{
			Name:    "speed",
			EnvVars: []string{"LEDBLOCKS_SPEED"},
			Value:   defaults.InitialSpeed,
			Usage:   "logical frames per gravity step at the start of a game",
		},
		&cli.IntFlag{
			Name:    "min-speed",
			EnvVars: []string{"LEDBLOCKS_MIN_SPEED"},
			Value:   defaults.MinSpeed,
			Usage:   "fastest gravity step",
		},
		&cli.IntFlag{
			Name:    "speed-up-every",
			EnvVars: []string{"LEDBLOCKS_SPEED_UP_EVERY"},
			Value:   defaults.SpeedUpEvery,
			Usage:   "score interval between speed-ups",
		},
		&cli.IntFlag{
			Name:    "spawn-lateral",
			EnvVars: []string{"LEDBLOCKS_SPAWN_LATERAL"},
			Value:   defaults.SpawnLateral,
			Usage:   "lateral position new pieces spawn at",
		},
		&cli.Uint64Flag{
			Name:    "seed",
			EnvVars: []string{"LEDBLOCKS_SEED"},
			Usage:   "seed for the piece generator (0 picks one from the clock)",
		},
		&cli.StringFlag{
			Name:  "sequence",
			Usage: "comma separated piece values to cycle through instead of a random source",
		},
		&cli.DurationFlag{
			Name:    "interval",
			EnvVars: []string{"LEDBLOCKS_INTERVAL"},
			Value:   console.DefaultTickInterval,
			Usage:   "scheduler tick period",
		},
		&cli.UintFlag{
			Name:  "hold",
			Value: console.DefaultGameOverHold,
			Usage: "ticks the final frame stays up after a game ends",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "play",
			Usage:       "Play in a window",
			Description: "Arrow keys stand in for the buttons. Down starts a game, Escape quits.",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "pitch",
					Value: host.DefaultPitch,
					Usage: "pixels between LED centres",
				},
				&cli.BoolFlag{
					Name:  "debug",
					Usage: "show the debug panels",
				},
			},
			Action: func(c *cli.Context) error {
				logger := newLogger(c)

				opts, err := machineOptions(c, logger)
				if err != nil {
					return cli.Exit(err, 1)
				}

				m, err := console.New(opts)
				if err != nil {
					return cli.Exit(err, 1)
				}

				game := host.New(m, host.Options{
					Title:        "LED Blocks",
					Pitch:        c.Int("pitch"),
					TickInterval: c.Duration("interval"),
					Debug:        c.Bool("debug"),
				})
				if err := game.Run(); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "sim",
			Usage:       "Run games headless and print a report",
			Description: "Without --realtime the scheduler is stepped as fast as possible, which makes runs with a fixed --seed or --sequence reproducible.",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "ticks",
					Value: 1_000_000,
					Usage: "maximum number of scheduler ticks",
				},
				&cli.IntFlag{
					Name:  "games",
					Value: 1,
					Usage: "stop after this many finished games",
				},
				&cli.StringSliceFlag{
					Name:  "press",
					Usage: "button press as TICK:BUTTON, e.g. 120:left (repeatable)",
				},
				&cli.BoolFlag{
					Name:  "trace",
					Usage: "print every rendered frame",
				},
				&cli.BoolFlag{
					Name:  "realtime",
					Usage: "drive the scheduler off a real ticker at --interval",
				},
				&cli.DurationFlag{
					Name:  "duration",
					Usage: "stop a realtime run after this long (0 runs until --games)",
				},
			},
			Action: func(c *cli.Context) error {
				logger := newLogger(c)

				opts, err := machineOptions(c, logger)
				if err != nil {
					return cli.Exit(err, 1)
				}

				presses, err := parsePresses(c.StringSlice("press"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				var trace io.Writer
				if c.Bool("trace") {
					trace = c.App.Writer
				}

				report, err := runSim(c.Context, simOptions{
					Machine:  opts,
					Ticks:    c.Int("ticks"),
					Games:    c.Int("games"),
					Presses:  presses,
					Trace:    trace,
					Realtime: c.Bool("realtime"),
					Interval: c.Duration("interval"),
					Duration: c.Duration("duration"),
				})
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := report.Generate(c.App.Writer); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
		logger.SetFlags(log.LstdFlags)
	}
	return logger
}
