package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/ledblocks/blockgame"
	"github.com/plus3/ledblocks/console"
	"github.com/plus3/ledblocks/scheduler"
)

type GameResult struct {
	Index int
	Score int
	Lines int
	Speed int
	Tick  uint64
}

type Report struct {
	// Configuration
	Config   blockgame.Config
	Realtime bool
	Interval time.Duration

	// Results
	Ticks         uint64
	Elapsed       time.Duration
	Games         []GameResult
	Mode          console.Mode
	Final         blockgame.Snapshot
	Landed        string
	Tasks         []scheduler.TaskStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# LED Blocks Simulation Report

## Configuration
- **Field:** {{.Config.Width}}x{{.Config.Height}}
- **Ticks per Frame:** {{.Config.TicksPerFrame}}
- **Speed:** {{.Config.InitialSpeed}} down to {{.Config.MinSpeed}}, every {{.Config.SpeedUpEvery}} points
- **Spawn Lateral:** {{.Config.SpawnLateral}}
- **Clock:** {{if .Realtime}}realtime, {{.Interval}} per tick{{else}}stepped{{end}}

## Results
- **Ticks:** {{.Ticks}}
- **Elapsed:** {{.Elapsed}}
- **Games Finished:** {{len .Games}}
{{- range .Games}}
  - game {{.Index}}: score {{.Score}}, lines {{.Lines}}, speed {{.Speed}}, ended at tick {{.Tick}}
{{- end}}

## Final State
- **Mode:** {{.Mode}}
- **Piece:** {{.Final.Shape}} rotation {{.Final.Rotation}} at advance {{.Final.Position.Advance}}, lateral {{.Final.Position.Lateral}}
- **Score:** {{.Final.Score}}
- **Lines:** {{.Final.Lines}}
- **Speed:** {{.Final.Speed}}

` + "```" + `
{{.Landed}}` + "```" + `

## Tasks
{{- range .Tasks}}
- **{{.Name}}** (bit {{printf "0x%02x" (bit .Bit)}}): {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}

## Memory Usage (Raw Bytes)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bit": func(b scheduler.TaskBit) uint32 {
			return uint32(b)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
