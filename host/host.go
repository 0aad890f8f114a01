// Package host runs a console.Machine in an Ebiten window. The LED matrix is
// drawn as a grid of dots and the arrow keys stand in for the four buttons.
package host

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/ledblocks/blockgame"
	"github.com/plus3/ledblocks/console"
	"github.com/plus3/ledblocks/debugui"
	debugui_ebiten "github.com/plus3/ledblocks/debugui/ebiten"
	"github.com/plus3/ledblocks/gfx"
)

const (
	DefaultPitch = 24
	Margin       = 16
	debugWidth   = 1280
	debugHeight  = 720
)

var (
	colorBackground = color.RGBA{12, 12, 12, 255}
	colorLEDOff     = color.RGBA{48, 16, 16, 255}
	colorLEDOn      = color.RGBA{255, 48, 32, 255}
)

var keyButtons = map[ebiten.Key]blockgame.Button{
	ebiten.KeyArrowLeft:  blockgame.ButtonLeft,
	ebiten.KeyArrowRight: blockgame.ButtonRight,
	ebiten.KeyArrowUp:    blockgame.ButtonUp,
	ebiten.KeyArrowDown:  blockgame.ButtonDown,
}

// ButtonForKey maps a keyboard key to the device button it stands in for.
func ButtonForKey(key ebiten.Key) (blockgame.Button, bool) {
	b, ok := keyButtons[key]
	return b, ok
}

// TicksPerUpdate returns how many scheduler periods of length interval fit
// into one Ebiten update at tps updates per second. It is at least 1.
func TicksPerUpdate(interval time.Duration, tps int) int32 {
	if interval <= 0 || tps <= 0 {
		return 1
	}
	ticks := (time.Second/time.Duration(tps) + interval/2) / interval
	return int32(max(ticks, 1))
}

// Options configures the window.
type Options struct {
	Title string
	// Pitch is the distance between LED centres in pixels.
	Pitch int
	// TickInterval is the simulated timer period.
	TickInterval time.Duration
	// Debug adds the ImGui panels.
	Debug bool
}

// Game implements ebiten.Game for a machine.
type Game struct {
	machine  *console.Machine
	frame    *gfx.FrameBuffer
	pitch    int
	controls *debugui.ControlState
	layer    *debugui.Layer
	backend  *debugui_ebiten.ImguiBackend
}

// New creates the window and registers the game as a renderer of machine.
func New(machine *console.Machine, opts Options) *Game {
	if opts.Pitch <= 0 {
		opts.Pitch = DefaultPitch
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = console.DefaultTickInterval
	}

	cfg := machine.Session().Config()
	g := &Game{
		machine: machine,
		frame:   gfx.NewFrameBuffer(cfg.Width, cfg.Height),
		pitch:   opts.Pitch,
		controls: &debugui.ControlState{
			TicksPerUpdate: TicksPerUpdate(opts.TickInterval, ebiten.TPS()),
		},
	}
	machine.AddRenderer(g)

	width, height := g.matrixSize()
	if opts.Debug {
		g.backend = debugui_ebiten.NewImguiBackend(opts.Title, debugWidth, debugHeight)
		g.layer = debugui.NewConsoleLayer(machine, g.controls)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(opts.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return g
}

// Run blocks until the window is closed.
func (g *Game) Run() error {
	return ebiten.RunGame(g)
}

// Render copies the frame pushed by the machine.
func (g *Game) Render(fb *gfx.FrameBuffer) {
	g.frame.CopyFrom(fb)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.layer == nil || !g.layer.Input().WantCaptureKeyboard {
		for key, b := range keyButtons {
			if inpututil.IsKeyJustPressed(key) {
				g.machine.Press(b)
			}
		}
		if g.layer != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			g.layer.SetHidden(!g.layer.Hidden())
		}
	}

	switch {
	case !g.controls.Paused:
		for i := int32(0); i < g.controls.TicksPerUpdate; i++ {
			g.machine.Step()
		}
	case g.controls.TakeStep():
		g.machine.Step()
	}

	if g.backend != nil {
		g.backend.Frame(g.layer)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	originX, originY := float32(Margin), float32(Margin)
	if g.backend != nil {
		bounds := screen.Bounds()
		width, height := g.matrixSize()
		originX = float32(bounds.Dx()-width)/2 + Margin
		originY = float32(bounds.Dy()-height) - Margin
	}

	pitch := float32(g.pitch)
	radius := pitch * 0.4
	for y := 0; y < g.frame.Height(); y++ {
		for x := 0; x < g.frame.Width(); x++ {
			c := colorLEDOff
			if g.frame.Pixel(x, y) {
				c = colorLEDOn
			}
			cx := originX + pitch*float32(x) + pitch/2
			cy := originY + pitch*float32(y) + pitch/2
			vector.DrawFilledCircle(screen, cx, cy, radius, c, true)
		}
	}

	if g.backend != nil {
		g.backend.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.matrixSize()
}

func (g *Game) matrixSize() (int, int) {
	return g.frame.Width()*g.pitch + 2*Margin, g.frame.Height()*g.pitch + 2*Margin
}
