package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ledblocks/debugui"
	debugui_ebiten "github.com/plus3/ledblocks/debugui/ebiten"
)

// Game implements ebiten.Game and renders a debug layer over the screen.
type Game struct {
	layer   *debugui.Layer
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.backend.Frame(g.layer)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Debug Layer Example", 1280, 720)

	layer := debugui.NewLayer(debugui.PanelFunc(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from the debug layer!")
		imgui.End()
	}))

	game := &Game{layer: layer, backend: backend}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
