// Greeting on a background cycling between day and night.
package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go.creack.net/fluffybirb/sim"
	"go.creack.net/fluffybirb/sky"
)

const initialScreenWidth, initialScreenHeight = 640, 480

// Game implements ebiten.Game interface.
type Game struct {
	ui   *ebitenui.UI
	root *widget.Container
	bg   color.RGBA // Color of the current root background.

	runner *sim.Runner
}

func NewGame(runner *sim.Runner) *Game {
	face := text.NewGoXFace(bitmapfont.Face)

	bg := sky.Color(runner.Snapshot().Phase)
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(widget.NewText(
		widget.TextOpts.Text("Hello, world!", face, color.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	))

	return &Game{
		ui:     &ebitenui.UI{Container: root},
		root:   root,
		bg:     bg,
		runner: runner,
	}
}

// Update is called every tick, TPS is set to sim.TicksPerSecond.
func (g *Game) Update() error {
	g.runner.Send(sim.Tick)
	g.runner.Drain()
	// Only the phase matters here, the bird is not drawn.
	for len(g.runner.Messages) > 0 {
		<-g.runner.Messages
	}

	g.refreshBackground(g.runner.Snapshot().Phase)
	g.ui.Update()
	return nil
}

// refreshBackground rebuilds the root background only when the sky color changed.
// Returns true if it did.
func (g *Game) refreshBackground(phase float64) bool {
	c := sky.Color(phase)
	if c == g.bg {
		return false
	}
	g.bg = c
	g.root.BackgroundImage = image.NewNineSliceColor(c)
	return true
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	runner, err := sim.NewRunner(sim.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to create the simulation: %s.", err)
	}

	ebiten.SetTPS(sim.TicksPerSecond)
	ebiten.SetWindowTitle("Fluffy Birb")
	ebiten.SetWindowSize(initialScreenWidth, initialScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(NewGame(runner)); err != nil {
		log.Fatal(err)
	}
}
