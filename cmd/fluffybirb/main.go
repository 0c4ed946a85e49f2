// Fluffy Birb: the bird drifts left, falls and flaps while the sky cycles between day and night.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go.creack.net/fluffybirb/assets"
	"go.creack.net/fluffybirb/chirp"
	"go.creack.net/fluffybirb/sim"
	"go.creack.net/fluffybirb/sky"
	"go.creack.net/fluffybirb/view"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

const initialScreenWidth, initialScreenHeight = 640, 480

// Sound is what the game plays on boost. Implemented by *chirp.Player.
type Sound interface {
	Play()
}

// Game implements ebiten.Game interface.
type Game struct {
	runner *sim.Runner
	bird   *ebiten.Image
	flap   *view.Flap
	chirp  Sound
}

func NewGame(runner *sim.Runner, bird *ebiten.Image, player Sound) *Game {
	return &Game{
		runner: runner,
		bird:   bird,
		flap:   view.NewFlap(),
		chirp:  player,
	}
}

func boostPressed() bool {
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Update is called every tick, TPS is set to sim.TicksPerSecond so one Update is one Tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.step(boostPressed())
	return nil
}

// step feeds one update worth of events to the runner: the boost first so the
// tick integrates it, then reacts to the resulting messages.
func (g *Game) step(boost bool) {
	if boost {
		g.runner.Send(sim.Boost)
	}
	g.runner.Send(sim.Tick)
	g.runner.Drain()

	for len(g.runner.Messages) > 0 {
		msg := <-g.runner.Messages
		switch msg.Type {
		case sim.MsgBoost:
			g.flap.Start()
			g.chirp.Play()
		case sim.MsgDropped:
			log.Printf("%s: %s", msg.Type, msg.Message)
		}
	}
	g.flap.Update(1.0 / sim.TicksPerSecond)
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.runner.Snapshot()
	screen.Fill(sky.Color(w.Phase))

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := g.bird.Bounds().Dx(), g.bird.Bounds().Dy()
	x, y := view.SpritePosition(w.BirdX, w.BirdY, sw, sh, bw, bh)

	// Squash and tilt around the center of the sprite.
	sx, sy := g.flap.Scale()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bw)/2, -float64(bh)/2)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(view.Tilt(w.BirdVY, g.runner.Config.TerminalVelocity))
	op.GeoM.Translate(x+float64(bw)/2, y+float64(bh)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.bird, op)

	g.drawHUD(screen, w)
}

func (g *Game) drawHUD(screen *ebiten.Image, w sim.World) {
	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(8, 8)
	textOp.LineSpacing = fontFace.Metrics().HLineGap + fontFace.Metrics().HAscent + fontFace.Metrics().HDescent
	textOp.ColorScale.ScaleWithColor(sky.Text(w.Phase))

	stats := g.runner.Stats()
	text.Draw(screen, fmt.Sprintf("Day %d (%s)\nFlaps: %d\nspace/up/w/click: flap, esc: quit", stats.Days+1, sky.Label(w.Phase), stats.Boosts), fontFace, textOp)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// fallbackBird draws a plain bird when the sprite can't be decoded.
func fallbackBird() *ebiten.Image {
	img := ebiten.NewImage(assets.BirdWidth, assets.BirdHeight)
	vector.DrawFilledCircle(img, assets.BirdWidth/2, assets.BirdHeight/2, assets.BirdHeight/2, color.RGBA{R: 0xf8, G: 0xd0, B: 0x30, A: 0xff}, true)
	vector.DrawFilledCircle(img, assets.BirdWidth*3/4, assets.BirdHeight/3, 3, color.Black, true)
	return img
}

func loadBird() *ebiten.Image {
	img, err := assets.Bird()
	if err != nil {
		log.Printf("Failed to load the bird sprite, using fallback: %s.", err)
		return fallbackBird()
	}
	return ebiten.NewImageFromImage(img)
}

func run() error {
	runner, err := sim.NewRunner(sim.DefaultConfig())
	if err != nil {
		return fmt.Errorf("create the simulation: %w", err)
	}

	player := chirp.NewPlayer()
	if err := player.Init(); err != nil {
		log.Printf("Failed to init audio, continuing without sound: %s.", err)
	}
	defer player.Close()

	ebiten.SetTPS(sim.TicksPerSecond)
	ebiten.SetWindowTitle("Fluffy Birb")
	ebiten.SetWindowSize(initialScreenWidth, initialScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(runner, loadBird(), player)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	// Through run so the deferred audio cleanup happens before exiting.
	if err := run(); err != nil {
		log.Fatalf("Failed to %s.", err)
	}
}
