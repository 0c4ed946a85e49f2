// Terminal version of Fluffy Birb.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"go.creack.net/fluffybirb/sim"
	"go.creack.net/fluffybirb/sky"
	"go.creack.net/fluffybirb/view"
)

func tcellColor(phase float64) tcell.Color {
	c := sky.Color(phase)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// birdGlyph picks the bird character from its vertical velocity.
func birdGlyph(vy, terminal float64) rune {
	switch {
	case vy < 0:
		return '^'
	case vy >= terminal:
		return 'v'
	default:
		return '>'
	}
}

type Game struct {
	app *tview.Application

	skyView   *tview.Box
	stateView *tview.TextView
	logsView  *tview.TextView

	runner *sim.Runner

	ctx    context.Context
	cancel context.CancelFunc
}

func NewGame(ctx context.Context, runner *sim.Runner) *Game {
	app := tview.NewApplication()

	skyView := tview.NewBox()

	stateView := tview.NewTextView().SetDynamicColors(true)
	stateView.SetTitle("State").SetBorder(true)

	logsView := tview.NewTextView().SetDynamicColors(true)
	logsView.SetTitle("Logs").SetBorder(true)
	logsView.ScrollToEnd()
	logsView.SetMaxLines(200)

	rightPane := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(stateView, 0, 1, false).
		AddItem(logsView, 0, 2, false)

	flex := tview.NewFlex().
		AddItem(skyView, 0, 3, true).
		AddItem(rightPane, 32, 0, false)
	app.SetRoot(flex, true).SetFocus(skyView)

	ctx, cancel := context.WithCancel(ctx)

	g := &Game{
		app: app,

		skyView:   skyView,
		stateView: stateView,
		logsView:  logsView,

		runner: runner,
		ctx:    ctx,
		cancel: cancel,
	}
	skyView.SetDrawFunc(g.drawSky)
	return g
}

func (g *Game) Stop() {
	g.app.Stop()
	g.cancel()
	g.runner.Close()
}

func (g *Game) Init() {
	g.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			g.Stop()
			return nil
		case tcell.KeyUp:
			g.runner.Send(sim.Boost)
			return nil
		}
		switch event.Rune() {
		case ' ', 'w':
			g.runner.Send(sim.Boost)
			return nil
		case 'q':
			g.Stop()
			return nil
		}
		return event
	})

	go func() {
		for {
			select {
			case msg := <-g.runner.Messages:
				g.app.QueueUpdateDraw(func() {
					fmt.Fprintf(g.logsView, "[%s]%s[-] %s\n", msgColor(msg.Type), msg.Type, strings.TrimSuffix(msg.Message, "\n"))
				})
			case <-g.ctx.Done():
				return
			}
		}
	}()
}

func msgColor(mt sim.MessageType) string {
	switch mt {
	case sim.MsgBoost:
		return "yellow"
	case sim.MsgGround, sim.MsgCeiling:
		return "red"
	case sim.MsgDawn:
		return "skyblue"
	case sim.MsgDropped:
		return "orange"
	default:
		return "white"
	}
}

func (g *Game) drawSky(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	w := g.runner.Snapshot()
	style := tcell.StyleDefault.Background(tcellColor(w.Phase))
	for row := range height {
		for col := range width {
			screen.SetContent(x+col, y+row, ' ', nil, style)
		}
	}
	if col, row, ok := view.Cell(w.BirdX, w.BirdY, width, height); ok {
		screen.SetContent(x+col, y+row, birdGlyph(w.BirdVY, g.runner.Config.TerminalVelocity), nil, style.Foreground(tcell.ColorYellow).Bold(true))
	}
	return x, y, width, height
}

func (g *Game) drawState() {
	w := g.runner.Snapshot()
	stats := g.runner.Stats()

	g.stateView.Clear()
	fmt.Fprintf(g.stateView, "Day: %d (%s)\n", stats.Days+1, sky.Label(w.Phase))
	fmt.Fprintf(g.stateView, "Phase: %.3f\n", w.Phase)
	fmt.Fprintf(g.stateView, "Sky: %s\n", sky.Hex(w.Phase))
	fmt.Fprintf(g.stateView, "Bird: %.3f, %.3f\n", w.BirdX, w.BirdY)
	fmt.Fprintf(g.stateView, "Velocity: %.3f, %.3f\n", w.BirdVX, w.BirdVY)
	fmt.Fprintf(g.stateView, "Ticks: %d\n", stats.Ticks)
	fmt.Fprintf(g.stateView, "Flaps: %d\n", stats.Boosts)
	fmt.Fprintf(g.stateView, "\nspace/up/w: flap\nq/esc: quit\n")
}

// Loop runs the simulation and refreshes the screen until the game stops.
func (g *Game) Loop() {
	go func() {
		if err := g.runner.Tick(g.ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Ticker stopped: %s.", err)
		}
	}()
	go func() {
		if err := g.runner.Run(g.ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Simulation stopped: %s.", err)
		}
	}()
	go func() {
		ticker := time.NewTicker(g.runner.Config.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.app.QueueUpdateDraw(g.drawState)
			case <-g.ctx.Done():
				return
			}
		}
	}()
}

func main() {
	log.SetFlags(0)

	runner, err := sim.NewRunner(sim.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to create the simulation: %s.", err)
	}

	g := NewGame(context.Background(), runner)
	g.Init()
	g.Loop()

	if err := g.app.Run(); err != nil {
		log.Fatalf("Failed to run the terminal UI: %s.", err)
	}
	g.cancel()
}
