// Package sim holds the day/night cycle and the bird physics.
// Positions are fractions of the screen: x goes right, y goes down.
package sim

import (
	"fmt"
	"math"
)

type World struct {
	Phase  float64 // Position in the day/night cycle, [0,1).
	BirdX  float64
	BirdY  float64 // [0,1], 0 is the top.
	BirdVX float64
	BirdVY float64 // Positive is down.
}

// NewWorld returns the world as it is when the application starts.
func NewWorld() World {
	return DefaultConfig().NewWorld()
}

func (cfg Config) NewWorld() World {
	return World{
		Phase:  0,
		BirdX:  1,
		BirdY:  0.5,
		BirdVX: cfg.InitialVX,
		BirdVY: 0,
	}
}

func (w World) String() string {
	return fmt.Sprintf("phase=%.4f x=%.4f y=%.4f vx=%.4f vy=%.4f", w.Phase, w.BirdX, w.BirdY, w.BirdVX, w.BirdVY)
}

var defaultConfig = DefaultConfig()

// Step applies ev to w using the default constants.
func Step(w *World, ev Event) Outcome {
	return defaultConfig.Step(w, ev)
}

// Step applies ev to w. Unknown events are ignored.
func (cfg Config) Step(w *World, ev Event) Outcome {
	switch ev {
	case Tick:
		return cfg.tick(w)
	case Boost:
		w.BirdVY = cfg.BoostVelocity
		return Boosted
	default:
		return 0
	}
}

func (cfg Config) tick(w *World) Outcome {
	var out Outcome

	// Day/night cycle.
	prev := w.Phase
	w.Phase = math.Mod(w.Phase+cfg.PhaseIncrement(), 1)
	if w.Phase < 0 {
		w.Phase += 1
	}
	if w.Phase < prev {
		out |= Dawn
	}

	// Horizontal drift. Only the left edge wraps.
	w.BirdX += w.BirdVX
	if w.BirdX < 0 {
		w.BirdX = 1
		out |= Respawn
	}

	// Gravity, capped, no floor.
	w.BirdVY = min(w.BirdVY+cfg.Gravity, cfg.TerminalVelocity)

	w.BirdY += w.BirdVY
	if w.BirdY > 1 {
		w.BirdY = 1
		w.BirdVY = 0
		out |= Ground
	} else if w.BirdY < 0 {
		w.BirdY = 0
		w.BirdVY = 0
		out |= Ceiling
	}

	return out
}
