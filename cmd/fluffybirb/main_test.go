package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/fluffybirb/sim"
	"go.creack.net/fluffybirb/view"
)

type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }

func newTestGame(t *testing.T) (*Game, *countingSound) {
	t.Helper()
	runner, err := sim.NewRunner(sim.DefaultConfig())
	require.NoError(t, err)
	sound := &countingSound{}
	return NewGame(runner, nil, sound), sound
}

func TestStepTick(t *testing.T) {
	g, sound := newTestGame(t)

	g.step(false)

	assert.Equal(t, sim.Stats{Ticks: 1}, g.runner.Stats())
	assert.InDelta(t, sim.Gravity, g.runner.Snapshot().BirdVY, 1e-12)
	assert.Zero(t, sound.plays)
	assert.False(t, g.flap.Active())
}

func TestStepBoostBeforeTick(t *testing.T) {
	g, sound := newTestGame(t)

	g.step(true)

	// The boost is applied first, then the tick adds gravity to it.
	w := g.runner.Snapshot()
	assert.Equal(t, sim.Stats{Ticks: 1, Boosts: 1}, g.runner.Stats())
	assert.InDelta(t, sim.BoostVelocity+sim.Gravity, w.BirdVY, 1e-12)
	assert.InDelta(t, 0.5+sim.BoostVelocity+sim.Gravity, w.BirdY, 1e-12)

	assert.Equal(t, 1, sound.plays)
	assert.True(t, g.flap.Active())
	assert.Empty(t, g.runner.Messages)
}

func TestStepFlapSettles(t *testing.T) {
	g, sound := newTestGame(t)

	g.step(true)
	for range int(view.FlapDuration*sim.TicksPerSecond) + 1 {
		g.step(false)
	}

	assert.False(t, g.flap.Active())
	assert.Equal(t, 1, sound.plays)

	g.step(true)
	assert.True(t, g.flap.Active())
	assert.Equal(t, 2, sound.plays)
}
