package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"go.creack.net/fluffybirb/sim"
)

func TestBirdGlyph(t *testing.T) {
	assert.Equal(t, '^', birdGlyph(sim.BoostVelocity, sim.TerminalVelocity))
	assert.Equal(t, '>', birdGlyph(0, sim.TerminalVelocity))
	assert.Equal(t, '>', birdGlyph(sim.Gravity, sim.TerminalVelocity))
	assert.Equal(t, 'v', birdGlyph(sim.TerminalVelocity, sim.TerminalVelocity))
}

func TestBirdGlyphCustomTerminal(t *testing.T) {
	// Falling at a custom cap that is above the default one.
	assert.Equal(t, '>', birdGlyph(sim.TerminalVelocity, 0.05))
	assert.Equal(t, 'v', birdGlyph(0.05, 0.05))
	// And below it.
	assert.Equal(t, 'v', birdGlyph(0.01, 0.01))
}

func TestTcellColor(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(135, 206, 235), tcellColor(0))
	assert.Equal(t, tcell.NewRGBColor(75, 0, 130), tcellColor(0.5))
}

func TestMsgColor(t *testing.T) {
	assert.Equal(t, "red", msgColor(sim.MsgGround))
	assert.Equal(t, "white", msgColor(sim.MessageType(0)))
}
