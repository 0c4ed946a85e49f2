package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	FlapSquash   = 0.6  // Vertical scale right after a boost.
	FlapDuration = 0.35 // Seconds to get back to the rest shape.
)

// Flap squashes the bird on boost and springs it back to its rest shape.
// There is no global animation manager, the owner calls Update every tick.
type Flap struct {
	tween *gween.Tween
	scale float32
}

func NewFlap() *Flap {
	return &Flap{scale: 1}
}

// Start (re)starts the animation from the squashed shape.
func (f *Flap) Start() {
	f.tween = gween.New(FlapSquash, 1, FlapDuration, ease.OutBack)
	f.scale = FlapSquash
}

// Update advances the animation by dt seconds.
func (f *Flap) Update(dt float32) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(dt)
	f.scale = v
	if done {
		f.tween = nil
		f.scale = 1
	}
}

func (f *Flap) Active() bool { return f.tween != nil }

// Scale returns the sprite scale. Squashing keeps the area roughly constant.
func (f *Flap) Scale() (sx, sy float64) {
	sy = float64(f.scale)
	return 2 - sy, sy
}
