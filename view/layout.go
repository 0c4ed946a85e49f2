// Package view turns the world fractions into screen coordinates.
package view

import "math"

// SpritePosition returns the top-left corner of a sprite placed at the given fractions of a canvas.
// Fraction 0 puts the sprite against the left/top edge, 1 against the right/bottom edge.
func SpritePosition(fx, fy float64, canvasW, canvasH, spriteW, spriteH int) (x, y float64) {
	return fx * float64(max(canvasW-spriteW, 0)), fy * float64(max(canvasH-spriteH, 0))
}

// Cell returns the terminal cell for the given fractions.
// ok is false when the position falls outside of the grid, which happens when
// the bird drifts past the right edge.
func Cell(fx, fy float64, cols, rows int) (col, row int, ok bool) {
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	col = int(math.Round(fx * float64(cols-1)))
	row = int(math.Round(fy * float64(rows-1)))
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return col, row, false
	}
	return col, row, true
}

const (
	maxTiltUp   = -math.Pi / 6
	maxTiltDown = math.Pi / 4
)

// Tilt returns the sprite rotation, in radians, for the vertical velocity.
// Nose up while rising, nose down when falling at terminal velocity.
func Tilt(vy, terminal float64) float64 {
	if terminal <= 0 {
		return 0
	}
	a := vy / terminal * maxTiltDown
	return min(max(a, maxTiltUp), maxTiltDown)
}
