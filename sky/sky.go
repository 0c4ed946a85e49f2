// Package sky maps the day/night phase to a background color.
package sky

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	Day, _   = colorful.MakeColor(colornames.Skyblue)
	Night, _ = colorful.MakeColor(colornames.Indigo)
)

// Blend returns how far into the night the phase is: 0 at phase 0, 1 at phase 0.5.
func Blend(phase float64) float64 {
	return 0.5 - 0.5*math.Cos(phase*2*math.Pi)
}

// Colorful returns the interpolated sky color, channel by channel.
func Colorful(phase float64) colorful.Color {
	return Day.BlendRgb(Night, Blend(phase)).Clamped()
}

// Color returns the opaque background color for the phase.
func Color(phase float64) color.RGBA {
	r, g, b := Colorful(phase).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func Hex(phase float64) string {
	return Colorful(phase).Hex()
}

func Label(phase float64) string {
	if Blend(phase) < 0.5 {
		return "day"
	}
	return "night"
}

// Text returns a readable text color on top of the sky: white most of the day, dark at noon.
func Text(phase float64) color.RGBA {
	if Blend(phase) < 0.25 {
		return color.RGBA{R: 0x20, G: 0x20, B: 0x30, A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
