package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// Bird sprite, facing right.
//
//go:embed bird.png
var BirdPNG []byte

const BirdWidth, BirdHeight = 34, 24

// Bird decodes the embedded bird sprite.
func Bird() (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(BirdPNG))
	if err != nil {
		return nil, fmt.Errorf("decode bird sprite: %w", err)
	}
	return img, nil
}
