package burst

import (
	"fmt"
	"image/color"

	"github.com/automoto/confetti-cannon/gamemath"
)

// Color decides the color of each spawned particle. It is one of FixedColor,
// RangedColor or GeneratedColor and is resolved once per particle.
type Color interface {
	resolve(r *gamemath.Random, depth int) color.RGBA
}

// maxGeneratorDepth stops generators that keep returning generators.
const maxGeneratorDepth = 8

// FixedColor paints every particle the same.
type FixedColor struct {
	R, G, B int
}

// Channel is an inclusive range for one color channel.
type Channel struct {
	Min, Max int
}

// RangedColor samples each channel independently. A channel with Min == Max
// is a literal value.
type RangedColor struct {
	Red, Green, Blue Channel
}

// GeneratedColor is called once per particle and its result resolved.
type GeneratedColor func() Color

func (c FixedColor) resolve(_ *gamemath.Random, _ int) color.RGBA {
	return rgb(c.R, c.G, c.B)
}

func (c RangedColor) resolve(r *gamemath.Random, _ int) color.RGBA {
	return rgb(
		r.IntBetween(c.Red.Min, c.Red.Max),
		r.IntBetween(c.Green.Min, c.Green.Max),
		r.IntBetween(c.Blue.Min, c.Blue.Max),
	)
}

func (g GeneratedColor) resolve(r *gamemath.Random, depth int) color.RGBA {
	if g == nil || depth >= maxGeneratorDepth {
		return rgb(0, 0, 0)
	}
	c := g()
	if c == nil {
		return rgb(0, 0, 0)
	}
	return c.resolve(r, depth+1)
}

// Resolve picks the color of one particle. A nil Color is black.
func Resolve(c Color, r *gamemath.Random) color.RGBA {
	if c == nil {
		return rgb(0, 0, 0)
	}
	return c.resolve(r, 0)
}

// CSS formats c the way a canvas strokeStyle would, e.g. "rgb(10, 20, 30)".
func CSS(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Range is a convenience constructor for RangedColor.
func Range(red, green, blue [2]int) RangedColor {
	return RangedColor{
		Red:   Channel{Min: red[0], Max: red[1]},
		Green: Channel{Min: green[0], Max: green[1]},
		Blue:  Channel{Min: blue[0], Max: blue[1]},
	}
}

func rgb(r, g, b int) color.RGBA {
	return color.RGBA{R: clamp(r), G: clamp(g), B: clamp(b), A: 255}
}

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
