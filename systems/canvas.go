package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing surface the renderer issues primitives to.
type Canvas interface {
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
}

// ScreenCanvas draws onto an ebiten image.
type ScreenCanvas struct {
	Screen    *ebiten.Image
	AntiAlias bool
}

func (c ScreenCanvas) Clear() {
	c.Screen.Clear()
}

func (c ScreenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.Screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, c.AntiAlias)
}

func (c ScreenCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(c.Screen, float32(cx), float32(cy), float32(r), float32(width), clr, c.AntiAlias)
}
