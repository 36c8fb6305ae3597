package systems

import (
	"math"

	"github.com/automoto/confetti-cannon/burst"
	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/automoto/confetti-cannon/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is a mouse or touch event in device pixels.
type PointerEvent struct {
	Kind  PointerKind
	X, Y  float64
	Touch bool
}

// HandlePointer applies ev to the aim state. Releasing a gesture returns the
// fire options for it: the longer the drag, the bigger and faster the burst,
// fired opposite to the drag direction from where the drag started.
func HandlePointer(aim *components.AimData, ev PointerEvent) (burst.Options, bool) {
	switch ev.Kind {
	case PointerDown:
		aim.Origin = math2.Vec2{X: ev.X, Y: ev.Y}
		aim.Drawing = true
		// mouse presses come with a move event, touch starts do not
		if ev.Touch {
			moveTo(aim, ev.X, ev.Y)
		}
	case PointerMove:
		moveTo(aim, ev.X, ev.Y)
	case PointerUp:
		if !aim.Drawing {
			return burst.Options{}, false
		}
		aim.Drawing = false
		return GestureOptions(aim.Origin.X, aim.Origin.Y, aim.Tip.X, aim.Tip.Y), true
	}
	return burst.Options{}, false
}

func moveTo(aim *components.AimData, x, y float64) {
	aim.Tip = math2.Vec2{X: x, Y: y}
	aim.Pointer = aim.Tip
	aim.HasPointer = true
}

// GestureOptions converts a drag from (x0,y0) to (x1,y1) into fire options.
// Coordinates are already device pixels, so DPR is 1.
func GestureOptions(x0, y0, x1, y1 float64) burst.Options {
	length := gamemath.Length(x0, y0, x1, y1)
	angle := gamemath.DegAngle(x0, y0, x1, y1) + cfg.Gesture.AngleOffset

	amount := int(math.Ceil(length/cfg.Gesture.AmountDivisor + cfg.Gesture.AmountBase))
	velocity := length * cfg.Gesture.VelocityFactor

	return burst.Options{
		X:        burst.Float(x0),
		Y:        burst.Float(y0),
		Angle:    burst.Float(angle),
		Amount:   burst.Int(amount),
		Velocity: burst.Float(velocity),
		DPR:      burst.Float(1),
	}
}
