// Package burst describes a confetti burst: which options a caller may set,
// how layers of defaults are merged, and how particle colors are chosen.
package burst

import (
	"math"

	cfg "github.com/automoto/confetti-cannon/config"
)

// Options are the recognised fire options. Nil fields are unset and fall back
// to the next layer of defaults.
type Options struct {
	X, Y     *float64 // origin in CSS pixels, multiplied by DPR at spawn
	Angle    *float64 // degrees
	Amount   *int
	Velocity *float64 // peak launch speed, px/s
	Spread   *float64 // degrees
	Gravity  *float64 // px/s^2
	Decay    *float64 // seconds
	Friction *float64 // unset: sampled per particle
	DPR      *float64
	Color    Color
}

// Params is a fully resolved burst.
type Params struct {
	X, Y        float64
	Angle       float64
	Amount      int
	Velocity    float64
	Spread      float64
	Gravity     float64
	Decay       float64
	Friction    float64
	HasFriction bool
	DPR         float64
	Color       Color
}

// Float returns a pointer to v, for filling Options.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for filling Options.
func Int(v int) *int { return &v }

// Merge returns base with every field set in override replacing it.
// Neither argument is modified.
func Merge(base, override Options) Options {
	out := base
	pick(&out.X, override.X)
	pick(&out.Y, override.Y)
	pick(&out.Angle, override.Angle)
	pick(&out.Velocity, override.Velocity)
	pick(&out.Spread, override.Spread)
	pick(&out.Gravity, override.Gravity)
	pick(&out.Decay, override.Decay)
	pick(&out.Friction, override.Friction)
	pick(&out.DPR, override.DPR)
	pick(&out.Amount, override.Amount)
	if override.Color != nil {
		out.Color = override.Color
	}
	return out
}

func pick[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Defaults is the global layer: centre of a width x height device-pixel
// surface, config burst defaults and the given palette color.
func Defaults(width, height int, dpr float64, palette Color) Options {
	if dpr <= 0 || math.IsNaN(dpr) {
		dpr = 1
	}
	return Options{
		X:        Float(float64(width) / dpr / 2),
		Y:        Float(float64(height) / dpr / 2),
		Angle:    Float(cfg.Burst.Angle),
		Amount:   Int(cfg.Burst.Amount),
		Velocity: Float(cfg.Burst.Velocity),
		Spread:   Float(cfg.Burst.Spread),
		Gravity:  Float(cfg.Burst.Gravity),
		Decay:    Float(cfg.Burst.Decay),
		DPR:      Float(dpr),
		Color:    palette,
	}
}

// Params resolves o. Unset numeric fields are zero, an unset DPR is 1.
func (o Options) Params() Params {
	p := Params{
		X:        value(o.X),
		Y:        value(o.Y),
		Angle:    value(o.Angle),
		Velocity: value(o.Velocity),
		Spread:   value(o.Spread),
		Gravity:  value(o.Gravity),
		Decay:    value(o.Decay),
		DPR:      1,
		Color:    o.Color,
	}
	if o.Amount != nil {
		p.Amount = *o.Amount
	}
	if o.Friction != nil {
		p.Friction = *o.Friction
		p.HasFriction = true
	}
	if o.DPR != nil {
		p.DPR = *o.DPR
	}
	return p
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
