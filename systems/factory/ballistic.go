package factory

import (
	"math"

	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/automoto/confetti-cannon/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// BallisticParams are the physics inputs of one decay tween.
type BallisticParams struct {
	Velocity float64 // px/s
	Angle    float64 // degrees
	Gravity  float64 // px/s^2, pulls down the screen
	Friction float64 // per-step velocity loss, 0 is frictionless
}

// StartBallistic schedules the decay tween of a particle entity. The particle
// is launched from its current position and expires after decay seconds,
// counted in ticks of tickSeconds.
func StartBallistic(entry *donburi.Entry, params BallisticParams, decay, tickSeconds float64) {
	p := components.Particle.Get(entry)
	p.Angle = params.Angle
	p.Velocity = params.Velocity
	p.Gravity = params.Gravity
	p.Friction = params.Friction

	// The ribbon thins out toward the end of its life.
	shrink := gween.New(float32(p.Diameter), 0, float32(decay), ease.InQuart)

	components.Ballistic.SetValue(entry, components.BallisticData{
		Body: gamemath.NewProjectile(
			p.X, p.Y,
			params.Velocity, params.Angle,
			params.Gravity, cfg.Physics.GravityAngle,
			params.Friction, cfg.Physics.StepsPerSecond,
		),
		Shrink:      shrink,
		TickSeconds: tickSeconds,
		TotalTicks:  decayTicks(decay, tickSeconds),
	})
}

// decayTicks rounds the decay interval to whole ticks. Degenerate intervals
// expire on the first tick.
func decayTicks(decay, tickSeconds float64) int {
	n := math.Round(decay / tickSeconds)
	if math.IsNaN(n) || n < 1 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
