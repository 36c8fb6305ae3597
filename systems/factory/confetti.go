package factory

import (
	"log"

	"github.com/automoto/confetti-cannon/burst"
	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/automoto/confetti-cannon/gamemath"
	"github.com/automoto/confetti-cannon/store"
	"github.com/yohamta/donburi/ecs"
)

// CreateConfettiBurst spawns p.Amount particles at the burst origin, inserts
// them into st and launches each on its own decay tween. It returns the new
// ids in spawn order. An amount of zero or less spawns nothing.
func CreateConfettiBurst(ecs *ecs.ECS, st *store.Store, rnd *gamemath.Random, p burst.Params) []components.ParticleID {
	dpr, tickSeconds, debug := spawnContext(ecs)

	x := p.X * p.DPR
	y := p.Y * p.DPR

	ids := make([]components.ParticleID, 0, max(p.Amount, 0))
	for i := 0; i < p.Amount; i++ {
		r := rnd.Between(cfg.Particle.Radius[0], cfg.Particle.Radius[1]) * dpr
		d := rnd.Between(cfg.Particle.Diameter[0], cfg.Particle.Diameter[1]) * dpr
		c := burst.Resolve(p.Color, rnd)
		tilt := rnd.Between(cfg.Particle.Tilt[0], cfg.Particle.Tilt[1])
		inc := rnd.Between(cfg.Particle.TiltAngleIncremental[0], cfg.Particle.TiltAngleIncremental[1])

		// Physics
		velocity := rnd.Between(p.Velocity*cfg.Particle.VelocityFloor, p.Velocity)
		angle := rnd.Between(p.Angle-p.Spread/2, p.Angle+p.Spread/2)
		friction := p.Friction
		if !p.HasFriction {
			friction = rnd.Between(cfg.Particle.Friction[0], cfg.Particle.Friction[1])
		}
		friction /= dpr

		id, entry := st.Insert(components.ParticleData{
			Radius:               r,
			Diameter:             d,
			Tilt:                 tilt,
			TiltAngleIncremental: inc,
			Color:                c,
			X:                    x,
			Y:                    y,
		})
		if debug {
			log.Printf("Adding particle %d (%d/%d): origin=(%.1f, %.1f) angle=%.2f velocity=%.2f friction=%.3f decay=%.2fs color=%s",
				id, i+1, p.Amount, x, y, angle, velocity, friction, p.Decay, burst.CSS(c))
		}

		StartBallistic(entry, BallisticParams{
			Velocity: velocity,
			Angle:    angle,
			Gravity:  p.Gravity,
			Friction: friction,
		}, p.Decay, tickSeconds)

		ids = append(ids, id)
	}
	return ids
}

// spawnContext reads the surface scale, tick length and debug flag from the
// cannon entity, falling back to config when there is none.
func spawnContext(ecs *ecs.ECS) (dpr, tickSeconds float64, debug bool) {
	dpr = 1
	tickSeconds = 1 / float64(cfg.C.TPS)
	debug = cfg.Debug.Enabled

	if entry, ok := components.Surface.First(ecs.World); ok {
		if s := components.Surface.Get(entry); s.DPR > 0 {
			dpr = s.DPR
		}
	}
	if entry, ok := components.Clock.First(ecs.World); ok {
		if c := components.Clock.Get(entry); c.TPS > 0 {
			tickSeconds = c.TickSeconds()
		}
	}
	if entry, ok := components.Settings.First(ecs.World); ok {
		debug = components.Settings.Get(entry).Debug
	}
	return dpr, tickSeconds, debug
}
