package systems

import (
	"github.com/automoto/confetti-cannon/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBallistic advances every decay tween by one tick: position, heading
// and speed come from the projectile, the diameter from the shrink tween.
// A particle whose decay interval has elapsed publishes ParticleExpired once;
// the events are delivered before the system returns.
func UpdateBallistic(ecs *ecs.ECS) {
	GetClock(ecs).Ticks++

	components.Ballistic.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Ballistic.Get(e)
		if b.Done || b.Body == nil {
			return
		}
		p := components.Particle.Get(e)

		b.Ticks++
		t := float64(b.Ticks) * b.TickSeconds
		p.X, p.Y = b.Body.At(t)
		p.Angle, p.Velocity = b.Body.Heading()
		if b.Shrink != nil {
			d, _ := b.Shrink.Set(float32(t))
			p.Diameter = float64(d)
		}

		if b.Ticks >= b.TotalTicks {
			b.Done = true
			components.ParticleExpired.Publish(ecs.World, components.ParticleExpiredEvent{ID: p.ID, Entity: e.Entity()})
		}
	})

	components.ParticleExpired.ProcessEvents(ecs.World)
}
