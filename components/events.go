package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ParticleExpiredEvent is published once when a particle's decay tween completes.
type ParticleExpiredEvent struct {
	ID     ParticleID
	Entity donburi.Entity
}

var ParticleExpired = events.NewEventType[ParticleExpiredEvent]()
