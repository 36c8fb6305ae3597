package components

import (
	"github.com/automoto/confetti-cannon/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BallisticData is the scheduled decay tween of one particle.
type BallisticData struct {
	Body   *gamemath.Projectile
	Shrink *gween.Tween // diameter -> 0 over the decay interval

	TickSeconds float64
	Ticks       int // ticks elapsed since launch
	TotalTicks  int // decay interval in ticks
	Done        bool
}

var Ballistic = donburi.NewComponentType[BallisticData]()
