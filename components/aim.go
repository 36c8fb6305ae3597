package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AimData tracks the drag gesture used to aim the cannon.
// Coordinates are device pixels.
type AimData struct {
	Origin     math.Vec2 // where the drag started
	Tip        math.Vec2 // last move position
	Drawing    bool      // gesture in progress
	Pointer    math.Vec2
	HasPointer bool // false until the first move
}

var Aim = donburi.NewComponentType[AimData]()
