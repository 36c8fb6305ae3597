package factory

import (
	"github.com/automoto/confetti-cannon/archetypes"
	"github.com/automoto/confetti-cannon/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCannon spawns the singleton entity holding aim, surface, settings and
// clock state.
func CreateCannon(ecs *ecs.ECS, surface components.SurfaceData, clock components.ClockData, settings components.SettingsData) *donburi.Entry {
	cannon := archetypes.Cannon.Spawn(ecs)
	components.Surface.SetValue(cannon, surface)
	components.Clock.SetValue(cannon, clock)
	components.Settings.SetValue(cannon, settings)
	components.Aim.SetValue(cannon, components.AimData{})
	return cannon
}
