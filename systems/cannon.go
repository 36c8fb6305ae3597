package systems

import (
	"github.com/automoto/confetti-cannon/archetypes"
	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cannonEntry returns the cannon singleton, creating one with config defaults
// if the world has none yet.
func cannonEntry(ecs *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Aim.First(ecs.World); ok {
		return entry
	}
	entry := archetypes.Cannon.Spawn(ecs)
	components.Surface.SetValue(entry, components.SurfaceData{
		Width:  cfg.C.Width,
		Height: cfg.C.Height,
		DPR:    1,
	})
	components.Clock.SetValue(entry, components.ClockData{TPS: cfg.C.TPS})
	components.Settings.SetValue(entry, components.SettingsData{
		Debug:        cfg.Debug.Enabled,
		PaletteIndex: cfg.Settings.DefaultPalette,
	})
	return entry
}

func GetAim(ecs *ecs.ECS) *components.AimData {
	return components.Aim.Get(cannonEntry(ecs))
}

func GetSurface(ecs *ecs.ECS) *components.SurfaceData {
	return components.Surface.Get(cannonEntry(ecs))
}

func GetClock(ecs *ecs.ECS) *components.ClockData {
	return components.Clock.Get(cannonEntry(ecs))
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	return components.Settings.Get(cannonEntry(ecs))
}

func GetInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(cannonEntry(ecs))
}

func GetPointer(ecs *ecs.ECS) *components.PointerData {
	return components.Pointer.Get(cannonEntry(ecs))
}
