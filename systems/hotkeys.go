package systems

import (
	"github.com/automoto/confetti-cannon/burst"
	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/automoto/confetti-cannon/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Hotkeys is the set of actions triggered this tick.
type Hotkeys struct {
	ToggleDebug  bool
	CyclePalette bool
	Fire         bool
	Clear        bool
}

// UpdateInput polls the keyboard and gamepads and updates the Input component.
// Must run BEFORE UpdateHotkeys in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PressedHotkeys reports which actions were pressed this tick.
func PressedHotkeys(input *components.InputData) Hotkeys {
	return Hotkeys{
		ToggleDebug:  GetAction(input, cfg.ActionToggleDebug).JustPressed,
		CyclePalette: GetAction(input, cfg.ActionCyclePalette).JustPressed,
		Fire:         GetAction(input, cfg.ActionFire).JustPressed,
		Clear:        GetAction(input, cfg.ActionClear).JustPressed,
	}
}

// UpdateHotkeys acts on the actions pressed this tick. fire is called for the
// fire action; changed is called with the new settings whenever debug or the
// palette changes. The clear action empties st.
func UpdateHotkeys(ecs *ecs.ECS, st *store.Store, fire func(burst.Options), changed func(components.SettingsData)) {
	keys := PressedHotkeys(GetInput(ecs))

	settings := GetOrCreateSettings(ecs)
	settingsChanged, shouldFire := ApplyHotkeys(settings, keys)
	if settingsChanged && changed != nil {
		changed(*settings)
	}
	if keys.Clear && st != nil {
		st.Clear()
	}
	if shouldFire && fire != nil {
		fire(burst.Options{})
	}
}

// ApplyHotkeys updates settings for the pressed keys.
func ApplyHotkeys(settings *components.SettingsData, keys Hotkeys) (changed, fire bool) {
	if keys.ToggleDebug {
		settings.Debug = !settings.Debug
		changed = true
	}
	if keys.CyclePalette {
		if n := len(cfg.Settings.Palettes); n > 0 {
			settings.PaletteIndex = (settings.PaletteIndex + 1) % n
			changed = true
		}
	}
	return changed, keys.Fire
}

// CurrentPalette returns the palette selected in settings.
func CurrentPalette(ecs *ecs.ECS) burst.Palette {
	return burst.PaletteAt(GetOrCreateSettings(ecs).PaletteIndex)
}
