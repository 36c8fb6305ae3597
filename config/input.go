package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical cannon action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleDebug
	ActionCyclePalette
	ActionFire
	ActionClear
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyF3},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionCyclePalette: {
				Keys: []ebiten.Key{ebiten.KeyC},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionFire: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionClear: {
				Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}
