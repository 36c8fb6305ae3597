package components

import "github.com/yohamta/donburi"

// SettingsData holds user-adjustable cannon settings
type SettingsData struct {
	Debug        bool
	PaletteIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
