package config

// PaletteDef is a named color range set; each channel is sampled from [min, max].
type PaletteDef struct {
	Name             string
	Red, Green, Blue [2]int
}

// SettingsConfig contains palette and persistence configuration
type SettingsConfig struct {
	AppName        string
	SaveKey        string
	Palettes       []PaletteDef
	DefaultPalette int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "confetti-cannon",
		SaveKey: "settings",
		Palettes: []PaletteDef{
			{Name: "Random", Red: [2]int{0, 255}, Green: [2]int{0, 255}, Blue: [2]int{0, 255}},
			{Name: "Pastel", Red: [2]int{180, 255}, Green: [2]int{180, 255}, Blue: [2]int{180, 255}},
			{Name: "Gold", Red: [2]int{230, 255}, Green: [2]int{170, 215}, Blue: [2]int{0, 60}},
			{Name: "Ocean", Red: [2]int{0, 60}, Green: [2]int{120, 200}, Blue: [2]int{180, 255}},
		},
		DefaultPalette: 0,
	}
}
