package main

import (
	"flag"
	"log"

	"github.com/automoto/confetti-cannon/burst"
	"github.com/automoto/confetti-cannon/cannon"
	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/automoto/confetti-cannon/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", cfg.Debug.Enabled, "Log spawn diagnostics and show the debug HUD")
	width := flag.Int("width", cfg.C.Width, "Window width")
	height := flag.Int("height", cfg.C.Height, "Window height")
	tps := flag.Int("tps", cfg.C.TPS, "Simulation ticks per second")
	decay := flag.Float64("decay", cfg.Burst.Decay, "Particle lifetime in seconds")
	spread := flag.Float64("spread", cfg.Burst.Spread, "Angular spread of a burst in degrees")
	gravity := flag.Float64("gravity", cfg.Burst.Gravity, "Gravity in px/s^2")
	palette := flag.Int("palette", cfg.Settings.DefaultPalette, "Initial color palette index")
	flag.Parse()

	settings := components.SettingsData{Debug: *debug, PaletteIndex: *palette}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(&settings, saved)
	} else if err != nil {
		log.Printf("Warning: %v", err)
	}
	// Explicit flags win over saved values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			settings.Debug = *debug
		case "palette":
			settings.PaletteIndex = *palette
		}
	})

	dpr := 1.0
	if m := ebiten.Monitor(); m != nil && m.DeviceScaleFactor() > 0 {
		dpr = m.DeviceScaleFactor()
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(*tps)

	c, err := cannon.New(cannon.Options{
		Width:        int(float64(*width) * dpr),
		Height:       int(float64(*height) * dpr),
		DPR:          dpr,
		TPS:          *tps,
		Debug:        settings.Debug,
		Trigger:      true,
		HotKeys:      true,
		PaletteIndex: settings.PaletteIndex,
		Burst: burst.Options{
			Decay:   burst.Float(*decay),
			Spread:  burst.Float(*spread),
			Gravity: burst.Float(*gravity),
		},
		OnSettingsChanged: systems.SaveCurrentSettings,
	})
	if err != nil {
		log.Fatalf("Failed to create cannon: %v", err)
	}
	defer c.Close()

	log.Printf("Confetti cannon ready (%dx%d, dpr %.2f, %d tps): drag to aim, release to fire",
		*width, *height, dpr, *tps)
	if err := ebiten.RunGame(c); err != nil {
		log.Fatal(err)
	}
}
