package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug        bool `json:"debug"`
	PaletteIndex int  `json:"paletteIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when persistence
// is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.SaveKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return DecodeSettings(data)
}

// DecodeSettings parses the stored representation of the settings.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := gdataManager.SaveItem(cfg.Settings.SaveKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the cannon settings, logging failures
func SaveCurrentSettings(s components.SettingsData) {
	saved := &SavedSettings{
		Debug:        s.Debug,
		PaletteIndex: s.PaletteIndex,
	}
	if err := SaveSettings(saved); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// ApplySavedSettings copies loaded settings onto s. Out of range palettes
// are ignored.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Debug = saved.Debug
	if saved.PaletteIndex >= 0 && saved.PaletteIndex < len(cfg.Settings.Palettes) {
		s.PaletteIndex = saved.PaletteIndex
	}
}
