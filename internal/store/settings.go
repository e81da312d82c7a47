package store

import (
	"fmt"

	"github.com/sakethrapaka/remind/internal/model"
)

const settingsKey = "settings"

// LoadSettings returns the persisted settings, or defaults when nothing has
// been saved yet.
func LoadSettings(storage Storage) (model.Settings, error) {
	settings := model.DefaultSettings()
	var saved *model.Settings
	if err := storage.Load(settingsKey, &saved); err != nil {
		return settings, fmt.Errorf("❌ Failed to load settings: %w", err)
	}
	if saved != nil {
		settings = *saved
	}
	if settings.Theme == "" {
		settings.Theme = "light"
	}
	return settings, nil
}

func SaveSettings(storage Storage, settings model.Settings) error {
	if err := storage.Save(settingsKey, settings); err != nil {
		return fmt.Errorf("❌ Failed to save settings: %w", err)
	}
	return nil
}
