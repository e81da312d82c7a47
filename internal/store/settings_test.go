package store

import "testing"

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := LoadSettings(newTestStorage(t))
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.Theme != "light" {
		t.Fatalf("expected default theme light, got %q", settings.Theme)
	}
	if !settings.Notifications {
		t.Fatalf("expected notifications enabled by default")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	storage := newTestStorage(t)

	settings, err := LoadSettings(storage)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	settings.Theme = "dark"
	settings.Notifications = false
	settings.DisplayName = "Saketh"
	if err := SaveSettings(storage, settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	got, err := LoadSettings(storage)
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if got.Theme != "dark" || got.Notifications || got.DisplayName != "Saketh" {
		t.Fatalf("settings did not round trip: %+v", got)
	}
}
