package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sakethrapaka/remind/internal/model"
)

func TestGetConfigPathEnvOverride(t *testing.T) {
	t.Setenv("REMIND_CONFIG", "/tmp/custom-remind.yaml")

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("get config path: %v", err)
	}
	if path != "/tmp/custom-remind.yaml" {
		t.Fatalf("expected env override, got %q", path)
	}
}

func TestLoadConfigExpandsHomeAndDefaultsInterval(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_dir: ~/remind-data\nnotify:\n  interval: 0\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REMIND_CONFIG", configPath)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home dir: %v", err)
	}
	if config.DataDir != filepath.Join(home, "remind-data") {
		t.Fatalf("expected ~ expanded, got %q", config.DataDir)
	}
	if config.Notify.Interval != 60 {
		t.Fatalf("expected interval default 60, got %d", config.Notify.Interval)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("REMIND_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected missing config file to error")
	}
}

func TestSaveThenLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("REMIND_CONFIG", configPath)

	dataDir := t.TempDir()
	config := model.DefaultConfig()
	config.DataDir = dataDir
	if err := SaveConfig(config); err != nil {
		t.Fatalf("save config: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.DataDir != dataDir {
		t.Fatalf("expected data dir %q, got %q", dataDir, loaded.DataDir)
	}
	if loaded.Week.DayStart != config.Week.DayStart || loaded.Week.DayEnd != config.Week.DayEnd {
		t.Fatalf("week bounds did not round trip: %+v", loaded.Week)
	}
}
