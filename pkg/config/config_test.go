// pkg/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if err := config.Validate(); err != nil {
		t.Fatalf("DefaultConfig() does not validate: %v", err)
	}
	if config.Asteroids.Count != 5 {
		t.Errorf("asteroid count = %d, expected 5", config.Asteroids.Count)
	}
	if config.Explosion.DurationMS != 500 {
		t.Errorf("explosion duration = %dms, expected 500", config.Explosion.DurationMS)
	}
	if config.Demo.TickRate != 60 {
		t.Errorf("tick rate = %d, expected 60", config.Demo.TickRate)
	}
}

func TestConfig_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	original := DefaultConfig()
	original.Asteroids.Count = 8
	original.Demo.Renderer = "engo"

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if loaded.Asteroids.Count != 8 {
		t.Errorf("asteroid count = %d, expected 8", loaded.Asteroids.Count)
	}
	if loaded.Demo.Renderer != "engo" {
		t.Errorf("renderer = %q, expected engo", loaded.Demo.Renderer)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"asteroids":{"count":3,"width":48,"height":48,"speed":4,"spawnRange":300}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if loaded.Asteroids.Count != 3 {
		t.Errorf("asteroid count = %d, expected 3", loaded.Asteroids.Count)
	}
	if loaded.Demo.TickRate != 60 {
		t.Errorf("tick rate = %d, expected default 60", loaded.Demo.TickRate)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults_valid",
			mutate: func(*Config) {},
		},
		{
			name:    "zero_asteroids",
			mutate:  func(c *Config) { c.Asteroids.Count = 0 },
			wantErr: true,
		},
		{
			name:    "negative_arena",
			mutate:  func(c *Config) { c.Arena.Width = -1 },
			wantErr: true,
		},
		{
			name:    "zero_explosion_duration",
			mutate:  func(c *Config) { c.Explosion.DurationMS = 0 },
			wantErr: true,
		},
		{
			name:    "zero_tick_rate",
			mutate:  func(c *Config) { c.Demo.TickRate = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
