// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config contains the demo's tunables. The geometry values default to
// the original sample's constants; changing them changes gameplay, not
// correctness.
type Config struct {
	Arena     ArenaConfig     `json:"arena"`
	Ship      SpriteConfig    `json:"ship"`
	Asteroids AsteroidConfig  `json:"asteroids"`
	Explosion ExplosionConfig `json:"explosion"`
	Demo      DemoConfig      `json:"demo"`
}

// ArenaConfig is the fallback arena size, used when the host surface
// cannot report its own bounds.
type ArenaConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SpriteConfig describes one sprite kind: its unscaled size and its
// per-tick speed.
type SpriteConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
}

// AsteroidConfig configures the asteroid field.
type AsteroidConfig struct {
	Count      int     `json:"count"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Speed      float64 `json:"speed"`
	SpawnRange float64 `json:"spawnRange"` // respawn positions drawn from [-range, range] per axis
}

// ExplosionConfig configures the explosion animation.
type ExplosionConfig struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	DurationMS   int     `json:"durationMS"`
	ScaleStep    float64 `json:"scaleStep"`    // added per tick per axis while animating
	RotationStep float64 `json:"rotationStep"` // degrees added per tick while animating
}

// DemoConfig configures the demo driver around the core.
type DemoConfig struct {
	TickRate int    `json:"tickRate"` // target ticks per second
	Seed     uint64 `json:"seed"`     // 0 means derive from wall clock
	Renderer string `json:"renderer"` // "terminal" or "engo"
	Provider string `json:"provider"` // "keyboard" or "script"
}

// Duration returns the explosion duration as a time.Duration.
func (e ExplosionConfig) Duration() time.Duration {
	return time.Duration(e.DurationMS) * time.Millisecond
}

// TickInterval returns the time between ticks at the configured rate.
func (d DemoConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(d.TickRate)
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default demo configuration
func DefaultConfig() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  800,
			Height: 480,
		},
		Ship: SpriteConfig{
			Width:  64,
			Height: 64,
			Speed:  6,
		},
		Asteroids: AsteroidConfig{
			Count:      5,
			Width:      48,
			Height:     48,
			Speed:      4,
			SpawnRange: 300,
		},
		Explosion: ExplosionConfig{
			Width:        64,
			Height:       64,
			DurationMS:   500,
			ScaleStep:    0.0005,
			RotationStep: 15,
		},
		Demo: DemoConfig{
			TickRate: 60,
			Renderer: "terminal",
			Provider: "keyboard",
		},
	}
}

// Validate checks the configuration for values the scene cannot run with.
func (c *Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("invalid arena size %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.Asteroids.Count <= 0 {
		return fmt.Errorf("invalid asteroid count %d", c.Asteroids.Count)
	}
	if c.Explosion.DurationMS <= 0 {
		return fmt.Errorf("invalid explosion duration %dms", c.Explosion.DurationMS)
	}
	if c.Demo.TickRate <= 0 {
		return fmt.Errorf("invalid tick rate %d", c.Demo.TickRate)
	}
	return nil
}

// LoadEnvFile loads a .env file into the process environment if one is
// present. A missing file is not an error; explicit paths must exist.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
