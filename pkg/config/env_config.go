// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnvironmentOverrides.
const (
	EnvAsteroidCount = "ASTERDODGE_ASTEROID_COUNT"
	EnvExplosionMS   = "ASTERDODGE_EXPLOSION_MS"
	EnvTickRate      = "ASTERDODGE_TICK_RATE"
	EnvSeed          = "ASTERDODGE_SEED"
	EnvRenderer      = "ASTERDODGE_RENDERER"
	EnvProvider      = "ASTERDODGE_PROVIDER"
)

// ApplyEnvironmentOverrides overlays environment variables onto a loaded
// configuration. Unset variables leave the configuration untouched;
// malformed values are reported rather than ignored.
func ApplyEnvironmentOverrides(config *Config) error {
	if err := overrideInt(EnvAsteroidCount, &config.Asteroids.Count); err != nil {
		return err
	}
	if err := overrideInt(EnvExplosionMS, &config.Explosion.DurationMS); err != nil {
		return err
	}
	if err := overrideInt(EnvTickRate, &config.Demo.TickRate); err != nil {
		return err
	}
	if err := overrideUint64(EnvSeed, &config.Demo.Seed); err != nil {
		return err
	}
	overrideString(EnvRenderer, &config.Demo.Renderer)
	overrideString(EnvProvider, &config.Demo.Provider)

	return config.Validate()
}

func overrideInt(name string, target *int) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	*target = value
	return nil
}

func overrideUint64(name string, target *uint64) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	*target = value
	return nil
}

func overrideString(name string, target *string) {
	if raw := os.Getenv(name); raw != "" {
		*target = raw
	}
}
