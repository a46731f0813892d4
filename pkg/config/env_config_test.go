// pkg/config/env_config_test.go
package config

import "testing"

func TestApplyEnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name: "no_env_keeps_defaults",
			env:  map[string]string{},
			check: func(t *testing.T, c *Config) {
				if c.Asteroids.Count != 5 || c.Demo.TickRate != 60 {
					t.Errorf("defaults changed: %+v", c)
				}
			},
		},
		{
			name: "numeric_overrides",
			env: map[string]string{
				EnvAsteroidCount: "9",
				EnvExplosionMS:   "750",
				EnvTickRate:      "30",
				EnvSeed:          "12345",
			},
			check: func(t *testing.T, c *Config) {
				if c.Asteroids.Count != 9 {
					t.Errorf("asteroid count = %d, expected 9", c.Asteroids.Count)
				}
				if c.Explosion.DurationMS != 750 {
					t.Errorf("explosion duration = %d, expected 750", c.Explosion.DurationMS)
				}
				if c.Demo.TickRate != 30 {
					t.Errorf("tick rate = %d, expected 30", c.Demo.TickRate)
				}
				if c.Demo.Seed != 12345 {
					t.Errorf("seed = %d, expected 12345", c.Demo.Seed)
				}
			},
		},
		{
			name: "string_overrides",
			env: map[string]string{
				EnvRenderer: "engo",
				EnvProvider: "script",
			},
			check: func(t *testing.T, c *Config) {
				if c.Demo.Renderer != "engo" || c.Demo.Provider != "script" {
					t.Errorf("demo config = %+v", c.Demo)
				}
			},
		},
		{
			name:    "malformed_numeric_value",
			env:     map[string]string{EnvTickRate: "fast"},
			wantErr: true,
		},
		{
			name:    "override_fails_validation",
			env:     map[string]string{EnvAsteroidCount: "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			config := DefaultConfig()
			err := ApplyEnvironmentOverrides(config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvironmentOverrides() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && err == nil {
				tt.check(t, config)
			}
		})
	}
}
