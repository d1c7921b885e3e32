package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_Version(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = CurrentConfigVersion + 1

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from the future")
}

func TestValidate_TankCapacity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Vehicle.TankCapacity = 0

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tank_capacity")

	cfg.Vehicle.TankCapacity = -5
	assert.Error(t, Validate(cfg))
}

func TestValidate_Source(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "demo mode",
			mutate: func(c *Config) { c.Source.Mode = SourceDemo },
		},
		{
			name:   "empty mode means demo",
			mutate: func(c *Config) { c.Source.Mode = "" },
		},
		{
			name: "replay mode with file",
			mutate: func(c *Config) {
				c.Source.Mode = SourceReplay
				c.Source.ReplayFile = "drive.yaml"
			},
		},
		{
			name:        "replay mode without file",
			mutate:      func(c *Config) { c.Source.Mode = SourceReplay },
			wantErr:     true,
			errContains: "replay_file is empty",
		},
		{
			name:        "unknown mode",
			mutate:      func(c *Config) { c.Source.Mode = "live" },
			wantErr:     true,
			errContains: "isn't a thing",
		},
		{
			name:        "malformed interval",
			mutate:      func(c *Config) { c.Source.Interval = "fast" },
			wantErr:     true,
			errContains: "valid duration",
		},
		{
			name:        "interval below minimum",
			mutate:      func(c *Config) { c.Source.Interval = "10ms" },
			wantErr:     true,
			errContains: "50ms minimum",
		},
		{
			name:   "interval at minimum",
			mutate: func(c *Config) { c.Source.Interval = "50ms" },
		},
		{
			name:   "empty interval is fine",
			mutate: func(c *Config) { c.Source.Interval = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Thresholds(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ThresholdsConfig)
		wantErr     bool
		errContains string
	}{
		{
			name:   "zeroes fall back to defaults",
			mutate: func(th *ThresholdsConfig) { *th = ThresholdsConfig{} },
		},
		{
			name:        "fuel_low out of range",
			mutate:      func(th *ThresholdsConfig) { th.FuelLow = 150 },
			wantErr:     true,
			errContains: "fuel_low",
		},
		{
			name:        "fuel_low above reserve",
			mutate:      func(th *ThresholdsConfig) { th.FuelLow = 40; th.FuelReserve = 30 },
			wantErr:     true,
			errContains: "other way around",
		},
		{
			name:        "tire_min above tire_max",
			mutate:      func(th *ThresholdsConfig) { th.TireMin = 300; th.TireMax = 200 },
			wantErr:     true,
			errContains: "tire_min",
		},
		{
			name:        "negative tire_min",
			mutate:      func(th *ThresholdsConfig) { th.TireMin = -10 },
			wantErr:     true,
			errContains: "tire_min",
		},
		{
			name:        "rpm_idle above rpm_high",
			mutate:      func(th *ThresholdsConfig) { th.RPMIdle = 4000; th.RPMHigh = 3000 },
			wantErr:     true,
			errContains: "rpm_idle",
		},
		{
			name:        "negative rpm_high",
			mutate:      func(th *ThresholdsConfig) { th.RPMHigh = -1 },
			wantErr:     true,
			errContains: "rpm_high",
		},
		{
			name:        "negative comfort_band",
			mutate:      func(th *ThresholdsConfig) { th.ComfortBand = -3 },
			wantErr:     true,
			errContains: "comfort_band",
		},
		{
			name:   "negative cold thresholds are fine",
			mutate: func(th *ThresholdsConfig) { th.CabinCold = -5; th.AmbientCold = -20 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg.Thresholds)

			err := Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
