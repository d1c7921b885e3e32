package config

import (
	"time"

	"github.com/vdash/vdash/internal/telemetry"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Source modes.
const (
	SourceDemo   = "demo"
	SourceReplay = "replay"
)

// DefaultInterval is the demo source cadence written into new configs.
const DefaultInterval = "250ms"

// Config represents the complete .vdash.yaml configuration file.
type Config struct {
	Version    int              `yaml:"version" mapstructure:"version"`
	Vehicle    VehicleConfig    `yaml:"vehicle" mapstructure:"vehicle"`
	Source     SourceConfig     `yaml:"source" mapstructure:"source"`
	Thresholds ThresholdsConfig `yaml:"thresholds" mapstructure:"thresholds"`
}

// VehicleConfig describes the vehicle shown in the dashboard.
type VehicleConfig struct {
	// Name shown in the header, e.g. "Golf 7 1.4 TSI".
	Name string `yaml:"name" mapstructure:"name"`

	// TankCapacity in liters, used for the fuel gauge when the vehicle
	// does not report its own capacity.
	TankCapacity float64 `yaml:"tank_capacity" mapstructure:"tank_capacity"`
}

// SourceConfig selects where telemetry snapshots come from.
type SourceConfig struct {
	// Mode is "demo" (simulated drive) or "replay" (YAML drive script).
	Mode string `yaml:"mode" mapstructure:"mode"`

	// ReplayFile is the drive script path for replay mode.
	// Supports ~ for the home directory.
	ReplayFile string `yaml:"replay_file" mapstructure:"replay_file"`

	// Interval is the demo publish cadence, e.g. "250ms".
	Interval string `yaml:"interval" mapstructure:"interval"`
}

// ThresholdsConfig tunes the derivation rules. Zero values fall back to the
// built-in defaults at load time.
type ThresholdsConfig struct {
	// FuelLow and FuelReserve are fill percentages: below low is critical,
	// below reserve a warning.
	FuelLow     int `yaml:"fuel_low" mapstructure:"fuel_low"`
	FuelReserve int `yaml:"fuel_reserve" mapstructure:"fuel_reserve"`

	// TireMin and TireMax bound the normal tire pressure range in kPa.
	// Both bounds are inclusive.
	TireMin float64 `yaml:"tire_min" mapstructure:"tire_min"`
	TireMax float64 `yaml:"tire_max" mapstructure:"tire_max"`

	// RPMIdle and RPMHigh split engine speed into idle / normal / high.
	RPMIdle int `yaml:"rpm_idle" mapstructure:"rpm_idle"`
	RPMHigh int `yaml:"rpm_high" mapstructure:"rpm_high"`

	// CabinCold and AmbientCold are the cold thresholds in °C.
	// ComfortBand is the width of the comfortable range above them.
	CabinCold   float64 `yaml:"cabin_cold" mapstructure:"cabin_cold"`
	AmbientCold float64 `yaml:"ambient_cold" mapstructure:"ambient_cold"`
	ComfortBand float64 `yaml:"comfort_band" mapstructure:"comfort_band"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Vehicle: VehicleConfig{
			TankCapacity: telemetry.DefaultTankCapacity,
		},
		Source: SourceConfig{
			Mode:     SourceDemo,
			Interval: DefaultInterval,
		},
		Thresholds: ThresholdsConfig{
			FuelLow:     telemetry.DefaultFuelLowPercent,
			FuelReserve: telemetry.DefaultFuelReservePercent,
			TireMin:     telemetry.DefaultTirePressureMin,
			TireMax:     telemetry.DefaultTirePressureMax,
			RPMIdle:     telemetry.DefaultRPMIdle,
			RPMHigh:     telemetry.DefaultRPMHigh,
			CabinCold:   telemetry.DefaultCabinCold,
			AmbientCold: telemetry.DefaultAmbientCold,
			ComfortBand: telemetry.DefaultComfortBand,
		},
	}
}

// RuleThresholds converts the configured tuning into the bundle the
// derivation rules consume. Zero or negative entries fall back to the
// built-in defaults so a sparse config file still renders sensibly.
func (c *Config) RuleThresholds() telemetry.Thresholds {
	t := telemetry.DefaultThresholds()
	if c.Vehicle.TankCapacity > 0 {
		t.TankCapacity = c.Vehicle.TankCapacity
	}
	th := c.Thresholds
	if th.FuelLow > 0 {
		t.FuelLowPercent = th.FuelLow
	}
	if th.FuelReserve > 0 {
		t.FuelReservePercent = th.FuelReserve
	}
	if th.TireMin > 0 {
		t.TirePressureMin = th.TireMin
	}
	if th.TireMax > 0 {
		t.TirePressureMax = th.TireMax
	}
	if th.RPMIdle > 0 {
		t.RPMIdle = th.RPMIdle
	}
	if th.RPMHigh > 0 {
		t.RPMHigh = th.RPMHigh
	}
	if th.CabinCold != 0 {
		t.CabinCold = th.CabinCold
	}
	if th.AmbientCold != 0 {
		t.AmbientCold = th.AmbientCold
	}
	if th.ComfortBand > 0 {
		t.ComfortBand = th.ComfortBand
	}
	return t
}

// SourceInterval returns the parsed demo cadence, falling back to the
// default when unset or malformed. Validate catches malformed values first.
func (c *Config) SourceInterval() time.Duration {
	return parseDuration(c.Source.Interval, telemetry.DefaultDemoInterval)
}
