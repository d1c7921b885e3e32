package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/vdash/vdash/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".vdash.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/vdash"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'vdash init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .vdash.yaml in current directory
// 3. ~/.config/vdash/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Global config
	if home, err := os.UserHomeDir(); err == nil {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if not
// found. The dashboard runs fine without a config file.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	setDefaults(v)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	// Replay scripts may live under the user's home directory
	cfg.Source.ReplayFile = ExpandTilde(cfg.Source.ReplayFile)

	return cfg, nil
}

// setDefaults seeds viper so a sparse config file merges over the built-ins.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("version", def.Version)
	v.SetDefault("vehicle.tank_capacity", def.Vehicle.TankCapacity)
	v.SetDefault("source.mode", def.Source.Mode)
	v.SetDefault("source.interval", def.Source.Interval)
	v.SetDefault("thresholds.fuel_low", def.Thresholds.FuelLow)
	v.SetDefault("thresholds.fuel_reserve", def.Thresholds.FuelReserve)
	v.SetDefault("thresholds.tire_min", def.Thresholds.TireMin)
	v.SetDefault("thresholds.tire_max", def.Thresholds.TireMax)
	v.SetDefault("thresholds.rpm_idle", def.Thresholds.RPMIdle)
	v.SetDefault("thresholds.rpm_high", def.Thresholds.RPMHigh)
	v.SetDefault("thresholds.cabin_cold", def.Thresholds.CabinCold)
	v.SetDefault("thresholds.ambient_cold", def.Thresholds.AmbientCold)
	v.SetDefault("thresholds.comfort_band", def.Thresholds.ComfortBand)
}

// parseDuration parses a duration string, returning the default if parsing fails.
func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
