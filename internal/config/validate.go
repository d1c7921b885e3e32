package config

import (
	"fmt"
	"time"

	"github.com/vdash/vdash/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but vdash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab a newer vdash release, or drop the 'version' key to use the current schema")
	}

	if cfg.Vehicle.TankCapacity <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("vehicle.tank_capacity needs to be above 0 liters (got %g)", cfg.Vehicle.TankCapacity),
			"Set the tank size in liters, e.g. 'tank_capacity: 45'")
	}

	if err := validateSource(cfg.Source); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'source' section in your .vdash.yaml.")
	}

	if err := validateThresholds(cfg.Thresholds); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'thresholds' section in your .vdash.yaml.")
	}

	return nil
}

func validateSource(src SourceConfig) error {
	switch src.Mode {
	case SourceDemo:
	case SourceReplay:
		if src.ReplayFile == "" {
			return fmt.Errorf("source.mode is 'replay' but source.replay_file is empty - point it at a drive script")
		}
	case "":
		// Empty means demo; the loader defaults it.
	default:
		return fmt.Errorf("source.mode '%s' isn't a thing - use 'demo' or 'replay'", src.Mode)
	}

	if src.Interval != "" {
		d, err := time.ParseDuration(src.Interval)
		if err != nil {
			return fmt.Errorf("source.interval '%s' doesn't look like a valid duration - try something like '250ms' or '1s'", src.Interval)
		}
		if d < 50*time.Millisecond {
			return fmt.Errorf("source.interval '%s' is below the 50ms minimum - that would just burn CPU", src.Interval)
		}
	}

	return nil
}

func validateThresholds(th ThresholdsConfig) error {
	// Only validate non-zero values (0 means use the built-in default)
	if th.FuelLow < 0 || th.FuelLow > 100 {
		return fmt.Errorf("thresholds.fuel_low needs to be 0-100 (got %d)", th.FuelLow)
	}
	if th.FuelReserve < 0 || th.FuelReserve > 100 {
		return fmt.Errorf("thresholds.fuel_reserve needs to be 0-100 (got %d)", th.FuelReserve)
	}
	if th.FuelLow > 0 && th.FuelReserve > 0 && th.FuelLow >= th.FuelReserve {
		return fmt.Errorf("thresholds.fuel_low (%d%%) is higher than fuel_reserve (%d%%) - should be the other way around", th.FuelLow, th.FuelReserve)
	}

	if th.TireMin < 0 {
		return fmt.Errorf("thresholds.tire_min needs to be above 0 kPa (got %g)", th.TireMin)
	}
	if th.TireMax < 0 {
		return fmt.Errorf("thresholds.tire_max needs to be above 0 kPa (got %g)", th.TireMax)
	}
	if th.TireMin > 0 && th.TireMax > 0 && th.TireMin >= th.TireMax {
		return fmt.Errorf("thresholds.tire_min (%g kPa) is higher than tire_max (%g kPa) - should be the other way around", th.TireMin, th.TireMax)
	}

	if th.RPMIdle < 0 {
		return fmt.Errorf("thresholds.rpm_idle can't be negative (got %d)", th.RPMIdle)
	}
	if th.RPMHigh < 0 {
		return fmt.Errorf("thresholds.rpm_high can't be negative (got %d)", th.RPMHigh)
	}
	if th.RPMIdle > 0 && th.RPMHigh > 0 && th.RPMIdle >= th.RPMHigh {
		return fmt.Errorf("thresholds.rpm_idle (%d) is higher than rpm_high (%d) - should be the other way around", th.RPMIdle, th.RPMHigh)
	}

	if th.ComfortBand < 0 {
		return fmt.Errorf("thresholds.comfort_band can't be negative (got %g °C)", th.ComfortBand)
	}

	return nil
}
