package telemetry

import "math"

// Status classifies a reading for display. Rules map raw values to a Status;
// the dashboard maps Status to colors. Keeping the two apart keeps every rule
// testable without a terminal.
type Status int

const (
	// StatusNeutral is the default: nothing noteworthy about the value.
	StatusNeutral Status = iota
	// StatusSuccess marks a value in its normal operating range.
	StatusSuccess
	// StatusInfo marks an informational condition (cold cabin, neutral gear).
	StatusInfo
	// StatusWarning marks a value outside the comfortable range.
	StatusWarning
	// StatusError marks a value that needs attention now.
	StatusError
	// StatusDisabled marks a reading that is absent entirely.
	StatusDisabled
)

// String returns the status name for logs and tests.
func (s Status) String() string {
	switch s {
	case StatusNeutral:
		return "neutral"
	case StatusSuccess:
		return "success"
	case StatusInfo:
		return "info"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	case StatusDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Default thresholds. These seed the configuration; every rule takes its
// thresholds as arguments so callers can feed configured values instead.
const (
	// DefaultTankCapacity is the assumed tank size in liters when the
	// vehicle does not report one.
	DefaultTankCapacity = 45.0

	// DefaultFuelLowPercent is the fuel percentage below which the level
	// is critical.
	DefaultFuelLowPercent = 10
	// DefaultFuelReservePercent is the fuel percentage below which the
	// level is a warning.
	DefaultFuelReservePercent = 30

	// DefaultTirePressureMin and DefaultTirePressureMax bound the normal
	// tire pressure range in kPa. Both bounds are inclusive.
	DefaultTirePressureMin = 200.0
	DefaultTirePressureMax = 280.0

	// DefaultRPMIdle is the engine speed below which the engine is idling.
	DefaultRPMIdle = 1000
	// DefaultRPMHigh is the engine speed at and above which revs are high.
	DefaultRPMHigh = 3000

	// DefaultCabinCold and DefaultAmbientCold are the cold thresholds in °C
	// for the two temperature readings.
	DefaultCabinCold   = 15.0
	DefaultAmbientCold = 10.0
	// DefaultComfortBand is the width in °C of the comfortable range that
	// starts at the cold threshold.
	DefaultComfortBand = 10.0
)

// Thresholds bundles every tunable the derivation rules use.
type Thresholds struct {
	TankCapacity       float64
	FuelLowPercent     int
	FuelReservePercent int
	TirePressureMin    float64
	TirePressureMax    float64
	RPMIdle            int
	RPMHigh            int
	CabinCold          float64
	AmbientCold        float64
	ComfortBand        float64
}

// DefaultThresholds returns the built-in tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TankCapacity:       DefaultTankCapacity,
		FuelLowPercent:     DefaultFuelLowPercent,
		FuelReservePercent: DefaultFuelReservePercent,
		TirePressureMin:    DefaultTirePressureMin,
		TirePressureMax:    DefaultTirePressureMax,
		RPMIdle:            DefaultRPMIdle,
		RPMHigh:            DefaultRPMHigh,
		CabinCold:          DefaultCabinCold,
		AmbientCold:        DefaultAmbientCold,
		ComfortBand:        DefaultComfortBand,
	}
}

// GearStatus maps a gear selector position to a display status: P is error
// (parked, engine interlocked), R warning, N info, D success. Any other
// position, including an empty reading, is neutral. Matching is exact; this
// is a display mapping, not a validator.
func GearStatus(gear string) Status {
	switch gear {
	case "P":
		return StatusError
	case "R":
		return StatusWarning
	case "N":
		return StatusInfo
	case "D":
		return StatusSuccess
	default:
		return StatusNeutral
	}
}

// RPMStatus classifies engine speed: below idle is success, below high is
// neutral, high and above is a warning. An absent reading is neutral.
func RPMStatus(rpm *int, idle, high int) Status {
	if rpm == nil {
		return StatusNeutral
	}
	switch {
	case *rpm < idle:
		return StatusSuccess
	case *rpm < high:
		return StatusNeutral
	default:
		return StatusWarning
	}
}

// TemperatureStatus classifies a temperature against a cold threshold and a
// comfort band: below cold is info, within [cold, cold+band) is success,
// at or above cold+band is a warning. An absent reading is disabled.
func TemperatureStatus(t *float64, cold, band float64) Status {
	if t == nil {
		return StatusDisabled
	}
	switch {
	case *t < cold:
		return StatusInfo
	case *t < cold+band:
		return StatusSuccess
	default:
		return StatusWarning
	}
}

// FuelPercent computes the tank fill level as a whole percentage clamped to
// [0, 100]. A nil or non-positive volume yields 0. A nil capacity falls back
// to fallbackCapacity; a non-positive effective capacity also yields 0.
func FuelPercent(volume, capacity *float64, fallbackCapacity float64) int {
	if volume == nil || *volume <= 0 {
		return 0
	}
	tank := fallbackCapacity
	if capacity != nil {
		tank = *capacity
	}
	if tank <= 0 {
		return 0
	}
	pct := int(math.Round(*volume / tank * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// FuelStatus classifies a fuel percentage: below low is an error, below
// reserve a warning, otherwise success.
func FuelStatus(percent, low, reserve int) Status {
	switch {
	case percent < low:
		return StatusError
	case percent < reserve:
		return StatusWarning
	default:
		return StatusSuccess
	}
}

// TirePressureStatus classifies a tire pressure in kPa: below min is an
// error, above max a warning, inside the inclusive range success. An absent
// reading is disabled. Badge background and text both derive from this one
// result.
func TirePressureStatus(p *float64, min, max float64) Status {
	if p == nil {
		return StatusDisabled
	}
	switch {
	case *p < min:
		return StatusError
	case *p > max:
		return StatusWarning
	default:
		return StatusSuccess
	}
}
