package telemetry

import "fmt"

// Placeholder is rendered wherever a reading is absent. Missing data is a
// normal state for every field, never an error.
const Placeholder = "—"

// FormatFloat renders an optional float with the given number of decimals,
// or the placeholder when absent.
func FormatFloat(v *float64, decimals int) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

// FormatInt renders an optional integer, or the placeholder when absent.
func FormatInt(v *int) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%d", *v)
}

// FormatGear renders a gear selector position, or the placeholder when the
// position is unreported.
func FormatGear(gear string) string {
	if gear == "" {
		return Placeholder
	}
	return gear
}

// FormatTripTime renders a trip duration in minutes as zero-padded HH:MM.
// The conversion goes through seconds so the hour count is exact: 90 renders
// as "01:30", 1440 as "24:00" (hours do not wrap). Negative durations clamp
// to "00:00"; an absent duration renders the placeholder.
func FormatTripTime(minutes *int) string {
	if minutes == nil {
		return Placeholder
	}
	m := *minutes
	if m < 0 {
		m = 0
	}
	secs := m * 60
	return fmt.Sprintf("%02d:%02d", secs/3600, secs%3600/60)
}
