package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vdash/vdash/internal/telemetry"
)

// fullModel returns a model with every stream populated, sized for a full
// render.
func fullModel() Model {
	m := Model{
		thresholds:  telemetry.DefaultThresholds(),
		vehicle:     "Golf 7 1.4 TSI",
		sourceLabel: "demo",
		width:       100,
		height:      40,
		lastUpdate:  time.Now(),
	}
	m.main = telemetry.MainMetrics{
		Gear:  "D",
		Speed: telemetry.Float64(48.0),
		RPM:   telemetry.Int(1900),
	}
	m.hasMain = true
	m.fuel = telemetry.FuelMetrics{
		Volume:         telemetry.Float64(36.5),
		Capacity:       telemetry.Float64(45.0),
		Range:          telemetry.Float64(589.0),
		AvgConsumption: telemetry.Float64(6.2),
	}
	m.hasFuel = true
	m.trip = telemetry.TripMetrics{
		Odometer: telemetry.Float64(84213.0),
		Distance: telemetry.Float64(12.4),
		Duration: telemetry.Int(65),
	}
	m.hasTrip = true
	m.tires = telemetry.TireMetrics{
		FrontLeft:  telemetry.Wheel{Pressure: telemetry.Float64(235), Temperature: telemetry.Float64(28)},
		FrontRight: telemetry.Wheel{Pressure: telemetry.Float64(238), Temperature: telemetry.Float64(29)},
		RearLeft:   telemetry.Wheel{Pressure: telemetry.Float64(232), Temperature: telemetry.Float64(27)},
		RearRight:  telemetry.Wheel{Pressure: telemetry.Float64(236), Temperature: telemetry.Float64(27)},
	}
	m.hasTires = true
	m.temps = telemetry.TemperatureMetrics{
		Cabin:   telemetry.Float64(21.5),
		Ambient: telemetry.Float64(14.0),
	}
	m.hasTemps = true
	return m
}

func TestRenderDashboard_NoSize(t *testing.T) {
	m := Model{}
	assert.Equal(t, "Starting vdash...", m.renderDashboard())
}

func TestRenderDashboard_TooSmall(t *testing.T) {
	m := Model{width: 40, height: 10}
	out := m.renderDashboard()

	assert.Contains(t, out, "Terminal too small")
	assert.Contains(t, out, "64x20")
	assert.Contains(t, out, "40x10")
}

func TestRenderDashboard_Waiting(t *testing.T) {
	m := Model{width: 80, height: 24}
	out := m.renderDashboard()

	assert.Contains(t, out, "waiting for telemetry")
}

func TestRenderDashboard_WaitingNamesSource(t *testing.T) {
	m := Model{width: 80, height: 24, sourceLabel: "demo"}
	out := m.renderDashboard()

	assert.Contains(t, out, "waiting for telemetry from demo")
}

func TestRenderDashboard_Full(t *testing.T) {
	m := fullModel()
	out := m.renderDashboard()

	// All card sections present
	assert.Contains(t, out, "GEAR")
	assert.Contains(t, out, "SPEED")
	assert.Contains(t, out, "RPM")
	assert.Contains(t, out, "FUEL")
	assert.Contains(t, out, "TIRES")
	assert.Contains(t, out, "CABIN")
	assert.Contains(t, out, "AMBIENT")
	assert.Contains(t, out, "TRIP")

	// Header and footer
	assert.Contains(t, out, "vdash")
	assert.Contains(t, out, "Golf 7 1.4 TSI")
	assert.Contains(t, out, "quit")

	// A few readings spot-checked across the cards
	assert.Contains(t, out, "km/h")
	assert.Contains(t, out, "1900 rpm")
	assert.Contains(t, out, "81%")
	assert.Contains(t, out, "01:05")
}

func TestRenderDashboard_HelpOverlay(t *testing.T) {
	m := fullModel()
	m.showHelp = true
	out := m.renderDashboard()

	assert.Contains(t, out, "Keyboard Shortcuts")
	// The overlay replaces the grid
	assert.NotContains(t, out, "SPEED")
}

func TestRenderDashboard_PlaceholdersEverywhere(t *testing.T) {
	// Streams delivered but every field absent: the grid renders
	// placeholders, never zeroes or a panic.
	m := Model{
		thresholds: telemetry.DefaultThresholds(),
		width:      100,
		height:     40,
		hasMain:    true,
		hasFuel:    true,
		hasTrip:    true,
		hasTires:   true,
		hasTemps:   true,
	}
	out := m.renderDashboard()

	assert.Contains(t, out, telemetry.Placeholder)
	assert.Contains(t, out, "GEAR")
	assert.Contains(t, out, "0%")
}

func TestRenderHeader(t *testing.T) {
	m := Model{width: 80, vehicle: "Golf 7 1.4 TSI", sourceLabel: "demo"}
	out := m.renderHeader()

	assert.Contains(t, out, "vdash")
	assert.Contains(t, out, "Golf 7 1.4 TSI")
	assert.Contains(t, out, "demo")
}

func TestRenderHeader_TruncatesLongVehicleName(t *testing.T) {
	m := Model{width: 80, vehicle: strings.Repeat("x", 40)}
	out := m.renderHeader()

	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("x", 25))
}

func TestRenderPulse(t *testing.T) {
	m := Model{}

	// No snapshot yet: dashed pulse, no age
	out := m.renderPulse()
	assert.Contains(t, out, PulseStale)
	assert.NotContains(t, out, "ago")

	// Fresh snapshot: live pulse with age
	m.lastUpdate = time.Now()
	out = m.renderPulse()
	assert.Contains(t, out, PulseLive)
	assert.Contains(t, out, "updated 0s ago")

	// Feed gone quiet
	m.lastUpdate = time.Now().Add(-10 * time.Second)
	out = m.renderPulse()
	assert.Contains(t, out, PulseStale)
	assert.Contains(t, out, "stale")
}

func TestRenderInfoRows(t *testing.T) {
	m := fullModel()
	out := m.renderInfoRows(80)

	assert.Contains(t, out, "Avg consumption")
	assert.Contains(t, out, "6.2 l/100km")
	assert.Contains(t, out, "Range")
	assert.Contains(t, out, "589 km")
	assert.Contains(t, out, "Odometer")
	assert.Contains(t, out, "84213 km")
	assert.Contains(t, out, "Trip distance")
	assert.Contains(t, out, "12.4 km")
	assert.Contains(t, out, "Trip time")
	assert.Contains(t, out, "01:05")

	assert.Len(t, strings.Split(out, "\n"), infoRowCount)
}

func TestRenderInfoRows_NoData(t *testing.T) {
	m := Model{thresholds: telemetry.DefaultThresholds()}
	out := m.renderInfoRows(80)

	// Labels always render; values fall back to the placeholder
	assert.Contains(t, out, "Avg consumption")
	assert.Contains(t, out, "Trip time")
	assert.Contains(t, out, telemetry.Placeholder)
	assert.NotContains(t, out, "00:00")
}

func TestRenderInfoSection(t *testing.T) {
	m := fullModel()
	out := m.renderInfoSection(80)

	assert.Contains(t, out, "TRIP")
	assert.Contains(t, out, "╭─")
	assert.Contains(t, out, "╰")
	assert.Contains(t, out, "Odometer")
}

func TestRenderFooter(t *testing.T) {
	m := Model{}
	out := m.renderFooter()

	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "help")
	assert.Contains(t, out, "scroll")
}

func TestRenderWaiting_SpinnerAdvances(t *testing.T) {
	m := Model{width: 80, height: 24}
	first := m.renderWaiting()

	m.spinnerFrame = 1
	second := m.renderWaiting()

	// Different frames render different glyphs
	assert.NotEqual(t, first, second)
	assert.Contains(t, second, WaitingSpinnerFrames[1])
}
