package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		decimals int
		want     string
	}{
		{"absent renders placeholder", nil, 1, Placeholder},
		{"one decimal", Float64(6.24), 1, "6.2"},
		{"one decimal rounds up", Float64(6.28), 1, "6.3"},
		{"zero decimals", Float64(84213.4), 0, "84213"},
		{"zero decimals rounds", Float64(107.6), 0, "108"},
		{"zero value", Float64(0), 0, "0"},
		{"negative temperature", Float64(-7.3), 0, "-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.value, tt.decimals))
		})
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, Placeholder, FormatInt(nil))
	assert.Equal(t, "0", FormatInt(Int(0)))
	assert.Equal(t, "3250", FormatInt(Int(3250)))
	assert.Equal(t, "-1", FormatInt(Int(-1)))
}

func TestFormatGear(t *testing.T) {
	assert.Equal(t, Placeholder, FormatGear(""))
	assert.Equal(t, "P", FormatGear("P"))
	assert.Equal(t, "D", FormatGear("D"))
	assert.Equal(t, "M3", FormatGear("M3"))
}

func TestFormatTripTime(t *testing.T) {
	tests := []struct {
		name    string
		minutes *int
		want    string
	}{
		{"absent renders placeholder", nil, Placeholder},
		{"zero minutes", Int(0), "00:00"},
		{"under an hour", Int(45), "00:45"},
		{"exactly one hour", Int(60), "01:00"},
		{"ninety minutes", Int(90), "01:30"},
		{"single digit padding", Int(65), "01:05"},
		{"full day does not wrap", Int(1440), "24:00"},
		{"beyond a day", Int(1500), "25:00"},
		{"negative clamps to zero", Int(-10), "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTripTime(tt.minutes))
		})
	}
}
