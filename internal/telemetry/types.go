package telemetry

// Float64 returns a pointer to v. Convenience for building snapshots.
func Float64(v float64) *float64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// MainMetrics is the primary driving snapshot. Any field may be absent:
// an empty gear or a nil pointer means the value has not been reported.
type MainMetrics struct {
	Gear  string   // selector position ("P", "R", "N", "D", ...), "" if unknown
	Speed *float64 // km/h
	RPM   *int
}

// FuelMetrics describes the fuel system state.
type FuelMetrics struct {
	Volume         *float64 // liters currently in the tank
	Capacity       *float64 // tank size in liters, nil if unreported
	Range          *float64 // remaining range in km
	AvgConsumption *float64 // l/100km
}

// TripMetrics carries odometer and current-trip counters.
type TripMetrics struct {
	Odometer *float64 // km
	Distance *float64 // trip distance in km
	Duration *int     // trip duration in minutes
}

// Wheel is one tire's reading.
type Wheel struct {
	Pressure    *float64 // kPa
	Temperature *float64 // °C
}

// TireMetrics holds the four wheel readings.
type TireMetrics struct {
	FrontLeft  Wheel
	FrontRight Wheel
	RearLeft   Wheel
	RearRight  Wheel
}

// TemperatureMetrics carries cabin and outside temperatures in °C.
type TemperatureMetrics struct {
	Cabin   *float64
	Ambient *float64
}

// eqFloat compares two optional floats by value.
func eqFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Equal reports whether two snapshots carry the same values. Pointer fields
// are compared by pointee, so republishing an identical snapshot is detectable.
func (m MainMetrics) Equal(o MainMetrics) bool {
	return m.Gear == o.Gear && eqFloat(m.Speed, o.Speed) && eqInt(m.RPM, o.RPM)
}

// Equal reports whether two fuel snapshots carry the same values.
func (m FuelMetrics) Equal(o FuelMetrics) bool {
	return eqFloat(m.Volume, o.Volume) &&
		eqFloat(m.Capacity, o.Capacity) &&
		eqFloat(m.Range, o.Range) &&
		eqFloat(m.AvgConsumption, o.AvgConsumption)
}

// Equal reports whether two trip snapshots carry the same values.
func (m TripMetrics) Equal(o TripMetrics) bool {
	return eqFloat(m.Odometer, o.Odometer) &&
		eqFloat(m.Distance, o.Distance) &&
		eqInt(m.Duration, o.Duration)
}

// Equal reports whether two wheel readings carry the same values.
func (w Wheel) Equal(o Wheel) bool {
	return eqFloat(w.Pressure, o.Pressure) && eqFloat(w.Temperature, o.Temperature)
}

// Equal reports whether two tire snapshots carry the same values.
func (m TireMetrics) Equal(o TireMetrics) bool {
	return m.FrontLeft.Equal(o.FrontLeft) &&
		m.FrontRight.Equal(o.FrontRight) &&
		m.RearLeft.Equal(o.RearLeft) &&
		m.RearRight.Equal(o.RearRight)
}

// Equal reports whether two temperature snapshots carry the same values.
func (m TemperatureMetrics) Equal(o TemperatureMetrics) bool {
	return eqFloat(m.Cabin, o.Cabin) && eqFloat(m.Ambient, o.Ambient)
}
