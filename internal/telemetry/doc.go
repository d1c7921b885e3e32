// Package telemetry holds the vehicle data model: snapshot types, the
// derivation rules that classify readings for display, formatting helpers,
// and the reactive store the dashboard subscribes to.
//
// # Snapshots
//
// Vehicle state is carried in five immutable snapshot groups, published and
// consumed independently:
//
//	MainMetrics         - gear, speed, engine RPM
//	FuelMetrics         - tank volume, capacity, range, average consumption
//	TripMetrics         - odometer, trip distance, trip duration
//	TireMetrics         - pressure and temperature for all four wheels
//	TemperatureMetrics  - cabin and ambient temperature
//
// Every numeric field is a pointer: nil means the vehicle has not reported
// the value. Absent data is a normal state, rendered as a placeholder glyph,
// never an error.
//
// # Rules
//
// Derivation rules are pure functions from readings (plus thresholds) to a
// Status. They import nothing from the UI layer, so every classification is
// testable without a terminal:
//
//	GearStatus          - selector position to status (P/R/N/D special-cased)
//	RPMStatus           - idle / normal / high revs
//	TemperatureStatus   - cold / comfortable / warm, absent = disabled
//	FuelPercent         - fill level in [0, 100], capacity fallback applied
//	FuelStatus          - critical / reserve / ok
//	TirePressureStatus  - under / in / over the inclusive pressure range
//
// Threshold defaults live here as named constants and are surfaced through
// the configuration; the rules themselves always take thresholds as
// arguments.
//
// # Store
//
// Store is the subscription boundary: producers publish snapshots, the
// dashboard subscribes to per-group channels. Channels are latest-only — a
// consumer that falls behind sees the newest state, never a backlog — and
// publishes equal to the current snapshot are suppressed.
//
// # Sources
//
// Two snapshot producers ship with the package, so the dashboard runs with
// no vehicle attached:
//
//	DemoSource    - deterministic simulated drive (default)
//	ReplaySource  - plays a YAML drive script of timed steps
//
// Both publish through the Store and know nothing about rendering.
package telemetry
