// Package dashboard implements the terminal UI for the vehicle telemetry
// display.
//
// The dashboard renders gear, speed, and engine revs across the top, fuel
// level and tire pressures in the middle, cabin and ambient temperature
// below, and a scrollable section of trip rows at the bottom. Every value
// is color-coded by the derivation rules in the telemetry package; readings
// the vehicle has not delivered render as a dash instead of failing.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds the latest snapshot of each telemetry group plus UI state
//   - Update: Processes messages (keystrokes, snapshots, animation ticks)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// The dashboard is purely reactive: it never polls the vehicle. Each of the
// five snapshot streams gets its own wait command:
//
//  1. Init() arms a blocking channel receive per stream via waitFor*()
//  2. A snapshot arrives and is delivered as a typed message (mainMsg, ...)
//  3. Update() stores the snapshot and re-arms the wait for that stream
//  4. View() re-renders; derivation rules run on whatever state is present
//
// Streams deliver only the latest snapshot; a slow terminal never builds a
// backlog. Until the first snapshot arrives the dashboard shows a waiting
// spinner driven by spinnerTickMsg.
//
// # Layout
//
// The grid is fixed: three equal cards on top, fuel and tires side by side,
// two temperature cards, then the info section. Cards scale with terminal
// width; below 64x20 the dashboard shows a resize notice instead of
// degrading the grid.
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C   - Quit
//	j/k, ↑/↓    - Scroll info rows
//	PgUp/PgDn   - Scroll info rows by page
//	Esc         - Close help
//	?           - Toggle help overlay
package dashboard
