// Package cli implements the vdash command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small command function for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Command functions (dashCommand, initCommand, doctorCommand)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "vdash"; running it bare opens the dashboard with
// the configured source. Subcommands:
//
//	vdash dash          - Open the dashboard (flags override the source)
//	vdash init          - Create a .vdash.yaml config interactively
//	vdash doctor        - Diagnose terminal and config issues
//	vdash version       - Print version information
//	vdash completion    - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --debug) are defined on the root command and
// available to all subcommands. Command-specific flags like --replay and
// --interval are defined on individual commands.
//
// # Wiring
//
// dashCommand owns the process lifecycle: it loads and validates config,
// refuses to start without a TTY, builds the snapshot store, starts the
// demo or replay source, runs the Bubble Tea program, and stops the
// source on exit.
package cli
