// Package ui provides the shared bits of vdash's plain command output:
// semantic colors and status symbols used by init and doctor.
//
// The full-screen dashboard does not use this package; it carries its own
// truecolor palette in internal/dashboard. These colors are plain ANSI codes
// so scripted and dumb terminals render them sensibly.
//
// # Color Scheme
//
//	ColorSuccess   (green)  - Check passed, file written
//	ColorError     (red)    - Failures
//	ColorWarning   (yellow) - Degraded but usable
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, hints
//	ColorSecondary (blue)   - Labels
//
// # Symbols
//
//	SymbolSuccess  (✓) - Check passed
//	SymbolFail     (✗) - Check failed
//	SymbolPending  (○) - Not yet started
//	SymbolProgress (◐) - In progress
//	SymbolComplete (●) - Done
//	SymbolSkipped  (⊘) - Skipped
package ui
