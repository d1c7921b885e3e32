package ui

// Unicode symbols for status indicators in command output.
const (
	SymbolSuccess  = "✓" // Check passed / step completed
	SymbolFail     = "✗" // Check failed
	SymbolPending  = "○" // Not yet started
	SymbolProgress = "◐" // In progress
	SymbolComplete = "●" // Done (alternative to success)
	SymbolSkipped  = "⊘" // Skipped
)
