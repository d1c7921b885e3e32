package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vdash/vdash/internal/doctor"
	"github.com/vdash/vdash/internal/ui"
)

var doctorJSON bool

// doctorCmd diagnoses terminal and configuration issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose terminal and config issues",
	Long: `Run diagnostic checks to identify common issues.

Checks:
  - Terminal capabilities (TTY, size, color profile, locale)
  - Configuration validity
  - Replay script syntax (when the replay source is selected)

Examples:
  vdash doctor
  vdash doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand runs all checks and reports the results.
func doctorCommand() error {
	checks := collectChecks(Config())
	results := doctor.RunAll(checks)

	if doctorJSON {
		return outputDoctorJSON(checks, results)
	}

	return outputDoctorText(checks, results)
}

// collectChecks gathers all diagnostic checks.
func collectChecks(configPath string) []doctor.Check {
	var checks []doctor.Check
	checks = append(checks, doctor.NewTerminalChecks()...)
	checks = append(checks, doctor.NewConfigChecks(configPath)...)
	return checks
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	// Group by category, preserving check order
	grouped := make(map[string][]doctor.CheckResult)
	categoryOrder := []string{}

	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}

	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
//
//nolint:unparam // error return keeps the signature parallel with JSON output
func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) error {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(headerStyle.Render("vdash Diagnostic Report"))
	fmt.Println()

	// Group checks by category
	categoryOrder := []string{"TERMINAL", "CONFIG"}
	grouped := make(map[string][]int) // category -> indices

	for i, check := range checks {
		cat := check.Category()
		grouped[cat] = append(grouped[cat], i)
	}

	for _, category := range categoryOrder {
		indices, ok := grouped[category]
		if !ok || len(indices) == 0 {
			continue
		}

		fmt.Println(headerStyle.Render(category))

		for _, idx := range indices {
			renderCheckResult(results[idx], successStyle, errorStyle, warnStyle, mutedStyle)
		}

		fmt.Println()
	}

	fmt.Println(strings.Repeat("━", 60))
	fmt.Println()

	if !doctor.HasIssues(results) {
		fmt.Printf("%s %s\n", successStyle.Render(ui.SymbolSuccess), doctor.Summary(results))
	} else {
		style := warnStyle
		symbol := ui.SymbolComplete
		if doctor.HasFailures(results) {
			style = errorStyle
			symbol = ui.SymbolFail
		}
		fmt.Printf("%s %s\n", style.Render(symbol), doctor.Summary(results))
	}

	fmt.Println()
	return nil
}

// renderCheckResult renders a single check result.
func renderCheckResult(result doctor.CheckResult, successStyle, errorStyle, warnStyle, mutedStyle lipgloss.Style) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = ui.SymbolComplete
		style = successStyle
	case doctor.StatusWarn:
		symbol = ui.SymbolComplete // Still shows as done, but with warning styling
		style = warnStyle
	case doctor.StatusFail:
		symbol = ui.SymbolFail
		style = errorStyle
	}

	fmt.Printf("  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		// Indent suggestion
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Printf("    %s\n", mutedStyle.Render(line))
		}
	}
}
