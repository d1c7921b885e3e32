package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vdash/vdash/internal/telemetry"
)

// Dashboard color palette - Gen Z Electric Synthwave
const (
	// Background colors (glassmorphism-inspired)
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for readings - neon style
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink
	ColorInfo     = lipgloss.Color("#00FFFF") // Neon cyan

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors - neon pink primary, purple secondary
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
)

// Base styles for the dashboard
var (
	// Container styles
	DashboardStyle = lipgloss.NewStyle().
			Background(ColorDarkBg)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	// Card styles - no background set here, each line handles its own
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	// Text styles
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	UnitStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Heartbeat glyphs for the header: a filled pulse while snapshots are
// flowing, a dashed circle once the feed goes quiet.
const (
	PulseLive  = "◉"
	PulseStale = "◌"
)

// WaitingSpinnerFrames are the animation frames shown before the first
// snapshot arrives. Rotates through half-circle positions for a smooth spin.
var WaitingSpinnerFrames = []string{"◐", "◓", "◑", "◒"}

// SpinnerColorFrames defines the color cycling for animated glyphs.
// Cycles through neon ambers for a vibrant effect.
var SpinnerColorFrames = []lipgloss.Color{
	lipgloss.Color("#FFAA00"), // Electric amber
	lipgloss.Color("#FF8800"), // Orange
	lipgloss.Color("#FFCC00"), // Gold
	lipgloss.Color("#FFAA00"), // Electric amber
	lipgloss.Color("#FF9900"), // Amber-orange
	lipgloss.Color("#FFBB00"), // Yellow-amber
	lipgloss.Color("#FFAA00"), // Electric amber
	lipgloss.Color("#FF7700"), // Deep amber
}

// GetSpinnerColor returns the color for the current animation frame index.
func GetSpinnerColor(frameIndex int) lipgloss.Color {
	return SpinnerColorFrames[frameIndex%len(SpinnerColorFrames)]
}

// StatusColor maps a derivation result to its display color.
func StatusColor(st telemetry.Status) lipgloss.Color {
	switch st {
	case telemetry.StatusSuccess:
		return ColorHealthy
	case telemetry.StatusInfo:
		return ColorInfo
	case telemetry.StatusWarning:
		return ColorWarning
	case telemetry.StatusError:
		return ColorCritical
	case telemetry.StatusDisabled:
		return ColorTextMuted
	default:
		return ColorTextPrimary
	}
}

// StatusStyle returns a style with the status color as foreground.
func StatusStyle(st telemetry.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusColor(st))
}

// StatusBar renders a gauge bar filled to percent and colored by status.
func StatusBar(width int, percent int, st telemetry.Status) string {
	if width < 1 {
		width = 1
	}

	// Clamp percentage to 0-100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "▰"
		} else {
			bar += "▱"
		}
	}

	return StatusStyle(st).Render(bar)
}

// ThinStatusBar renders a minimal line-based gauge using thin characters:
// ━ for filled segments, ─ for empty segments.
func ThinStatusBar(width int, percent int, st telemetry.Status) string {
	if width < 1 {
		width = 1
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "━"
		} else {
			bar += "─"
		}
	}

	return StatusStyle(st).Render(bar)
}

// SectionHeader renders a section header with the title on the left and value on the right.
// Format: ╭─ Title ────────────────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	// Calculate visible widths using lipgloss.Width for ANSI-aware measurement
	// Left: "╭─ " (3 chars) + title + " " (1 char)
	leftWidth := 3 + lipgloss.Width(title) + 1

	// Right: " " (1 char) + value + " ╮" (2 chars)
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}

	middle := strings.Repeat("─", fillWidth)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+middle+" ") +
		valueStyle.Render(value) +
		borderStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a section.
// Format: ╰────────────────────────────────────────────────────╯
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}

	// ╰ and ╯ are each 1 display character
	middle := strings.Repeat("─", width-2)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	return borderStyle.Render("╰" + middle + "╯")
}

// SectionContentLine renders a content line with left and right borders, properly padded to width.
// Format: │ content                                              │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)

	contentWidth := lipgloss.Width(content)

	// Inner width is total width minus the borders and padding: "│ " on left and " │" on right
	innerWidth := width - 4

	padding := innerWidth - contentWidth
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}
