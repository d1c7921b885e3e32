package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vdash/vdash/internal/telemetry"
)

// cardDividerStyle creates a subtle divider line with matching background
var cardDividerStyle = lipgloss.NewStyle().
	Foreground(ColorBorder).
	Background(ColorSurfaceBg)

// renderCardDivider creates a subtle thin divider line
func renderCardDivider(width int) string {
	divider := strings.Repeat("─", width)
	return cardDividerStyle.Render(divider)
}

// renderCardLine renders a text line with proper background fill.
// Applies background to the entire line including content and padding.
func renderCardLine(content string, width int) string {
	contentWidth := lipgloss.Width(content)
	padding := ""
	if width > contentWidth {
		padding = strings.Repeat(" ", width-contentWidth)
	}
	lineStyle := lipgloss.NewStyle().Background(ColorSurfaceBg)
	return lineStyle.Render(content + padding)
}

// renderCard wraps content lines in the card chrome at the given outer width.
func renderCard(width int, lines []string) string {
	// Inner width for content (account for border and card padding)
	innerWidth := width - 4
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, renderCardLine(l, innerWidth))
	}
	return CardStyle.Width(width).Render(strings.Join(out, "\n"))
}

// centerLine centers content within width, ANSI-aware.
func centerLine(content string, width int) string {
	w := lipgloss.Width(content)
	if w >= width {
		return content
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + content + strings.Repeat(" ", width-w-left)
}

// splitLine lays out left and right content at opposite edges of the line.
func splitLine(left, right string, width int) string {
	padding := ""
	if width > lipgloss.Width(left)+lipgloss.Width(right) {
		padding = strings.Repeat(" ", width-lipgloss.Width(left)-lipgloss.Width(right))
	}
	return left + padding + right
}

// padRight pads content with spaces to the given visible width, ANSI-aware.
func padRight(content string, width int) string {
	w := lipgloss.Width(content)
	if w >= width {
		return content
	}
	return content + strings.Repeat(" ", width-w)
}

// truncateWithEllipsis truncates a string to maxLen, adding ellipsis if needed.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}

// withUnit appends a unit to a formatted value, leaving placeholders bare.
func withUnit(s, unit string) string {
	if s == telemetry.Placeholder {
		return s
	}
	return s + unit
}

// gearPositions is the selector strip rendered under the gear value.
var gearPositions = []string{"P", "R", "N", "D"}

// renderGearCard shows the selector position over a P R N D strip with the
// current position lit in its status color.
func (m Model) renderGearCard(width int) string {
	innerWidth := width - 4
	gear := ""
	if m.hasMain {
		gear = m.main.Gear
	}
	st := telemetry.GearStatus(gear)

	value := StatusStyle(st).Bold(true).Render(telemetry.FormatGear(gear))

	parts := make([]string, 0, len(gearPositions))
	for _, pos := range gearPositions {
		if pos == gear {
			parts = append(parts, StatusStyle(st).Bold(true).Render(pos))
		} else {
			parts = append(parts, UnitStyle.Render(pos))
		}
	}
	strip := strings.Join(parts, " ")

	return renderCard(width, []string{
		CardTitleStyle.Render("GEAR"),
		centerLine(value, innerWidth),
		centerLine(strip, innerWidth),
	})
}

// renderSpeedCard shows road speed in whole km/h. Speed has no thresholds;
// it renders in the neutral text color.
func (m Model) renderSpeedCard(width int) string {
	innerWidth := width - 4
	var speed *float64
	if m.hasMain {
		speed = m.main.Speed
	}

	value := ValueStyle.Bold(true).Render(telemetry.FormatFloat(speed, 0))

	return renderCard(width, []string{
		CardTitleStyle.Render("SPEED"),
		centerLine(value, innerWidth),
		centerLine(UnitStyle.Render("km/h"), innerWidth),
	})
}

// renderRPMCard shows engine speed with a thin gauge scaled to twice the
// high-revs threshold.
func (m Model) renderRPMCard(width int) string {
	innerWidth := width - 4
	var rpm *int
	if m.hasMain {
		rpm = m.main.RPM
	}
	st := telemetry.RPMStatus(rpm, m.thresholds.RPMIdle, m.thresholds.RPMHigh)

	value := StatusStyle(st).Bold(true).Render(withUnit(telemetry.FormatInt(rpm), " rpm"))

	percent := 0
	if rpm != nil {
		scale := m.thresholds.RPMHigh * 2
		if scale > 0 {
			percent = *rpm * 100 / scale
		}
	}

	return renderCard(width, []string{
		CardTitleStyle.Render("RPM"),
		centerLine(value, innerWidth),
		ThinStatusBar(innerWidth, percent, st),
	})
}

// renderFuelCard shows the fill percentage with a gauge bar and the raw
// volume/capacity line. The gauge and percentage follow the fuel rule; the
// raw line shows placeholders for whatever the vehicle did not report.
func (m Model) renderFuelCard(width int) string {
	innerWidth := width - 4
	var fuel telemetry.FuelMetrics
	if m.hasFuel {
		fuel = m.fuel
	}

	pct := telemetry.FuelPercent(fuel.Volume, fuel.Capacity, m.thresholds.TankCapacity)
	st := telemetry.FuelStatus(pct, m.thresholds.FuelLowPercent, m.thresholds.FuelReservePercent)

	pctText := StatusStyle(st).Bold(true).Render(fmt.Sprintf("%d%%", pct))
	tank := telemetry.FormatFloat(fuel.Volume, 1) + " / " + withUnit(telemetry.FormatFloat(fuel.Capacity, 1), " l")

	return renderCard(width, []string{
		splitLine(CardTitleStyle.Render("FUEL"), pctText, innerWidth),
		StatusBar(innerWidth, pct, st),
		renderCardDivider(innerWidth),
		splitLine(LabelStyle.Render("Tank"), ValueStyle.Render(tank), innerWidth),
	})
}

// tireChip renders one pressure badge. Background tint and text both come
// from the pressure rule; an absent reading gets the muted disabled chip.
func (m Model) tireChip(pos string, w telemetry.Wheel) string {
	st := telemetry.TirePressureStatus(w.Pressure, m.thresholds.TirePressureMin, m.thresholds.TirePressureMax)
	text := fmt.Sprintf("%s %3s", pos, telemetry.FormatFloat(w.Pressure, 0))
	return lipgloss.NewStyle().
		Background(StatusColor(st)).
		Foreground(ColorDarkBg).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// tireTemp renders the temperature line under a badge.
func (m Model) tireTemp(w telemetry.Wheel) string {
	return UnitStyle.Render(withUnit(telemetry.FormatFloat(w.Temperature, 0), "°"))
}

// renderTireCard shows the four pressure badges in a fixed 2x2 grid with
// the tire temperature under each badge. The grid never collapses: absent
// wheels keep their cell and render disabled.
func (m Model) renderTireCard(width int) string {
	innerWidth := width - 4
	var tires telemetry.TireMetrics
	if m.hasTires {
		tires = m.tires
	}

	// Fixed cell width keeps the grid aligned regardless of which
	// readings are present
	cell := 10
	row := func(left, right string) string {
		return centerLine(padRight(left, cell)+"  "+padRight(right, cell), innerWidth)
	}

	return renderCard(width, []string{
		CardTitleStyle.Render("TIRES"),
		row(m.tireChip("FL", tires.FrontLeft), m.tireChip("FR", tires.FrontRight)),
		row(m.tireTemp(tires.FrontLeft), m.tireTemp(tires.FrontRight)),
		row(m.tireChip("RL", tires.RearLeft), m.tireChip("RR", tires.RearRight)),
		row(m.tireTemp(tires.RearLeft), m.tireTemp(tires.RearRight)),
	})
}

// renderTempCard shows one temperature reading with the configured comfort
// range as a hint line.
func (m Model) renderTempCard(title string, temp *float64, cold float64, width int) string {
	innerWidth := width - 4
	band := m.thresholds.ComfortBand
	st := telemetry.TemperatureStatus(temp, cold, band)

	value := StatusStyle(st).Bold(true).Render(withUnit(telemetry.FormatFloat(temp, 0), "°C"))
	hint := UnitStyle.Render(fmt.Sprintf("comfort %g–%g°C", cold, cold+band))

	return renderCard(width, []string{
		CardTitleStyle.Render(title),
		centerLine(value, innerWidth),
		centerLine(hint, innerWidth),
	})
}
