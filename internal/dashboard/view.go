package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vdash/vdash/internal/telemetry"
)

// renderDashboard assembles the full screen: header, the three metric card
// rows, the scrollable info section, and the footer.
func (m Model) renderDashboard() string {
	if m.width == 0 {
		return "Starting vdash..."
	}
	if m.width < MinWidth || m.height < MinHeight {
		return m.renderTooSmall()
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if !m.receivedAny() {
		return m.renderWaiting()
	}

	// Each card carries a 1-column right margin
	topWidth := (m.width - 3) / 3
	midWidth := (m.width - 2) / 2

	var temps telemetry.TemperatureMetrics
	if m.hasTemps {
		temps = m.temps
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderGearCard(topWidth),
		m.renderSpeedCard(topWidth),
		m.renderRPMCard(topWidth),
	)
	midRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderFuelCard(midWidth),
		m.renderTireCard(midWidth),
	)
	tempRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTempCard("CABIN", temps.Cabin, m.thresholds.CabinCold, midWidth),
		m.renderTempCard("AMBIENT", temps.Ambient, m.thresholds.AmbientCold, midWidth),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		topRow,
		midRow,
		tempRow,
		m.renderInfoSection(m.width),
		m.renderFooter(),
	)
}

// renderHeader shows the app name, the vehicle, the telemetry source, and a
// heartbeat that dims once snapshots stop arriving.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render("vdash")

	left := title
	if m.vehicle != "" {
		left += "  " + ValueStyle.Render(truncateWithEllipsis(m.vehicle, 24))
	}
	if m.sourceLabel != "" {
		left += "  " + UnitStyle.Render(m.sourceLabel)
	}

	line := splitLine(left, m.renderPulse(), m.width-2)
	return HeaderStyle.Width(m.width).Render(line)
}

// renderPulse renders the header heartbeat with the age of the last snapshot.
func (m Model) renderPulse() string {
	if m.lastUpdate.IsZero() {
		return UnitStyle.Render(PulseStale)
	}
	age := time.Since(m.lastUpdate)
	if age > staleAfter {
		return UnitStyle.Render(PulseStale + " stale")
	}
	pulse := lipgloss.NewStyle().Foreground(GetSpinnerColor(m.spinnerFrame)).Render(PulseLive)
	return pulse + " " + UnitStyle.Render(fmt.Sprintf("updated %ds ago", int(age.Seconds())))
}

// renderInfoRows lays out the labeled trip rows at the given inner width.
// This is the viewport content: labels left, values right.
func (m Model) renderInfoRows(width int) string {
	var fuel telemetry.FuelMetrics
	if m.hasFuel {
		fuel = m.fuel
	}
	var trip telemetry.TripMetrics
	if m.hasTrip {
		trip = m.trip
	}

	rows := []struct {
		label string
		value string
	}{
		{"Avg consumption", withUnit(telemetry.FormatFloat(fuel.AvgConsumption, 1), " l/100km")},
		{"Range", withUnit(telemetry.FormatFloat(fuel.Range, 0), " km")},
		{"Odometer", withUnit(telemetry.FormatFloat(trip.Odometer, 0), " km")},
		{"Trip distance", withUnit(telemetry.FormatFloat(trip.Distance, 1), " km")},
		{"Trip time", telemetry.FormatTripTime(trip.Duration)},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, splitLine(LabelStyle.Render(r.label), ValueStyle.Render(r.value), width))
	}
	return strings.Join(lines, "\n")
}

// renderInfoSection wraps the info viewport in the section box. The header
// shows scroll progress when there are more rows than fit.
func (m Model) renderInfoSection(width int) string {
	scroll := ""
	if m.viewportReady && m.infoViewport.TotalLineCount() > m.infoViewport.Height {
		scroll = fmt.Sprintf("%d%%", int(m.infoViewport.ScrollPercent()*100))
	}

	var body string
	if m.viewportReady {
		body = m.infoViewport.View()
	} else {
		body = m.renderInfoRows(width - 4)
	}

	lines := []string{SectionHeader("TRIP", scroll, width)}
	for _, l := range strings.Split(body, "\n") {
		lines = append(lines, SectionContentLine(l, width))
	}
	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderFooter shows the key hints.
func (m Model) renderFooter() string {
	return FooterStyle.Render("q quit · ? help · ↑/↓ scroll")
}

// renderWaiting is shown until the first snapshot arrives on any stream.
func (m Model) renderWaiting() string {
	frame := WaitingSpinnerFrames[m.spinnerFrame%len(WaitingSpinnerFrames)]
	spinner := lipgloss.NewStyle().Foreground(GetSpinnerColor(m.spinnerFrame)).Render(frame)
	text := LabelStyle.Render("waiting for telemetry")
	if m.sourceLabel != "" {
		text = LabelStyle.Render("waiting for telemetry from " + m.sourceLabel)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, spinner+" "+text)
}

// renderTooSmall is shown when the terminal cannot fit the grid.
func (m Model) renderTooSmall() string {
	msg := fmt.Sprintf("Terminal too small: need at least %dx%d, have %dx%d",
		MinWidth, MinHeight, m.width, m.height)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, LabelStyle.Render(msg))
}
