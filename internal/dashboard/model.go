package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vdash/vdash/internal/telemetry"
)

// Minimum terminal size below which the grid is replaced with a notice.
const (
	MinWidth  = 64
	MinHeight = 20
)

// infoRowCount is the number of labeled rows in the scrollable info section.
const infoRowCount = 5

// fixedChromeHeight is the vertical space consumed by everything that is not
// the scrollable info rows: header, the three card rows with their margins,
// the info section borders, and the footer.
const fixedChromeHeight = 26

// spinnerInterval is the animation frame rate for the waiting spinner and
// the header pulse.
const spinnerInterval = 150 * time.Millisecond

// staleAfter is how long without a snapshot before the header pulse dims.
const staleAfter = 3 * time.Second

// Options configure the dashboard beyond its data streams.
type Options struct {
	// Vehicle is the name shown in the header; may be empty.
	Vehicle string
	// SourceLabel names the snapshot producer, e.g. "demo" or a script path.
	SourceLabel string
	// Thresholds tune the derivation rules.
	Thresholds telemetry.Thresholds
}

// Model is the Bubble Tea model for the telemetry dashboard. It holds the
// latest snapshot of each stream and nothing else: no history, no derived
// caches. Rendering recomputes everything from the snapshots each frame.
type Model struct {
	thresholds  telemetry.Thresholds
	vehicle     string
	sourceLabel string

	// Latest snapshot per stream. The has* flags flip on first delivery so
	// streams that have never reported render placeholders, not zero values.
	main     telemetry.MainMetrics
	hasMain  bool
	fuel     telemetry.FuelMetrics
	hasFuel  bool
	trip     telemetry.TripMetrics
	hasTrip  bool
	tires    telemetry.TireMetrics
	hasTires bool
	temps    telemetry.TemperatureMetrics
	hasTemps bool

	mainCh  <-chan telemetry.MainMetrics
	fuelCh  <-chan telemetry.FuelMetrics
	tripCh  <-chan telemetry.TripMetrics
	tiresCh <-chan telemetry.TireMetrics
	tempsCh <-chan telemetry.TemperatureMetrics

	width      int
	height     int
	lastUpdate time.Time
	quitting   bool
	showHelp   bool

	// Animation state
	spinnerFrame int

	// Scrollable info section (consumption, range, odometer, trip)
	infoViewport  viewport.Model
	viewportReady bool
}

// tickMsg refreshes the header age display.
type tickMsg time.Time

// spinnerTickMsg signals a spinner animation frame update.
type spinnerTickMsg time.Time

// One message type per stream so Update can re-arm exactly the channel that
// delivered.
type (
	mainMsg  telemetry.MainMetrics
	fuelMsg  telemetry.FuelMetrics
	tripMsg  telemetry.TripMetrics
	tiresMsg telemetry.TireMetrics
	tempsMsg telemetry.TemperatureMetrics
)

// streamClosedMsg arrives when a subscription channel closes (store torn
// down). The model stops re-arming that stream.
type streamClosedMsg struct{}

// NewModel creates a dashboard model subscribed to all five streams of the
// store.
func NewModel(store *telemetry.Store, opts Options) Model {
	return Model{
		thresholds:  opts.Thresholds,
		vehicle:     opts.Vehicle,
		sourceLabel: opts.SourceLabel,
		mainCh:      store.SubscribeMain(),
		fuelCh:      store.SubscribeFuel(),
		tripCh:      store.SubscribeTrip(),
		tiresCh:     store.SubscribeTires(),
		tempsCh:     store.SubscribeTemps(),
	}
}

// Init arms one wait-command per stream plus the animation and header ticks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		spinnerTickCmd(),
		waitForMain(m.mainCh),
		waitForFuel(m.fuelCh),
		waitForTrip(m.tripCh),
		waitForTires(m.tiresCh),
		waitForTemps(m.tempsCh),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		// Remaining keys scroll the info section
		var cmd2 tea.Cmd
		m.infoViewport, cmd2 = m.infoViewport.Update(msg)
		return m, cmd2

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInfoViewport()

	case tickMsg:
		return m, tickCmd()

	case spinnerTickMsg:
		// Large cycle so slow animations derived from the frame can finish
		m.spinnerFrame = (m.spinnerFrame + 1) % 10000
		return m, spinnerTickCmd()

	case mainMsg:
		m.main = telemetry.MainMetrics(msg)
		m.hasMain = true
		m.lastUpdate = time.Now()
		return m, waitForMain(m.mainCh)

	case fuelMsg:
		m.fuel = telemetry.FuelMetrics(msg)
		m.hasFuel = true
		m.lastUpdate = time.Now()
		m.refreshInfoContent()
		return m, waitForFuel(m.fuelCh)

	case tripMsg:
		m.trip = telemetry.TripMetrics(msg)
		m.hasTrip = true
		m.lastUpdate = time.Now()
		m.refreshInfoContent()
		return m, waitForTrip(m.tripCh)

	case tiresMsg:
		m.tires = telemetry.TireMetrics(msg)
		m.hasTires = true
		m.lastUpdate = time.Now()
		return m, waitForTires(m.tiresCh)

	case tempsMsg:
		m.temps = telemetry.TemperatureMetrics(msg)
		m.hasTemps = true
		m.lastUpdate = time.Now()
		return m, waitForTemps(m.tempsCh)

	case streamClosedMsg:
		// Store is shutting down; keep rendering the last state.
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// receivedAny reports whether any stream has delivered yet.
func (m Model) receivedAny() bool {
	return m.hasMain || m.hasFuel || m.hasTrip || m.hasTires || m.hasTemps
}

// resizeInfoViewport creates or resizes the info section viewport.
func (m *Model) resizeInfoViewport() {
	height := m.height - fixedChromeHeight
	if height < 2 {
		height = 2
	}
	if height > infoRowCount {
		height = infoRowCount
	}

	// Inner width: the section borders eat "│ " and " │"
	width := m.width - 4
	if width < 1 {
		width = 1
	}

	if !m.viewportReady {
		m.infoViewport = viewport.New(width, height)
		m.viewportReady = true
	} else {
		m.infoViewport.Width = width
		m.infoViewport.Height = height
	}
	m.refreshInfoContent()
}

// refreshInfoContent re-renders the info rows into the viewport.
func (m *Model) refreshInfoContent() {
	if !m.viewportReady {
		return
	}
	m.infoViewport.SetContent(m.renderInfoRows(m.infoViewport.Width))
}

// tickCmd returns a command that refreshes the header once a second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// spinnerTickCmd returns a command that sends a spinner tick for animation.
func spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// The wait commands block on one subscription channel each and convert the
// delivery into a typed message. Update re-arms the command after every
// delivery, so each stream always has exactly one reader in flight.

func waitForMain(ch <-chan telemetry.MainMetrics) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return mainMsg(v)
	}
}

func waitForFuel(ch <-chan telemetry.FuelMetrics) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return fuelMsg(v)
	}
}

func waitForTrip(ch <-chan telemetry.TripMetrics) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return tripMsg(v)
	}
}

func waitForTires(ch <-chan telemetry.TireMetrics) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return tiresMsg(v)
	}
}

func waitForTemps(ch <-chan telemetry.TemperatureMetrics) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return tempsMsg(v)
	}
}
