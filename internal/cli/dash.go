package cli

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vdash/vdash/internal/config"
	"github.com/vdash/vdash/internal/dashboard"
	"github.com/vdash/vdash/internal/errors"
	"github.com/vdash/vdash/internal/logger"
	"github.com/vdash/vdash/internal/telemetry"
)

var (
	dashReplayFlag   string
	dashIntervalFlag string
)

// dashCmd opens the dashboard explicitly. Bare `vdash` does the same.
var dashCmd = &cobra.Command{
	Use:     "dash",
	Aliases: []string{"dashboard"},
	Short:   "Open the telemetry dashboard",
	Long: `Open the full-screen telemetry dashboard.

The snapshot source comes from the config file: the built-in demo drive
by default, or a YAML replay script. Flags override the config.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  j/k, ↑/↓    Scroll the info rows
  ?           Toggle help

Examples:
  vdash dash
  vdash dash --replay testdata/drive.yaml
  vdash dash --interval 100ms`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand(dashOptions{
			Replay:   dashReplayFlag,
			Interval: dashIntervalFlag,
		})
	},
}

func init() {
	dashCmd.Flags().StringVar(&dashReplayFlag, "replay", "",
		"replay a YAML drive script instead of the configured source")
	dashCmd.Flags().StringVar(&dashIntervalFlag, "interval", "",
		"demo snapshot cadence (e.g. 100ms, 1s)")
	rootCmd.AddCommand(dashCmd)
}

// dashOptions carries the flag overrides into dashCommand.
type dashOptions struct {
	Replay   string // Replay script path; switches the source to replay
	Interval string // Demo cadence; overrides the configured interval
}

// source produces telemetry snapshots into a store until stopped.
type source interface {
	Start()
	Stop()
}

// dashCommand wires config, store, and source into the Bubble Tea program.
func dashCommand(opts dashOptions) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"stdout is not a terminal",
			"The dashboard needs an interactive terminal. Run 'vdash doctor' for details.")
	}

	interval := cfg.SourceInterval()
	if opts.Interval != "" {
		parsed, err := time.ParseDuration(opts.Interval)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid interval: "+opts.Interval,
				"Use a duration like 100ms, 250ms, or 1s")
		}
		if parsed < 50*time.Millisecond {
			return errors.New(errors.ErrConfig,
				"Interval "+opts.Interval+" is below the 50ms minimum",
				"That would just burn CPU; try 100ms or slower")
		}
		interval = parsed
	}

	mode := cfg.Source.Mode
	replayFile := cfg.Source.ReplayFile
	if opts.Replay != "" {
		mode = config.SourceReplay
		replayFile = config.ExpandTilde(opts.Replay)
	}

	log := logger.Default()
	store := telemetry.NewStore()
	defer store.Close()

	var src source
	var label string

	switch mode {
	case config.SourceReplay:
		script, err := telemetry.LoadScript(replayFile)
		if err != nil {
			return err
		}
		src = telemetry.NewReplaySource(store, script, log)
		label = "replay " + filepath.Base(replayFile)
	default:
		src = telemetry.NewDemoSource(store, interval, log)
		label = "demo drive"
	}

	model := dashboard.NewModel(store, dashboard.Options{
		Vehicle:     cfg.Vehicle.Name,
		SourceLabel: label,
		Thresholds:  cfg.RuleThresholds(),
	})

	src.Start()
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()

	// Graceful shutdown: stop publishing before the store closes
	src.Stop()

	return err
}
