package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vdash/vdash/internal/config"
	"github.com/vdash/vdash/internal/errors"
	"github.com/vdash/vdash/internal/telemetry"
	"github.com/vdash/vdash/internal/ui"
)

var initForce bool

// initCmd creates a new .vdash.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .vdash.yaml configuration",
	Long: `Initialize a new vdash configuration file.

Creates a .vdash.yaml in the current directory through interactive
prompts: vehicle name, tank capacity, and the telemetry source. When
you pick the replay source, init can write a sample drive script to
get you started.

Examples:
  vdash init
  vdash init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// initCommand creates a new .vdash.yaml in the working directory.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect configuration values
	vehicleName := ""
	capacityStr := strconv.FormatFloat(telemetry.DefaultTankCapacity, 'g', -1, 64)
	mode := config.SourceDemo

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Vehicle name").
				Description("Shown in the dashboard header").
				Placeholder("Golf 7 1.4 TSI").
				Value(&vehicleName),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Tank capacity (liters)").
				Description("Used for the fuel gauge when the vehicle does not report capacity").
				Value(&capacityStr).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil // keep the default
					}
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("enter a number, like 45 or 52.5")
					}
					if v <= 0 {
						return fmt.Errorf("tank capacity must be positive")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Telemetry source").
				Options(
					huh.NewOption("Demo drive (simulated)", config.SourceDemo),
					huh.NewOption("Replay script (YAML)", config.SourceReplay),
				).
				Value(&mode),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility")
	}

	cfg := config.DefaultConfig()
	cfg.Vehicle.Name = strings.TrimSpace(vehicleName)
	if s := strings.TrimSpace(capacityStr); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			cfg.Vehicle.TankCapacity = v
		}
	}
	cfg.Source.Mode = mode

	// Replay mode needs a script path; offer a sample script if the file
	// does not exist yet
	if mode == config.SourceReplay {
		replayFile := "drive.yaml"
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Replay script path").
					Description("A YAML drive script; ~ expands to your home directory").
					Value(&replayFile).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("replay mode needs a script path")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility")
		}
		cfg.Source.ReplayFile = strings.TrimSpace(replayFile)

		if err := offerSampleScript(config.ExpandTilde(cfg.Source.ReplayFile)); err != nil {
			return err
		}
	}

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  vdash         - Open the dashboard")
	fmt.Println("  vdash doctor  - Verify terminal and config")

	return nil
}

// offerSampleScript writes the built-in sample drive script if the chosen
// path does not exist yet.
func offerSampleScript(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	write := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("'%s' does not exist. Write a sample drive script there?", path)).
				Value(&write),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Create the script by hand; 'vdash doctor' validates it")
	}
	if !write {
		return nil
	}

	if err := os.WriteFile(path, []byte(telemetry.SampleScript), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrReplay,
			"Failed to write sample script: "+path,
			"Check directory permissions")
	}

	fmt.Printf("%s Wrote sample drive script to %s\n", ui.SymbolSuccess, path)
	return nil
}
