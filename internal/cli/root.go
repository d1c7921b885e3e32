package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vdash/vdash/internal/errors"
	"github.com/vdash/vdash/internal/logger"
)

// Persistent flags shared by all commands
var (
	configFlag string
	debugFlag  bool
)

// rootCmd is the base command. Bare `vdash` opens the dashboard with the
// configured source.
var rootCmd = &cobra.Command{
	Use:   "vdash",
	Short: "In-vehicle telemetry dashboard for the terminal",
	Long: `vdash renders live vehicle telemetry in the terminal: gear, speed,
engine revs, fuel level, tire pressures, temperatures, and trip stats.

Telemetry comes from a snapshot source: the built-in demo drive or a
YAML replay script. The dashboard is purely a presentation layer and
never talks to the vehicle bus itself.

Examples:
  vdash                          Open the dashboard
  vdash dash --replay drive.yaml Replay a recorded drive
  vdash init                     Create a config file
  vdash doctor                   Verify terminal and config`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			// The default logger reads the environment at construction,
			// so rebuild it after flipping the flag
			os.Setenv("VDASH_DEBUG", "1")
			logger.SetDefault(logger.NewEnvLogger(""))
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand(dashOptions{})
	},
}

// Execute runs the CLI. Coded errors render their message and suggestion;
// the process exits non-zero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Config returns the value of the persistent --config flag.
func Config() string {
	return configFlag
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for vdash.

Examples:
  # Bash
  vdash completion bash > /etc/bash_completion.d/vdash

  # Zsh
  vdash completion zsh > "${fpath[1]}/_vdash"

  # Fish
  vdash completion fish > ~/.config/fish/completions/vdash.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"config file path (default: .vdash.yaml, then ~/.config/vdash/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable debug logging to stderr")

	rootCmd.AddCommand(completionCmd)
}
