package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdash/vdash/internal/errors"
)

func TestRootCmdMetadata(t *testing.T) {
	assert.Equal(t, "vdash", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage, "usage spam on errors is handled by Execute")
	assert.True(t, rootCmd.SilenceErrors, "errors are rendered by Execute, not cobra")
}

func TestRootCmdPersistentFlags(t *testing.T) {
	cfg := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg, "root command should have --config flag")
	assert.Equal(t, "string", cfg.Value.Type())
	assert.Equal(t, "", cfg.DefValue)

	debug := rootCmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, debug, "root command should have --debug flag")
	assert.Equal(t, "bool", debug.Value.Type())
	assert.Equal(t, "false", debug.DefValue)
}

func TestRootCmdSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"dash", "init", "doctor", "version", "completion"} {
		assert.True(t, names[want], "root command should register %q", want)
	}

	assert.Contains(t, dashCmd.Aliases, "dashboard")
}

func TestDashCmdFlags(t *testing.T) {
	replayFlag := dashCmd.Flags().Lookup("replay")
	require.NotNil(t, replayFlag, "dash command should have --replay flag")
	assert.Equal(t, "string", replayFlag.Value.Type())

	intervalFlag := dashCmd.Flags().Lookup("interval")
	require.NotNil(t, intervalFlag, "dash command should have --interval flag")
	assert.Equal(t, "string", intervalFlag.Value.Type())
}

func TestConfigAccessor(t *testing.T) {
	original := configFlag
	defer func() { configFlag = original }()

	configFlag = "/some/path/.vdash.yaml"
	assert.Equal(t, "/some/path/.vdash.yaml", Config())
}

func TestDashCommand_MissingExplicitConfig(t *testing.T) {
	original := configFlag
	defer func() { configFlag = original }()

	configFlag = filepath.Join(t.TempDir(), "absent.yaml")

	err := dashCommand(dashOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "not found")
}

func TestDashCommand_InvalidThresholds(t *testing.T) {
	original := configFlag
	defer func() { configFlag = original }()

	// tire_min above tire_max fails validation before any terminal work
	path := filepath.Join(t.TempDir(), ".vdash.yaml")
	cfg := `version: 1
thresholds:
  tire_min: 300
  tire_max: 200
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	configFlag = path

	err := dashCommand(dashOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "tire_min")
}
