package doctor

import (
	"fmt"

	"github.com/vdash/vdash/internal/config"
	"github.com/vdash/vdash/internal/telemetry"
)

// ConfigFileCheck reports which config file would be used, if any.
// A missing config is only a warning: vdash runs fine on built-in defaults.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check file permissions or run 'vdash init' to create a config",
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No config file found (built-in defaults apply)",
			Suggestion: "Run 'vdash init' to set the vehicle name and thresholds",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", path),
	}
}

// ConfigSchemaCheck verifies the config file parses and validates.
type ConfigSchemaCheck struct {
	ConfigPath string
}

func (c *ConfigSchemaCheck) Name() string     { return "config_schema" }
func (c *ConfigSchemaCheck) Category() string { return "CONFIG" }

func (c *ConfigSchemaCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Using built-in defaults",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load config: %v", err),
			Suggestion: "Check the YAML syntax in your config file",
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Invalid config: %v", err),
			Suggestion: "Fix the configuration errors in your config file",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Schema valid",
	}
}

// ReplayScriptCheck verifies the replay script parses when the config
// selects the replay source.
type ReplayScriptCheck struct {
	ConfigPath string
}

func (c *ReplayScriptCheck) Name() string     { return "replay_script" }
func (c *ReplayScriptCheck) Category() string { return "CONFIG" }

func (c *ReplayScriptCheck) Run() CheckResult {
	cfg, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		// ConfigSchemaCheck reports the load error
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Config load error",
		}
	}

	if cfg.Source.Mode != config.SourceReplay {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Demo source selected; no script needed",
		}
	}

	if cfg.Source.ReplayFile == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Replay mode selected but no replay_file set",
			Suggestion: "Set source.replay_file or run 'vdash init' again",
		}
	}

	script, err := telemetry.LoadScript(cfg.Source.ReplayFile)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Replay script: %v", err),
			Suggestion: "Fix the script or point source.replay_file at a valid one",
		}
	}

	msg := fmt.Sprintf("Replay script: %d step%s", len(script.Steps), pluralize(len(script.Steps)))
	if script.Loop {
		msg += " (loop)"
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: msg,
	}
}

// NewConfigChecks creates all config-related checks.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigSchemaCheck{ConfigPath: configPath},
		&ReplayScriptCheck{ConfigPath: configPath},
	}
}
