package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vdash/vdash/internal/errors"
)

// Save writes cfg to path as YAML with a short header comment.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# vdash configuration
# Run 'vdash' to open the dashboard, 'vdash doctor' to verify this file

`
	content := header + string(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}

	return nil
}
