package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vdash/vdash/internal/telemetry"
)

func TestConfigFileCheck(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("explicit path not found", func(t *testing.T) {
		check := &ConfigFileCheck{ConfigPath: filepath.Join(tmpDir, "nonexistent.yaml")}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})

	t.Run("config found", func(t *testing.T) {
		cfgPath := filepath.Join(tmpDir, ".vdash.yaml")
		content := `version: 1
vehicle:
  name: Test Car
  tank_capacity: 50
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		check := &ConfigFileCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &ConfigFileCheck{}
		if check.Name() != "config_file" {
			t.Errorf("expected name 'config_file', got %s", check.Name())
		}
		if check.Category() != "CONFIG" {
			t.Errorf("expected category 'CONFIG', got %s", check.Category())
		}
	})
}

func TestConfigSchemaCheck(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("valid config passes", func(t *testing.T) {
		cfgPath := filepath.Join(tmpDir, "valid.yaml")
		content := `version: 1
vehicle:
  name: Test Car
  tank_capacity: 50
source:
  mode: demo
  interval: 250ms
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		result := (&ConfigSchemaCheck{ConfigPath: cfgPath}).Run()
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		cfgPath := filepath.Join(tmpDir, "broken.yaml")
		if err := os.WriteFile(cfgPath, []byte("version: [not closed"), 0644); err != nil {
			t.Fatal(err)
		}

		result := (&ConfigSchemaCheck{ConfigPath: cfgPath}).Run()
		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("invalid thresholds fail", func(t *testing.T) {
		cfgPath := filepath.Join(tmpDir, "thresholds.yaml")
		content := `version: 1
thresholds:
  tire_min: 300
  tire_max: 200
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		result := (&ConfigSchemaCheck{ConfigPath: cfgPath}).Run()
		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v: %s", result.Status, result.Message)
		}
	})
}

func TestReplayScriptCheck(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("demo mode needs no script", func(t *testing.T) {
		cfgPath := filepath.Join(tmpDir, "demo.yaml")
		content := `version: 1
source:
  mode: demo
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		result := (&ReplayScriptCheck{ConfigPath: cfgPath}).Run()
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("replay mode with valid script passes", func(t *testing.T) {
		scriptPath := filepath.Join(tmpDir, "drive.yaml")
		if err := os.WriteFile(scriptPath, []byte(telemetry.SampleScript), 0644); err != nil {
			t.Fatal(err)
		}

		cfgPath := filepath.Join(tmpDir, "replay.yaml")
		content := `version: 1
source:
  mode: replay
  replay_file: ` + scriptPath + `
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		result := (&ReplayScriptCheck{ConfigPath: cfgPath}).Run()
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("replay mode with missing script fails", func(t *testing.T) {
		cfgPath := filepath.Join(tmpDir, "missing.yaml")
		content := `version: 1
source:
  mode: replay
  replay_file: ` + filepath.Join(tmpDir, "does-not-exist.yaml") + `
`
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		result := (&ReplayScriptCheck{ConfigPath: cfgPath}).Run()
		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v: %s", result.Status, result.Message)
		}
	})
}
