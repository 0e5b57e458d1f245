// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "iqtool.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
log:
  level: debug
capture:
  sample_rate: 10e6
wav:
  window_size: 250
  carrier: 0
scope:
  edge_window: 5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Capture.SampleRate != 10e6 {
		t.Errorf("Capture.SampleRate = %v, want 10e6", cfg.Capture.SampleRate)
	}
	if cfg.Wav.WindowSize != 250 || cfg.Wav.Carrier != 0 {
		t.Errorf("Wav = %+v", cfg.Wav)
	}
	if cfg.Scope.EdgeWindow != 5 {
		t.Errorf("Scope.EdgeWindow = %d, want 5", cfg.Scope.EdgeWindow)
	}

	// untouched keys keep their defaults
	def := Default()
	if cfg.Wav.Rate != def.Wav.Rate || cfg.Wav.Window != def.Wav.Window {
		t.Errorf("Wav defaults lost: %+v", cfg.Wav)
	}
	if cfg.Scope.WindowSize != 1000 || cfg.Peak.FFTSize != 4096 {
		t.Errorf("defaults lost: scope %+v, peak %+v", cfg.Scope, cfg.Peak)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}

	if _, err := Load(writeFile(t, "wav: [1, 2")); err == nil {
		t.Error("Load(bad yaml) error = nil")
	}

	if _, err := Load(writeFile(t, "wav:\n  window_size: many\n")); err == nil {
		t.Error("Load(bad type) error = nil")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Capture.SampleRate != 2e6 || cfg.Wav.Rate != 44100 || cfg.Wav.WindowSize != 100 {
		t.Errorf("Default() = %+v", cfg)
	}
	if cfg.Scope.Rate != 1e5 || cfg.Scope.WindowSize != 1000 || cfg.Scope.EdgeWindow != 20 {
		t.Errorf("Default().Scope = %+v", cfg.Scope)
	}
}
