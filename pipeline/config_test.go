// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/iqtone/audio"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"tone defaults", func(c *Config) { c.ToneHz = Hz(25e3) }, false},
		{"negative tone", func(c *Config) { c.ToneHz = Hz(-25e3) }, false},
		{"mixed channels", func(c *Config) { c.Channel = audio.MixChannels }, false},
		{"empty window name", func(c *Config) { c.ToneHz = Hz(0); c.Window = "" }, false},
		{"zero capture rate", func(c *Config) { c.CaptureRate = 0 }, true},
		{"infinite capture rate", func(c *Config) { c.CaptureRate = math.Inf(1) }, true},
		{"negative target rate", func(c *Config) { c.TargetRate = -44100 }, true},
		{"nan target rate", func(c *Config) { c.TargetRate = math.NaN() }, true},
		{"bad channel", func(c *Config) { c.Channel = -2 }, true},
		{"nan tone", func(c *Config) { c.ToneHz = Hz(math.NaN()) }, true},
		{"zero window size", func(c *Config) { c.ToneHz = Hz(0); c.WindowSize = 0 }, true},
		{"negative edge", func(c *Config) { c.ToneHz = Hz(0); c.EdgeWindow = -1 }, true},
		{"unknown window", func(c *Config) { c.ToneHz = Hz(0); c.Window = "gauss" }, true},
		{"raw mode ignores tone fields", func(c *Config) { c.WindowSize = 0; c.Window = "gauss" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Mode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Mode() != ModeRaw {
		t.Errorf("Mode() = %v, want raw", cfg.Mode())
	}

	cfg.ToneHz = Hz(0)
	if cfg.Mode() != ModeTone {
		t.Errorf("Mode() = %v, want tone", cfg.Mode())
	}

	if ModeTone.String() != "tone" || ModeRaw.String() != "raw" {
		t.Errorf("String() = %q, %q", ModeRaw, ModeTone)
	}
	if Mode(7).String() != "Mode(7)" {
		t.Errorf("String() = %q, want Mode(7)", Mode(7))
	}
}
