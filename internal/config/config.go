// SPDX-License-Identifier: EPL-2.0

// Package config holds the defaults of the iqtool commands and loads
// overrides from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Capture CaptureConfig `yaml:"capture"`
	Wav     WavConfig     `yaml:"wav"`
	Scope   ScopeConfig   `yaml:"scope"`
	Peak    PeakConfig    `yaml:"peak"`
	Convert ConvertConfig `yaml:"convert"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type CaptureConfig struct {
	// SampleRate of raw 8-bit captures in Hz.
	SampleRate float64 `yaml:"sample_rate"`
}

type WavConfig struct {
	Rate       float64 `yaml:"rate"`
	WindowSize int     `yaml:"window_size"`
	EdgeWindow int     `yaml:"edge_window"`
	Window     string  `yaml:"window"`
	// Carrier modulates the tone envelope so it is audible; 0 writes the
	// envelope itself.
	Carrier float64 `yaml:"carrier"`
	Format  string  `yaml:"format"`
	Cubic   bool    `yaml:"cubic"`
}

type ScopeConfig struct {
	Rate       float64 `yaml:"rate"`
	WindowSize int     `yaml:"window_size"`
	EdgeWindow int     `yaml:"edge_window"`
	Window     string  `yaml:"window"`
}

type PeakConfig struct {
	FFTSize int  `yaml:"fft_size"`
	SkipDC  bool `yaml:"skip_dc"`
}

type ConvertConfig struct {
	Encoding string `yaml:"encoding"`
}

// Default returns the settings the tools use without a config file.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Capture: CaptureConfig{
			SampleRate: 2e6,
		},
		Wav: WavConfig{
			Rate:       44100,
			WindowSize: 100,
			Window:     "blackman-harris",
			Carrier:    1200,
			Format:     "wav",
		},
		Scope: ScopeConfig{
			Rate:       1e5,
			WindowSize: 1000,
			EdgeWindow: 20,
			Window:     "blackman-harris",
		},
		Peak: PeakConfig{
			FFTSize: 4096,
		},
		Convert: ConvertConfig{
			Encoding: "little-endian",
		},
	}
}

// Load reads filename over the defaults; keys missing from the file keep
// their default value.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
