// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"
	"math"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/filter"
)

// Mode selects how a capture is turned into an output stream.
type Mode int

const (
	// ModeRaw resamples one channel of the capture as is.
	ModeRaw Mode = iota
	// ModeTone extracts the amplitude of a single frequency.
	ModeTone
)

func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeTone:
		return "tone"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	DefaultCaptureRate = 2e6
	DefaultTargetRate  = 44100
	DefaultWindowSize  = 100
)

// Config describes one pipeline run.
type Config struct {
	// CaptureRate is the rate raw byte captures were recorded at. Sources
	// that carry their own rate (decoded audio files) ignore it.
	CaptureRate float64
	// TargetRate is the rate of the output stream.
	TargetRate float64
	// ToneHz is the frequency offset to extract. nil selects raw mode.
	ToneHz *float64
	// WindowSize is the number of samples per narrowband chunk.
	WindowSize int
	// EdgeWindow is the moving-average length applied to the chunk
	// amplitudes. 0 disables it.
	EdgeWindow int
	// Window names the narrowband window function.
	Window string
	// Channel is the channel kept in raw mode (0 = I, 1 = Q), or
	// audio.MixChannels.
	Channel int
	// Cubic selects Catmull-Rom interpolation in the resampler.
	Cubic bool
}

// DefaultConfig returns a raw-mode config with the package defaults.
func DefaultConfig() Config {
	return Config{
		CaptureRate: DefaultCaptureRate,
		TargetRate:  DefaultTargetRate,
		WindowSize:  DefaultWindowSize,
		Window:      filter.DefaultWindow,
	}
}

// Hz returns a pointer to v, for setting ToneHz from a literal.
func Hz(v float64) *float64 { return &v }

func (c Config) Mode() Mode {
	if c.ToneHz != nil {
		return ModeTone
	}
	return ModeRaw
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Validate reports the first unusable setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if !finitePositive(c.CaptureRate) {
		return fmt.Errorf("%w: capture rate %v", ErrInvalidConfig, c.CaptureRate)
	}

	if !finitePositive(c.TargetRate) {
		return fmt.Errorf("%w: target rate %v", ErrInvalidConfig, c.TargetRate)
	}

	if c.Mode() == ModeRaw {
		if c.Channel < audio.MixChannels {
			return fmt.Errorf("%w: channel %d", ErrInvalidConfig, c.Channel)
		}
		return nil
	}

	if math.IsNaN(*c.ToneHz) || math.IsInf(*c.ToneHz, 0) {
		return fmt.Errorf("%w: tone frequency %v", ErrInvalidConfig, *c.ToneHz)
	}

	if c.WindowSize < 1 {
		return fmt.Errorf("%w: window size %d", ErrInvalidConfig, c.WindowSize)
	}

	if c.EdgeWindow < 0 {
		return fmt.Errorf("%w: edge window %d", ErrInvalidConfig, c.EdgeWindow)
	}

	if _, err := filter.ParseWindow(c.Window); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
