// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame n.
type Waveform func(n, ch int) float32

// MockSource synthesizes a fixed number of frames from a Waveform.
// Its method set matches audio.Source; the package does not import audio so
// audio's own tests can use it.
type MockSource struct {
	rate     float64
	channels int
	frames   int
	pos      int
	wave     Waveform
}

// NewMockSource returns a source of frames frames produced by wave.
func NewMockSource(sampleRate float64, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{rate: sampleRate, channels: channels, frames: frames, wave: wave}
}

// NewSilentSource yields zeros.
func NewSilentSource(sampleRate float64, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource yields value on every channel.
func NewConstantSource(sampleRate float64, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource yields a unit sine at frequency Hz on every channel.
func NewSineSource(sampleRate float64, channels, frames int, frequency float64) *MockSource {
	w := 2 * math.Pi * frequency / sampleRate
	return NewMockSource(sampleRate, channels, frames, func(n, _ int) float32 {
		return float32(math.Sin(w * float64(n)))
	})
}

// NewRampSource yields n*step for frame n on every channel.
func NewRampSource(sampleRate float64, channels, frames int, step float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(n, _ int) float32 {
		return float32(n) * step
	})
}

// NewToneIQSource yields an I/Q pair carrying a complex exponential at
// frequency Hz scaled by amplitude.
func NewToneIQSource(sampleRate float64, frames int, frequency float64, amplitude float32) *MockSource {
	w := 2 * math.Pi * frequency / sampleRate
	return NewMockSource(sampleRate, 2, frames, func(n, ch int) float32 {
		if ch == 0 {
			return amplitude * float32(math.Cos(w*float64(n)))
		}
		return amplitude * float32(math.Sin(w*float64(n)))
	})
}

func (m *MockSource) SampleRate() float64 { return m.rate }
func (m *MockSource) Channels() int       { return m.channels }
func (m *MockSource) BufSize() int        { return 4096 }
func (m *MockSource) Close() error        { return nil }

// ReadSamples fills whole frames and reports io.EOF with the final batch.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range count {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.wave(m.pos+f, ch)
		}
	}
	m.pos += count

	n := count * m.channels
	if m.pos >= m.frames {
		return n, io.EOF
	}
	return n, nil
}
