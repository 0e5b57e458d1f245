// SPDX-License-Identifier: EPL-2.0

// Package spectrum locates the strongest frequency offset in a capture,
// which is the value the tone pipeline needs as its target.
package spectrum

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/filter"
	"github.com/ik5/iqtone/iq"
)

var (
	ErrInvalidSize      = errors.New("fft size must be at least 2")
	ErrNotEnoughSamples = errors.New("capture shorter than one fft block")
)

const DefaultSize = 4096

// Peak describes the strongest bin of an averaged spectrum.
type Peak struct {
	// Hz is the signed offset from the capture centre.
	Hz float64
	// Bin is the FFT bin, 0..Size-1.
	Bin int
	// Amplitude is the average bin magnitude divided by the window sum, so
	// a pure tone reads as its own amplitude, as filter.Narrowband does.
	Amplitude float64
	Size      int
	Blocks    int
}

// Options tune Find. The zero value uses DefaultSize, the default window
// and keeps the DC bin.
type Options struct {
	Size   int
	Window filter.Window
	// SkipDC ignores bin 0, where many SDRs show a LO leakage spike.
	SkipDC bool
}

// Find averages the power spectra of consecutive Size-sample blocks of r
// and returns the strongest bin. A trailing partial block is ignored.
func Find(r iq.Reader, opts Options) (*Peak, error) {
	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	if size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	weights := filter.Weights(opts.Window, size)

	var gain float64
	for _, v := range weights {
		gain += v
	}

	power := make([]float64, size)
	block := make([]complex128, size)
	buf := make([]iq.Sample, size)
	fill, blocks, idle := 0, 0, 0

	for {
		n, err := r.ReadIQ(buf[:size-fill])
		if n == 0 && err == nil {
			if idle++; idle > audio.MaxIdleReads {
				return nil, io.ErrNoProgress
			}
			continue
		}
		idle = 0

		for _, s := range buf[:n] {
			block[fill] = s.Complex() * complex(weights[fill], 0)
			fill++
		}

		if fill == size {
			for k, c := range fft.FFT(block) {
				re, im := real(c), imag(c)
				power[k] += re*re + im*im
			}
			fill = 0
			blocks++
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	if blocks == 0 {
		return nil, ErrNotEnoughSamples
	}

	best := 0
	if opts.SkipDC {
		best = 1
	}
	for k := best; k < size; k++ {
		if power[k] > power[best] {
			best = k
		}
	}

	return &Peak{
		Hz:        BinHz(best, size, r.SampleRate()),
		Bin:       best,
		Amplitude: math.Sqrt(power[best]/float64(blocks)) / gain,
		Size:      size,
		Blocks:    blocks,
	}, nil
}

// BinHz maps an FFT bin to its signed frequency; bins above size/2 are
// negative offsets.
func BinHz(bin, size int, sampleRate float64) float64 {
	if bin > size/2 {
		bin -= size
	}
	return float64(bin) * sampleRate / float64(size)
}
