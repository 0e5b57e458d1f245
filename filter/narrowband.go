// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ik5/iqtone/iq"
)

// Narrowband measures the amplitude of a single frequency bin over
// consecutive fixed-size chunks of complex samples.
//
// Each sample of a chunk is multiplied by its window weight and by a unit
// phasor turning at -targetHz/sampleRate cycles per sample, and summed. When
// the chunk is full the magnitude of the sum, divided by the sum of the
// window weights, is emitted and the accumulator starts over. A constant
// input at DC therefore reads as its own magnitude.
type Narrowband struct {
	sampleRate float64

	// coef[n] = w[n] * exp(-j*2*pi*targetHz*n/sampleRate)
	coef []complex128
	gain float64

	acc complex128
	n   int
}

// NewNarrowband builds a filter that emits one value every size samples.
// targetHz is an offset from the capture centre and may be negative; it must
// stay within +/- sampleRate/2.
func NewNarrowband(sampleRate, targetHz float64, size int, w Window) (*Narrowband, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidParameter, sampleRate)
	}

	if math.IsNaN(targetHz) || math.IsInf(targetHz, 0) || math.Abs(targetHz) > sampleRate/2 {
		return nil, fmt.Errorf("%w: target frequency %v outside +/-%v", ErrInvalidParameter, targetHz, sampleRate/2)
	}

	if size < 1 {
		return nil, fmt.Errorf("%w: window size %d", ErrInvalidParameter, size)
	}

	weights := Weights(w, size)

	var gain float64
	for _, v := range weights {
		gain += v
	}

	if gain == 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
		return nil, fmt.Errorf("%w: window has no usable weight at size %d", ErrInvalidParameter, size)
	}

	step := -2 * math.Pi * targetHz / sampleRate
	coef := make([]complex128, size)
	for n, v := range weights {
		sin, cos := math.Sincos(step * float64(n))
		coef[n] = complex(v*cos, v*sin)
	}

	return &Narrowband{
		sampleRate: sampleRate,
		coef:       coef,
		gain:       gain,
	}, nil
}

// Push feeds one sample. It returns the chunk amplitude and true when s
// completes a chunk, and (0, false) otherwise.
func (f *Narrowband) Push(s iq.Sample) (float32, bool) {
	f.acc += s.Complex() * f.coef[f.n]
	f.n++

	if f.n < len(f.coef) {
		return 0, false
	}

	mag := float32(cmplx.Abs(f.acc) / f.gain)
	f.Reset()

	return mag, true
}

// Reset drops a partially accumulated chunk.
func (f *Narrowband) Reset() {
	f.acc = 0
	f.n = 0
}

// Pending is the number of samples accumulated toward the current chunk.
func (f *Narrowband) Pending() int { return f.n }

// Size is the chunk length.
func (f *Narrowband) Size() int { return len(f.coef) }

// ChunkRate is the rate at which Push emits values.
func (f *Narrowband) ChunkRate() float64 { return f.sampleRate / float64(len(f.coef)) }
