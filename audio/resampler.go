// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/iqtone/utils"
)

// Resampler streams from src to a target sample rate.
// Works on interleaved samples; preserves channel count.
//
// Output frame t is taken from input position t*srcRate/dstRate. The value is
// interpolated between the two input frames around that position (linear by
// default, Catmull-Rom with WithCubic). The stream ends once the position
// passes the last input frame; nothing is extrapolated.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	ratio    float64 // srcRate / dstRate - how many source frames per output frame
	channels int
	cubic    bool

	// Ring holding the 4 most recent source frames, indexed by absolute
	// frame number modulo 4.
	ring [4][]float32
	read int // source frames pulled so far

	// Output frames produced so far.
	t int64

	srcBuf []float32
	srcPos int
	srcLen int
	eof    bool
	err    error
}

// MaxIdleReads bounds consecutive empty reads from a source that has not
// reported io.EOF. Past it, readers give up with io.ErrNoProgress.
const MaxIdleReads = 100

// ResamplerOption configures a Resampler.
type ResamplerOption func(*Resampler)

// WithCubic switches interpolation to a Catmull-Rom spline over four frames.
func WithCubic() ResamplerOption {
	return func(r *Resampler) { r.cubic = true }
}

func NewResampler(src Source, dstRate float64, opts ...ResamplerOption) *Resampler {
	channels := src.Channels()
	srcRate := src.SampleRate()

	r := &Resampler{
		src:      src,
		srcRate:  srcRate,
		dstRate:  dstRate,
		ratio:    srcRate / dstRate,
		channels: channels,
	}

	for _, opt := range opts {
		opt(r)
	}

	if !validRate(srcRate) || !validRate(dstRate) || channels < 1 {
		r.err = ErrInvalidRate
		return r
	}

	bufFrames := max(src.BufSize()/channels, 1)
	r.srcBuf = make([]float32, bufFrames*channels)
	for i := range r.ring {
		r.ring[i] = make([]float32, channels)
	}

	return r
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate)
}

func (r *Resampler) SampleRate() float64 { return r.dstRate }
func (r *Resampler) Channels() int       { return r.channels }
func (r *Resampler) BufSize() int        { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads one frame from the source into the ring.
// It returns false once the source is exhausted.
func (r *Resampler) pull() (bool, error) {
	idle := 0
	for r.srcPos+r.channels > r.srcLen {
		if r.eof {
			return false, nil
		}

		// keep a partial frame left over from the previous read
		rest := copy(r.srcBuf, r.srcBuf[r.srcPos:r.srcLen])
		n, err := r.src.ReadSamples(r.srcBuf[rest:])
		r.srcPos = 0
		r.srcLen = rest + n

		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n == 0 && !r.eof {
			idle++
			if idle > MaxIdleReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(r.ring[r.read%4], r.srcBuf[r.srcPos:r.srcPos+r.channels])
	r.srcPos += r.channels
	r.read++

	return true, nil
}

// fill pulls source frames until frame index upTo is buffered or the source ends.
func (r *Resampler) fill(upTo int) error {
	for r.read <= upTo {
		ok, err := r.pull()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	return nil
}

func (r *Resampler) frame(i int) []float32 {
	return r.ring[i%4]
}

// ReadSamples produces dst samples at r.dstRate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		pos := float64(r.t) * r.ratio
		k := int(math.Floor(pos))
		frac := float32(pos - float64(k))

		ahead := k + 1
		if r.cubic {
			ahead = k + 2
		}

		if err := r.fill(ahead); err != nil {
			return written * r.channels, err
		}

		// Position past the end, or between the last frame and nothing.
		if k >= r.read || (frac > 0 && k+1 >= r.read) {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		out := dst[written*r.channels : (written+1)*r.channels]
		if frac == 0 {
			copy(out, r.frame(k))
		} else if r.cubic {
			r.cubicFrame(out, k, frac)
		} else {
			y1, y2 := r.frame(k), r.frame(k+1)
			for c := range r.channels {
				out[c] = utils.Lerp(y1[c], y2[c], frac)
			}
		}

		written++
		r.t++
	}

	return written * r.channels, nil
}

// cubicFrame interpolates between frames k and k+1, duplicating edge frames
// where the neighbours fall outside the buffered input.
func (r *Resampler) cubicFrame(out []float32, k int, frac float32) {
	y0 := r.frame(k)
	if k > 0 {
		y0 = r.frame(k - 1)
	}

	y1, y2 := r.frame(k), r.frame(k+1)

	y3 := y2
	if k+2 < r.read {
		y3 = r.frame(k + 2)
	}

	for c := range r.channels {
		out[c] = utils.CubicInterpolate(y0[c], y1[c], y2[c], y3[c], frac)
	}
}
