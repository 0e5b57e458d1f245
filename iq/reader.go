// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"fmt"

	"github.com/ik5/iqtone/audio"
)

// Reader is a pull-based stream of complex samples.
type Reader interface {
	ReadIQ(dst []Sample) (int, error)
	SampleRate() float64
}

// NewReader returns src as a Reader. Sources that already decode I/Q are
// returned unchanged; mono audio becomes (x, 0) and stereo audio (L, R)
// becomes (I, Q).
func NewReader(src audio.Source) (Reader, error) {
	if r, ok := src.(Reader); ok {
		return r, nil
	}

	ch := src.Channels()
	if ch != 1 && ch != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, ch)
	}

	return &audioReader{src: src, channels: ch}, nil
}

type audioReader struct {
	src      audio.Source
	channels int
	tmp      []float32
}

func (a *audioReader) SampleRate() float64 { return a.src.SampleRate() }

func (a *audioReader) ReadIQ(dst []Sample) (int, error) {
	need := len(dst) * a.channels
	if cap(a.tmp) < need {
		a.tmp = make([]float32, need)
	}
	a.tmp = a.tmp[:need]

	n, err := a.src.ReadSamples(a.tmp)
	frames := n / a.channels

	for f := range frames {
		if a.channels == 1 {
			dst[f] = Sample{I: a.tmp[f]}
		} else {
			dst[f] = Sample{I: a.tmp[2*f], Q: a.tmp[2*f+1]}
		}
	}

	return frames, err
}
