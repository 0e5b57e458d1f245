// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource replays an in-memory slice of interleaved samples.
// The slice is not copied; callers must not modify it while reading.
type BufferSource struct {
	data     []float32
	rate     float64
	channels int
	pos      int
}

func NewBufferSource(data []float32, sampleRate float64, channels int) *BufferSource {
	return &BufferSource{
		data:     data,
		rate:     sampleRate,
		channels: max(channels, 1),
	}
}

func (b *BufferSource) SampleRate() float64 { return b.rate }
func (b *BufferSource) Channels() int       { return b.channels }
func (b *BufferSource) BufSize() int        { return 4096 }
func (b *BufferSource) Close() error        { return nil }

// Len reports the number of frames held.
func (b *BufferSource) Len() int { return len(b.data) / b.channels }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	// whole frames only
	end := len(b.data) - len(b.data)%b.channels
	if b.pos >= end {
		return 0, io.EOF
	}

	n := copy(dst, b.data[b.pos:end])
	b.pos += n

	if b.pos >= end {
		return n, io.EOF
	}

	return n, nil
}
