// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"io"
	"iter"

	"github.com/ik5/iqtone/audio"
)

// Source lazily decodes a capture held in memory.
type Source struct {
	data []byte
	rate float64
	pos  int // next sample index
}

// NewSource decodes capture, recorded at sampleRate Hz. The buffer is
// read, never modified.
func NewSource(capture []byte, sampleRate float64) *Source {
	return &Source{
		data: capture,
		rate: sampleRate,
	}
}

func (s *Source) SampleRate() float64 { return s.rate }
func (s *Source) Channels() int       { return 2 }
func (s *Source) BufSize() int        { return 4096 }
func (s *Source) Close() error        { return nil }

// Len is the number of complex samples in the capture.
func (s *Source) Len() int { return len(s.data) / 2 }

// ReadIQ fills dst with the next decoded samples.
func (s *Source) ReadIQ(dst []Sample) (int, error) {
	remaining := s.Len() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	n := 0
	for v := range Samples(s.data[2*s.pos : 2*(s.pos+min(len(dst), remaining))]) {
		dst[n] = v
		n++
	}
	s.pos += n

	if s.pos >= s.Len() {
		return n, io.EOF
	}

	return n, nil
}

// ReadSamples implements audio.Source with I and Q interleaved.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	remaining := s.Len() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/2, remaining)
	raw := s.data[2*s.pos : 2*(s.pos+frames)]
	for i, b := range raw {
		dst[i] = table[b]
	}
	s.pos += frames

	if s.pos >= s.Len() {
		return frames * 2, io.EOF
	}

	return frames * 2, nil
}

// Samples returns a lazy sequence over the decoded capture.
func Samples(capture []byte) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for i := 0; i+1 < len(capture); i += 2 {
			if !yield(Sample{I: table[capture[i]], Q: table[capture[i+1]]}) {
				return
			}
		}
	}
}

// Decode eagerly decodes the whole capture.
func Decode(capture []byte) []Sample {
	out := make([]Sample, 0, len(capture)/2)
	for s := range Samples(capture) {
		out = append(out, s)
	}
	return out
}
