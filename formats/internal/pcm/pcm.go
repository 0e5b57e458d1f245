// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders and encoders to
// float32 streams.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/utils"
)

var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// Reader is the part of the go-audio wav and aiff decoders a Source needs.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source turns integer PCM into float32 samples in [-1, 1).
type Source struct {
	dec      Reader
	rate     float64
	channels int
	// sample = (v - offset) / scale
	offset float32
	scale  float32
	intBuf *goaudio.IntBuffer
}

// NewSource wraps dec. unsigned8 marks 8-bit data stored with a 128 bias,
// as WAV does; AIFF 8-bit samples are signed.
func NewSource(dec Reader, sampleRate, channels, bitDepth int, unsigned8 bool) (*Source, error) {
	s := &Source{
		dec:      dec,
		rate:     float64(sampleRate),
		channels: channels,
	}

	switch bitDepth {
	case 8, 16, 24, 32:
		s.scale = float32(int64(1) << (bitDepth - 1))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if bitDepth == 8 && unsigned8 {
		s.offset = 128
	}

	return s, nil
}

func (s *Source) SampleRate() float64 { return s.rate }
func (s *Source) Channels() int       { return s.channels }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

// Close is a no-op; the caller owns the reader being decoded.
func (s *Source) Close() error { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decoding PCM: %w", err)
	}

	// go-audio reports the end of data as an empty read
	if n == 0 {
		return 0, io.EOF
	}

	// whole frames only
	n -= n % s.channels
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = (float32(v) - s.offset) / s.scale
	}

	return n, nil
}

// Encoder is the part of the go-audio wav and aiff encoders a Writer needs.
type Encoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Writer encodes float32 samples as 16-bit PCM.
type Writer struct {
	enc    Encoder
	format *goaudio.Format
	buf    *goaudio.IntBuffer
	frames int
}

func NewWriter(enc Encoder, sampleRate, channels int) *Writer {
	format := &goaudio.Format{NumChannels: channels, SampleRate: sampleRate}

	return &Writer{
		enc:    enc,
		format: format,
		buf:    &goaudio.IntBuffer{Format: format, SourceBitDepth: 16},
	}
}

// Write clamps samples to [-1, 1] and encodes them. len(samples) must be a
// multiple of the channel count.
func (w *Writer) Write(samples []float32) error {
	if len(samples)%w.format.NumChannels != 0 {
		return audio.ErrInvalidDstSize
	}

	w.buf.Data = utils.Float32sToInt(w.buf.Data[:0], samples)
	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("encoding PCM: %w", err)
	}
	w.frames += len(samples) / w.format.NumChannels

	return nil
}

// Frames is the number of frames written so far.
func (w *Writer) Frames() int { return w.frames }

// Close finalizes the container headers. The underlying file is not closed.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing PCM container: %w", err)
	}
	return nil
}

// Copy drains src into w, read bufSize samples at a time, and returns the
// number of frames written.
func Copy(w *Writer, src audio.Source, bufSize int) (int, error) {
	channels := src.Channels()
	if channels != w.format.NumChannels {
		return 0, fmt.Errorf("%w: source has %d channels, writer %d", audio.ErrInvalidChannel, channels, w.format.NumChannels)
	}

	bufSize = max(bufSize-bufSize%channels, channels)
	buf := make([]float32, bufSize)
	start := w.frames

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if werr := w.Write(buf[:n]); werr != nil {
				return w.frames - start, werr
			}
		}

		if errors.Is(err, io.EOF) {
			return w.frames - start, nil
		}

		if err != nil {
			return w.frames - start, fmt.Errorf("%w", err)
		}
	}
}
