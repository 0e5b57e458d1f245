// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/formats/internal/pcm"
)

// Writer encodes float32 samples into a 16-bit PCM WAV file.
// Samples are clamped to [-1, 1] and scaled by 32767.
type Writer struct {
	*pcm.Writer
}

// NewWriter starts a WAV file on w. The header is finalized by Close, which
// seeks back into w; w itself is left open.
func NewWriter(w io.WriteSeeker, sampleRate, channels int) *Writer {
	enc := gowav.NewEncoder(w, sampleRate, 16, channels, wavFormatPCM)
	return &Writer{Writer: pcm.NewWriter(enc, sampleRate, channels)}
}

// WriteSource drains src into a complete WAV file on w at src's (rounded)
// sample rate and returns the number of frames written.
func WriteSource(w io.WriteSeeker, src audio.Source) (int, error) {
	ww := NewWriter(w, int(src.SampleRate()+0.5), src.Channels())

	frames, err := pcm.Copy(ww.Writer, src, src.BufSize())
	if cerr := ww.Close(); err == nil {
		err = cerr
	}

	return frames, err
}
