// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/formats/internal/pcm"
)

// Writer encodes float32 samples into a 16-bit AIFF file.
type Writer struct {
	*pcm.Writer
}

// NewWriter starts an AIFF file on w. Close seeks back to fill in the chunk
// sizes; w itself is left open.
func NewWriter(w io.WriteSeeker, sampleRate, channels int) *Writer {
	enc := aiff.NewEncoder(w, sampleRate, 16, channels)
	return &Writer{Writer: pcm.NewWriter(enc, sampleRate, channels)}
}

// WriteSource drains src into a complete AIFF file on w and returns the
// number of frames written.
func WriteSource(w io.WriteSeeker, src audio.Source) (int, error) {
	aw := NewWriter(w, int(src.SampleRate()+0.5), src.Channels())

	frames, err := pcm.Copy(aw.Writer, src, src.BufSize())
	if cerr := aw.Close(); err == nil {
		err = cerr
	}

	return frames, err
}
