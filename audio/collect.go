// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/iqtone/utils"
)

// ReadAll drains src and returns every sample it produced.
// bufferSize is the read size in samples; it is rounded down to whole frames.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	channels := max(src.Channels(), 1)
	bufferSize = max(bufferSize-bufferSize%channels, channels)

	var out []float32
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
	}
}

// ToInt16 drains src and converts every sample to 16-bit PCM.
// Values are clamped to [-1, 1] before scaling.
func ToInt16(src Source, bufferSize int) ([]int16, error) {
	samples, err := ReadAll(src, bufferSize)
	pcm16 := utils.Float32sToInt16(make([]int16, 0, len(samples)), samples)

	return pcm16, err
}
