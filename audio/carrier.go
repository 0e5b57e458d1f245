// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Carrier multiplies every frame of src by a sine tone at hz, turning an
// amplitude envelope into something audible. The tone starts at phase zero
// and the stream ends with src.
type Carrier struct {
	src   Source
	step  float64 // radians per frame
	frame int64
}

func NewCarrier(src Source, hz float64) *Carrier {
	return &Carrier{
		src:  src,
		step: 2 * math.Pi * hz / src.SampleRate(),
	}
}

func (c *Carrier) SampleRate() float64 { return c.src.SampleRate() }
func (c *Carrier) Channels() int       { return c.src.Channels() }
func (c *Carrier) BufSize() int        { return c.src.BufSize() }
func (c *Carrier) Close() error {
	err := c.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (c *Carrier) ReadSamples(dst []float32) (int, error) {
	n, err := c.src.ReadSamples(dst)

	channels := c.src.Channels()
	for f := 0; f < n/channels; f++ {
		// phase from the absolute frame index to avoid drift
		s := float32(math.Sin(c.step * float64(c.frame)))
		for ch := range channels {
			dst[f*channels+ch] *= s
		}
		c.frame++
	}

	return n, err
}
