// SPDX-License-Identifier: EPL-2.0

// Package scope turns a mono stream into a plottable amplitude trace, the
// input an oscilloscope-style viewer needs.
package scope

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ik5/iqtone/audio"
)

// Point is one trace sample.
type Point struct {
	Index     int
	Time      float64 // seconds from the start of the stream
	Amplitude float32
}

type Trace struct {
	SampleRate float64
	Points     []Point
}

// Collect drains src into a trace. Multi-channel sources contribute their
// first channel only.
func Collect(src audio.Source) (*Trace, error) {
	if src.Channels() > 1 {
		src = audio.NewChannelSelector(src, 0)
	}

	samples, err := audio.ReadAll(src, src.BufSize())
	if err != nil {
		return nil, fmt.Errorf("collecting trace: %w", err)
	}

	return FromSamples(samples, src.SampleRate()), nil
}

// FromSamples builds a trace over samples taken at sampleRate.
func FromSamples(samples []float32, sampleRate float64) *Trace {
	tr := &Trace{
		SampleRate: sampleRate,
		Points:     make([]Point, len(samples)),
	}

	for i, v := range samples {
		tr.Points[i] = Point{
			Index:     i,
			Time:      float64(i) / sampleRate,
			Amplitude: v,
		}
	}

	return tr
}

// Duration is the time covered by the trace in seconds.
func (t *Trace) Duration() float64 {
	return float64(len(t.Points)) / t.SampleRate
}

// WriteCSV writes an index,time,amplitude header followed by one row per
// point.
func (t *Trace) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"index", "time", "amplitude"}); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}

	row := make([]string, 3)
	for _, p := range t.Points {
		row[0] = strconv.Itoa(p.Index)
		row[1] = strconv.FormatFloat(p.Time, 'g', -1, 64)
		row[2] = strconv.FormatFloat(float64(p.Amplitude), 'g', -1, 32)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}

	return nil
}
