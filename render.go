// SPDX-License-Identifier: EPL-2.0

package iqtone

import (
	"fmt"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/iq"
	"github.com/ik5/iqtone/pipeline"
)

// RenderPCM16 runs cfg over a raw 8-bit capture recorded at cfg.CaptureRate
// and collects the mono output as 16-bit PCM at cfg.TargetRate.
//
// bufferSize is the number of samples pulled through the pipeline per read.
func RenderPCM16(capture []byte, cfg pipeline.Config, bufferSize int) ([]int16, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return RenderSourcePCM16(iq.NewSource(capture, cfg.CaptureRate), cfg, bufferSize)
}

// RenderSourcePCM16 is RenderPCM16 for any mono or I/Q stereo source, such as
// a decoded WAV recording. cfg.CaptureRate is ignored in favour of the
// source's own rate. src is closed before returning.
func RenderSourcePCM16(src audio.Source, cfg pipeline.Config, bufferSize int) ([]int16, error) {
	cfg.CaptureRate = src.SampleRate()

	res, err := pipeline.Run(src, cfg)
	if err != nil {
		src.Close()
		return nil, err
	}
	defer res.Source.Close()

	pcm16, err := audio.ToInt16(res.Source, bufferSize)
	if err != nil {
		return pcm16, fmt.Errorf("rendering %s pipeline: %w", res.Mode, err)
	}

	return pcm16, nil
}
