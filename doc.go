// SPDX-License-Identifier: EPL-2.0

// Package iqtone turns 8-bit SDR I/Q captures into audio.
//
// A capture is a flat byte stream of interleaved I and Q samples. Each byte
// is decoded through a fixed 256-entry table into a float32 in [-1, 1).
// From there one of two pipelines produces mono audio:
//
//   - raw mode keeps the I channel and resamples it to the output rate;
//   - tone mode measures, over consecutive chunks of samples, the amplitude
//     at one frequency offset from the capture centre, normalizes the
//     chunk amplitudes to their maximum and resamples that envelope.
//
// # Quick Start
//
// RenderPCM16 runs a whole capture through the selected pipeline:
//
//	capture, _ := iq.LoadFile("capture.bin")
//
//	cfg := pipeline.DefaultConfig()
//	cfg.ToneHz = pipeline.Hz(5000)
//
//	pcm16, err := iqtone.RenderPCM16(capture, cfg, 4096)
//
// # Building Blocks
//
// The stages live in their own packages and compose as pull-based
// audio.Source transforms:
//
//   - iq decodes captures and converts them to float32 pairs
//   - filter holds the narrowband tone filter and the edge filter
//   - audio holds the resampler and the channel, buffer and carrier sources
//   - pipeline wires the stages together from a Config
//   - formats/wav and formats/aiff write 16-bit PCM output
//   - scope and spectrum export traces and find the strongest offset
//
// The cmd/iqtool command exposes all of it on the command line.
package iqtone
