// SPDX-License-Identifier: EPL-2.0

// Package pipeline composes the decode, filter and resample stages into the
// two supported output modes.
//
// Raw mode keeps one channel of the capture (I by default) and converts it
// to the target rate:
//
//	capture -> iq.Source -> audio.ChannelSelector -> audio.Resampler
//
// Tone mode extracts the amplitude of a single frequency offset:
//
//	capture -> iq.Source -> filter.Narrowband -> [filter.Edge]
//	        -> Normalize -> audio.BufferSource -> audio.Resampler
//
// Tone mode is a batch pass: every chunk amplitude of the capture is
// computed and divided by the global maximum before the first output sample
// is available. Raw mode streams.
package pipeline
