// SPDX-License-Identifier: EPL-2.0

// Package iq decodes raw 8-bit interleaved I/Q captures, as written by
// HackRF-style receivers, into normalized complex samples.
//
// # Capture Format
//
// A capture is a flat byte buffer of alternating I and Q bytes. Each byte is
// read as a signed two's-complement value and divided by 128, so every
// component lands in [-1.0, 1.0). A trailing unpaired byte is ignored.
//
//	capture, _ := iq.LoadFile("signal.bin")
//	src := iq.NewSource(capture, 2e6)
//
//	buf := make([]iq.Sample, 4096)
//	n, err := src.ReadIQ(buf)
//
// Source also satisfies audio.Source as a two-channel (I, Q) stream, so it
// can be fed straight into the audio package's resampler and channel
// selector.
//
// # Audio Containers
//
// NewReader adapts any decoded audio.Source to the same ReadIQ contract:
// mono streams become (x, 0) and stereo streams are read as (I, Q), the
// layout most SDR programs use for IQ WAV recordings.
//
// # Pass-through Output
//
// Writer serializes samples as float32 pairs in little-endian or big-endian
// binary, or as "I,Q" text lines.
package iq
