// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// The decoder keeps the channel layout and sample rate of the stream and
// yields float32 samples as Vorbis produces them. Stereo recordings can be
// fed to the tone pipeline as I/Q through iq.NewReader.
//
//	f, _ := os.Open("recording.ogg")
//	defer f.Close()
//
//	src, err := vorbis.Decoder{}.Decode(f)
//
// Encoding is not supported.
package vorbis
