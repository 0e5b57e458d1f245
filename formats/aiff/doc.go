// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes and encodes AIFF files using github.com/go-audio/aiff.
//
// # Decoding
//
// Decoder accepts 8, 16, 24 and 32 bit PCM in any channel layout and
// returns an audio.Source of float32 samples in [-1, 1):
//
//	f, _ := os.Open("capture.aif")
//	defer f.Close()
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not FORM/AIFF
//	}
//
// AIFF stores samples big-endian and its 8-bit data is signed, unlike
// WAV; go-audio and this package account for both.
//
// # Encoding
//
// Writer and WriteSource produce 16-bit AIFF. Chunk sizes are patched on
// Close, so the destination must be seekable.
//
// # File Extensions
//
// Both .aif and .aiff are registered by formats.NewRegistry. AIFF-C
// (.aifc, compressed) is not supported.
package aiff
