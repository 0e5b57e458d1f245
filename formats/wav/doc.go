// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel count
// and any sample rate. Samples come out as float32 in [-1, 1). 8-bit WAV
// data is unsigned and is re-centred around zero.
//
//	f, _ := os.Open("capture.wav")
//	defer f.Close()
//
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// # Encoding
//
// Writer produces 16-bit PCM. The go-audio encoder patches the RIFF and data
// chunk sizes on Close, so the destination must be an io.WriteSeeker:
//
//	f, _ := os.Create("tone.wav")
//	defer f.Close()
//
//	frames, err := wav.WriteSource(f, src)
package wav
