// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so the returned audio.Source has two
// channels whatever the file holds. Samples are float32 in [-1, 1).
//
// A stereo recording can be treated as I on the left channel and Q on the
// right (iq.NewReader does that), which lets the tone pipeline run over
// audio that was captured or archived as MP3:
//
//	f, _ := os.Open("beacon.mp3")
//	defer f.Close()
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	res, err := pipeline.Run(src, cfg)
//
// Encoding is not supported.
package mp3
