// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives every pipeline stage is
// built from.
//
//   - Source, the pull interface all stages implement
//   - Resampler for sample rate conversion
//   - ChannelSelector for picking or averaging channels
//   - BufferSource for replaying samples held in memory
//   - Carrier for keying a sine tone with an envelope
//   - Registry for looking decoders up by format name
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() float64
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values, nominally in [-1, 1]. Rates are
// float64 because derived streams, such as one value per filter chunk, are
// rarely a whole number of hertz. io.EOF ends a stream and may arrive
// together with the last samples:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    process(buf[:n])
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Resampling
//
// Output frame t is read at input position t*srcRate/dstRate, computed from
// t itself so long streams do not drift. Interpolation is linear by default
// and Catmull-Rom with WithCubic:
//
//	r := audio.NewResampler(src, 44100, audio.WithCubic())
//
// The output ends at the last input frame. Nothing is extrapolated.
//
// # Channels
//
// An I/Q capture is a two-channel source. NewChannelSelector keeps one
// channel (0 is I) and NewMonoMixer averages all of them:
//
//	i := audio.NewChannelSelector(capture, 0)
//	mono := audio.NewMonoMixer(recording)
package audio
