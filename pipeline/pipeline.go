// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/filter"
	"github.com/ik5/iqtone/iq"
)

// Result is a ready-to-read pipeline output.
type Result struct {
	// Source yields the output at Config.TargetRate. Closing it closes the
	// input.
	Source audio.Source
	Mode   Mode

	// Tone mode only: number of narrowband chunks, their rate, and the
	// maximum amplitude the chunks were divided by.
	Chunks    int
	ChunkRate float64
	Peak      float32
}

// Option configures Run.
type Option func(*runner)

type runner struct {
	log *zap.Logger
}

// WithLogger sets the logger Run reports to. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Run validates cfg and builds the raw or tone pipeline over src.
func Run(src audio.Source, cfg Config, opts ...Option) (*Result, error) {
	r := &runner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	log := r.log.With(
		zap.Stringer("mode", cfg.Mode()),
		zap.Float64("input_rate", src.SampleRate()),
		zap.Float64("target_rate", cfg.TargetRate),
	)

	if cfg.Mode() == ModeRaw {
		out, err := Raw(src, cfg)
		if err != nil {
			return nil, err
		}

		log.Debug("raw pipeline ready", zap.Int("channel", cfg.Channel), zap.Bool("cubic", cfg.Cubic))
		return &Result{Source: out, Mode: ModeRaw}, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reader, err := iq.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	res, err := Tone(reader, cfg)
	if err != nil {
		return nil, err
	}
	res.Source = &closer{Source: res.Source, input: src}

	log.Debug("tone pipeline ready",
		zap.Float64("tone_hz", *cfg.ToneHz),
		zap.Int("window_size", cfg.WindowSize),
		zap.Int("edge_window", cfg.EdgeWindow),
		zap.Int("chunks", res.Chunks),
		zap.Float64("chunk_rate", res.ChunkRate),
		zap.Float32("peak", res.Peak),
	)

	if res.Peak == 0 {
		log.Warn("no energy at tone frequency, output is silent")
	}

	return res, nil
}

// Raw keeps one channel of src and resamples it to cfg.TargetRate.
func Raw(src audio.Source, cfg Config) (*audio.Resampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Channel >= src.Channels() {
		return nil, fmt.Errorf("%w: channel %d of %d", ErrInvalidConfig, cfg.Channel, src.Channels())
	}

	return audio.NewResampler(audio.NewChannelSelector(src, cfg.Channel), cfg.TargetRate, resamplerOptions(cfg)...), nil
}

// Tone filters src down to one amplitude per chunk, normalizes the whole
// run to its maximum and resamples it to cfg.TargetRate.
//
// Normalization needs the global maximum, so the amplitudes of the entire
// capture are held in memory before the first output sample is produced.
func Tone(src iq.Reader, cfg Config) (*Result, error) {
	amps, chunkRate, err := Amplitudes(src, cfg)
	if err != nil {
		return nil, err
	}

	peak := Normalize(amps)
	buf := audio.NewBufferSource(amps, chunkRate, 1)

	return &Result{
		Source:    audio.NewResampler(buf, cfg.TargetRate, resamplerOptions(cfg)...),
		Mode:      ModeTone,
		Chunks:    len(amps),
		ChunkRate: chunkRate,
		Peak:      peak,
	}, nil
}

// Amplitudes runs the narrowband filter, and the edge filter when
// configured, over all of src. It returns one value per complete chunk and
// the rate of those values. A trailing partial chunk is dropped.
func Amplitudes(src iq.Reader, cfg Config) ([]float32, float64, error) {
	if cfg.ToneHz == nil {
		return nil, 0, fmt.Errorf("%w: no tone frequency", ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	w, err := filter.ParseWindow(cfg.Window)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	nb, err := filter.NewNarrowband(src.SampleRate(), *cfg.ToneHz, cfg.WindowSize, w)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var edge *filter.Edge
	if cfg.EdgeWindow > 0 {
		edge, err = filter.NewEdge(cfg.EdgeWindow)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	var out []float32
	buf := make([]iq.Sample, 4096)
	idle := 0

	for {
		n, err := src.ReadIQ(buf)

		for _, s := range buf[:n] {
			v, ok := nb.Push(s)
			if !ok {
				continue
			}
			if edge != nil {
				v = edge.Process(v)
			}
			out = append(out, v)
		}

		if errors.Is(err, io.EOF) {
			return out, nb.ChunkRate(), nil
		}

		if err != nil {
			return out, nb.ChunkRate(), fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			idle++
			if idle > audio.MaxIdleReads {
				return out, nb.ChunkRate(), io.ErrNoProgress
			}
		} else {
			idle = 0
		}
	}
}

// Normalize divides buf in place by its largest value and returns that
// value. A buffer with no positive value is left untouched.
func Normalize(buf []float32) float32 {
	var peak float32
	for _, v := range buf {
		peak = max(peak, v)
	}

	if peak == 0 {
		return 0
	}

	for i := range buf {
		buf[i] /= peak
	}

	return peak
}

func resamplerOptions(cfg Config) []audio.ResamplerOption {
	if cfg.Cubic {
		return []audio.ResamplerOption{audio.WithCubic()}
	}
	return nil
}

// closer ties the lifetime of the original input to the tone output, which
// otherwise only reads from memory.
type closer struct {
	audio.Source
	input audio.Source
}

func (c *closer) Close() error {
	err := c.Source.Close()
	if cerr := c.input.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("%w", cerr)
	}
	return err
}

// FromCapture runs cfg over a raw 8-bit I/Q capture recorded at
// cfg.CaptureRate.
func FromCapture(capture []byte, cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return Run(iq.NewSource(capture, cfg.CaptureRate), cfg, opts...)
}
