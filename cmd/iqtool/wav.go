// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/internal/logging"
	"github.com/ik5/iqtone/pipeline"
)

type wavFlags struct {
	output     string
	sampleRate float64
	tone       float64
	rate       float64
	windowSize int
	edge       int
	window     string
	carrier    float64
	format     string
	cubic      bool
	channel    int
}

func (a *app) wavCommand() *cobra.Command {
	var f wavFlags

	cmd := &cobra.Command{
		Use:   "wav <input>",
		Short: "Render a capture as a 16-bit mono audio file",
		Long: `Without --tone the I channel is resampled straight to the output rate.
With --tone the capture is split into chunks of --window-size samples, the
amplitude of each chunk at the tone offset is measured, the amplitudes are
normalized to the loudest chunk and used to key a --carrier Hz sine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWav(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "output file (default: output.<format>)")
	fl.Float64VarP(&f.sampleRate, "sample-rate", "s", a.cfg.Capture.SampleRate, "capture sample rate in Hz")
	fl.Float64VarP(&f.tone, "tone", "f", 0, "tone offset from the tuned frequency in Hz; enables tone mode")
	fl.Float64VarP(&f.rate, "rate", "r", a.cfg.Wav.Rate, "output sample rate in Hz")
	fl.IntVarP(&f.windowSize, "window-size", "n", a.cfg.Wav.WindowSize, "samples per tone chunk")
	fl.IntVar(&f.edge, "edge", a.cfg.Wav.EdgeWindow, "moving average length over chunk amplitudes; 0 disables it")
	fl.StringVar(&f.window, "window", a.cfg.Wav.Window, "tone filter window")
	fl.Float64Var(&f.carrier, "carrier", a.cfg.Wav.Carrier, "audible carrier in Hz keyed by the tone envelope; 0 writes the envelope")
	fl.StringVar(&f.format, "format", a.cfg.Wav.Format, "output container: wav or aiff")
	fl.BoolVar(&f.cubic, "cubic", a.cfg.Wav.Cubic, "cubic instead of linear interpolation")
	fl.IntVar(&f.channel, "channel", 0, "raw mode channel: 0 for I, 1 for Q, -1 for their average")

	return cmd
}

func (a *app) runWav(cmd *cobra.Command, input string, f wavFlags) error {
	format := pick(cmd, "format", f.format, a.cfg.Wav.Format)
	write, err := sinkFor(format)
	if err != nil {
		return err
	}

	output := f.output
	if output == "" {
		output = defaultOutput(format)
	}
	if err := checkOutput(input, output); err != nil {
		return err
	}

	cfg := pipeline.DefaultConfig()
	cfg.CaptureRate = pick(cmd, "sample-rate", f.sampleRate, a.cfg.Capture.SampleRate)
	cfg.TargetRate = pick(cmd, "rate", f.rate, a.cfg.Wav.Rate)
	cfg.WindowSize = pick(cmd, "window-size", f.windowSize, a.cfg.Wav.WindowSize)
	cfg.EdgeWindow = pick(cmd, "edge", f.edge, a.cfg.Wav.EdgeWindow)
	cfg.Window = pick(cmd, "window", f.window, a.cfg.Wav.Window)
	cfg.Cubic = pick(cmd, "cubic", f.cubic, a.cfg.Wav.Cubic)
	cfg.Channel = f.channel
	if cmd.Flags().Changed("tone") {
		cfg.ToneHz = pipeline.Hz(f.tone)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	src, err := a.openInput(input, cfg.CaptureRate)
	if err != nil {
		return err
	}
	cfg.CaptureRate = src.SampleRate()

	start := time.Now()

	res, err := pipeline.Run(src, cfg, pipeline.WithLogger(a.log))
	if err != nil {
		src.Close()
		return err
	}

	out := res.Source
	carrier := pick(cmd, "carrier", f.carrier, a.cfg.Wav.Carrier)
	if res.Mode == pipeline.ModeTone && carrier > 0 {
		if carrier >= cfg.TargetRate/2 {
			a.log.Warn("carrier above the output Nyquist frequency",
				zap.Float64("carrier", carrier),
				zap.Float64("rate", cfg.TargetRate),
			)
		}
		out = audio.NewCarrier(out, carrier)
	}
	defer out.Close()

	var frames int
	err = createFile(output, func(file *os.File) error {
		var werr error
		frames, werr = write(file, out)
		return werr
	})
	if err != nil {
		return err
	}

	a.log.Info("wrote audio",
		zap.String("output", output),
		zap.Stringer("mode", res.Mode),
		zap.Int("frames", frames),
		zap.Float64("seconds", float64(frames)/cfg.TargetRate),
		logging.Duration("took", time.Since(start)),
	)

	return nil
}
