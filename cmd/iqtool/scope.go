// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/iqtone/pipeline"
	"github.com/ik5/iqtone/scope"
)

type scopeFlags struct {
	output     string
	sampleRate float64
	tone       float64
	rate       float64
	windowSize int
	edge       int
	window     string
}

func (a *app) scopeCommand() *cobra.Command {
	var f scopeFlags

	cmd := &cobra.Command{
		Use:   "scope <input>",
		Short: "Export a capture as an index,time,amplitude CSV trace",
		Long: `Without --tone the I channel is resampled to --rate and written as is.
With --tone one edge-smoothed amplitude per chunk is written, at the chunk
rate of sample-rate / window-size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScope(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "CSV file (default: standard output)")
	fl.Float64VarP(&f.sampleRate, "sample-rate", "s", a.cfg.Capture.SampleRate, "capture sample rate in Hz")
	fl.Float64VarP(&f.tone, "tone", "f", 0, "tone offset in Hz; traces the tone amplitude instead of I")
	fl.Float64VarP(&f.rate, "rate", "r", a.cfg.Scope.Rate, "raw trace sample rate in Hz")
	fl.IntVarP(&f.windowSize, "window-size", "n", a.cfg.Scope.WindowSize, "samples per tone chunk")
	fl.IntVar(&f.edge, "edge", a.cfg.Scope.EdgeWindow, "moving average length over chunk amplitudes; 0 disables it")
	fl.StringVar(&f.window, "window", a.cfg.Scope.Window, "tone filter window")

	return cmd
}

func (a *app) runScope(cmd *cobra.Command, input string, f scopeFlags) error {
	cfg := pipeline.DefaultConfig()
	cfg.CaptureRate = pick(cmd, "sample-rate", f.sampleRate, a.cfg.Capture.SampleRate)
	cfg.TargetRate = pick(cmd, "rate", f.rate, a.cfg.Scope.Rate)
	cfg.WindowSize = pick(cmd, "window-size", f.windowSize, a.cfg.Scope.WindowSize)
	cfg.EdgeWindow = pick(cmd, "edge", f.edge, a.cfg.Scope.EdgeWindow)
	cfg.Window = pick(cmd, "window", f.window, a.cfg.Scope.Window)
	if cmd.Flags().Changed("tone") {
		cfg.ToneHz = pipeline.Hz(f.tone)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	trace, err := a.trace(input, cfg)
	if err != nil {
		return err
	}

	a.log.Info("collected trace",
		zap.Stringer("mode", cfg.Mode()),
		zap.Int("points", len(trace.Points)),
		zap.Float64("rate", trace.SampleRate),
		zap.Float64("seconds", trace.Duration()),
	)

	if f.output == "" {
		return trace.WriteCSV(a.stdout)
	}

	return createFile(f.output, func(file *os.File) error {
		return trace.WriteCSV(file)
	})
}

func (a *app) trace(input string, cfg pipeline.Config) (*scope.Trace, error) {
	if cfg.Mode() == pipeline.ModeRaw {
		src, err := a.openInput(input, cfg.CaptureRate)
		if err != nil {
			return nil, err
		}

		raw, err := pipeline.Raw(src, cfg)
		if err != nil {
			src.Close()
			return nil, err
		}
		defer raw.Close()

		return scope.Collect(raw)
	}

	r, src, err := a.openIQ(input, cfg.CaptureRate)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	amps, chunkRate, err := pipeline.Amplitudes(r, cfg)
	if err != nil {
		return nil, err
	}

	return scope.FromSamples(amps, chunkRate), nil
}

