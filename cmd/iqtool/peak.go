// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/iqtone/filter"
	"github.com/ik5/iqtone/spectrum"
)

func (a *app) peakCommand() *cobra.Command {
	var (
		sampleRate float64
		size       int
		skipDC     bool
		window     string
	)

	cmd := &cobra.Command{
		Use:   "peak <input>",
		Short: "Print the strongest frequency offset in a capture",
		Long: `Average the power spectra of consecutive FFT blocks and report the
strongest bin as a signed offset from the tuned frequency. The result is a
starting point for the --tone flag of the wav and scope commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := filter.ParseWindow(window)
			if err != nil {
				return err
			}

			r, src, err := a.openIQ(args[0], pick(cmd, "sample-rate", sampleRate, a.cfg.Capture.SampleRate))
			if err != nil {
				return err
			}
			defer src.Close()

			p, err := spectrum.Find(r, spectrum.Options{
				Size:   pick(cmd, "fft", size, a.cfg.Peak.FFTSize),
				Window: w,
				SkipDC: pick(cmd, "skip-dc", skipDC, a.cfg.Peak.SkipDC),
			})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			a.log.Debug("spectrum averaged",
				zap.Int("size", p.Size),
				zap.Int("blocks", p.Blocks),
				zap.Int("bin", p.Bin),
			)

			fmt.Fprintf(a.stdout, "%.1f Hz (bin %d of %d, amplitude %.4f)\n", p.Hz, p.Bin, p.Size, p.Amplitude)

			return nil
		},
	}

	fl := cmd.Flags()
	fl.Float64VarP(&sampleRate, "sample-rate", "s", a.cfg.Capture.SampleRate, "capture sample rate in Hz")
	fl.IntVar(&size, "fft", a.cfg.Peak.FFTSize, "FFT block size")
	fl.BoolVar(&skipDC, "skip-dc", a.cfg.Peak.SkipDC, "ignore the 0 Hz bin")
	fl.StringVar(&window, "window", filter.DefaultWindow, "analysis window")

	return cmd
}
