// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/iqtone/internal/logging"
	"github.com/ik5/iqtone/iq"
)

func (a *app) convertCommand() *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Write a capture as float32 I/Q pairs",
		Long: `Decode every byte pair of the input to an I/Q sample in [-1, 1] and write
it as little-endian or big-endian float32 pairs, or as "I,Q" text lines.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := iq.ParseEncoding(pick(cmd, "encoding", encoding, a.cfg.Convert.Encoding))
			if err != nil {
				return err
			}

			r, src, err := a.openIQ(args[0], a.cfg.Capture.SampleRate)
			if err != nil {
				return err
			}
			defer src.Close()

			start := time.Now()
			var n int
			err = createFile(args[1], func(f *os.File) error {
				var werr error
				n, werr = iq.NewWriter(f, enc).Copy(r)
				if werr != nil {
					return fmt.Errorf("writing %s: %w", args[1], werr)
				}
				return nil
			})
			if err != nil {
				return err
			}

			a.log.Info("converted capture",
				zap.String("input", args[0]),
				zap.String("output", args[1]),
				zap.Stringer("encoding", enc),
				zap.Int("samples", n),
				logging.Duration("took", time.Since(start)),
			)

			return nil
		},
	}

	cmd.Flags().StringVarP(&encoding, "encoding", "e", a.cfg.Convert.Encoding,
		"output encoding: little-endian, big-endian or text")

	return cmd
}
