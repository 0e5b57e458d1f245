// SPDX-License-Identifier: EPL-2.0

// Command iqtool turns 8-bit SDR I/Q captures into audio files, scope traces
// and spectrum readings.
//
//	iqtool wav capture.bin -f 5000 -o tone.wav
//	iqtool scope capture.bin -o trace.csv
//	iqtool peak capture.bin
//	iqtool convert capture.bin capture.f32 -e little-endian
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCommand().Execute(); err != nil {
		a.log.Error("iqtool failed", zap.Error(err))
		_ = a.log.Sync()
		os.Exit(1)
	}
	_ = a.log.Sync()
}
