// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/formats"
	"github.com/ik5/iqtone/internal/config"
	"github.com/ik5/iqtone/internal/logging"
	"github.com/ik5/iqtone/iq"
)

type app struct {
	cfg    *config.Config
	log    *zap.Logger
	reg    *audio.Registry
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logJSON    bool
}

func newApp(stdout, stderr io.Writer) *app {
	log, err := logging.New(stderr, logging.Options{})
	if err != nil {
		log = zap.NewNop()
	}

	return &app{
		cfg:    config.Default(),
		log:    log,
		reg:    formats.NewRegistry(),
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "iqtool",
		Short:             "Turn 8-bit SDR I/Q captures into audio, traces and spectra",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML file overriding the built-in defaults")
	pf.StringVar(&a.logLevel, "log-level", a.cfg.Log.Level, "log level: debug, info, warn or error")
	pf.BoolVar(&a.logJSON, "log-json", a.cfg.Log.JSON, "log JSON lines instead of console text")

	root.AddCommand(
		a.convertCommand(),
		a.wavCommand(),
		a.scopeCommand(),
		a.peakCommand(),
	)

	return root
}

// setup loads the config file and rebuilds the logger before any subcommand
// runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	log, err := logging.New(a.stderr, logging.Options{
		Level: pick(cmd, "log-level", a.logLevel, a.cfg.Log.Level),
		JSON:  pick(cmd, "log-json", a.logJSON, a.cfg.Log.JSON),
	})
	if err != nil {
		return err
	}
	a.log = log.Named(cmd.Name())

	if a.configPath != "" {
		a.log.Debug("loaded config", zap.String("path", a.configPath))
	}

	return nil
}

// pick returns the flag value when name was given on the command line and
// the configured value otherwise.
func pick[T any](cmd *cobra.Command, name string, flag, configured T) T {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return configured
}

// openInput decodes path by extension when a container decoder is
// registered for it. Anything else is read as a raw 8-bit capture recorded
// at rate Hz.
func (a *app) openInput(path string, rate float64) (audio.Source, error) {
	src, ok, err := formats.Open(a.reg, path)
	if err != nil {
		return nil, err
	}
	if ok {
		a.log.Debug("decoded container",
			zap.String("path", path),
			zap.Float64("rate", src.SampleRate()),
			zap.Int("channels", src.Channels()),
		)
		return src, nil
	}

	capture, err := iq.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if len(capture)%2 != 0 {
		a.log.Warn("odd capture length, dropping the last byte", zap.String("path", path))
	}

	a.log.Debug("loaded raw capture",
		zap.String("path", path),
		zap.Int("samples", len(capture)/2),
		zap.Float64("rate", rate),
	)

	return iq.NewSource(capture, rate), nil
}

// openIQ is openInput for stages that consume complex samples.
func (a *app) openIQ(path string, rate float64) (iq.Reader, audio.Source, error) {
	src, err := a.openInput(path, rate)
	if err != nil {
		return nil, nil, err
	}

	r, err := iq.NewReader(src)
	if err != nil {
		src.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, src, nil
}
