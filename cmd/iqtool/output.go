// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/formats/aiff"
	"github.com/ik5/iqtone/formats/wav"
)

// sink writes a whole source to a seekable file and returns the frame count.
type sink func(io.WriteSeeker, audio.Source) (int, error)

var sinks = map[string]sink{
	"wav":  wav.WriteSource,
	"aiff": aiff.WriteSource,
	"aif":  aiff.WriteSource,
}

func sinkFor(format string) (sink, error) {
	s, ok := sinks[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return s, nil
}

var errOverwriteInput = errors.New("output would overwrite the input")

// defaultOutput names the file written when no output is given.
func defaultOutput(ext string) string {
	return "output." + ext
}

// checkOutput refuses an output that is the input file itself.
func checkOutput(input, output string) error {
	in, err := os.Stat(input)
	if err != nil {
		return nil
	}

	out, err := os.Stat(output)
	if err != nil {
		return nil
	}

	if os.SameFile(in, out) {
		return fmt.Errorf("%w: %s", errOverwriteInput, output)
	}

	return nil
}

// createFile runs write against a new file at path and closes it. A partial
// file is left behind when write fails.
func createFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	err = write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", path, cerr)
	}

	return err
}
