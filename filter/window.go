// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/dsp/window"
)

// Window weights a block of samples in place and returns it, the same
// signature as the gonum dsp/window functions.
type Window func(seq []float64) []float64

// DefaultWindow is the window used when none is configured.
const DefaultWindow = "blackman-harris"

var windows = map[string]Window{
	"rectangular":      window.Rectangular,
	"sine":             window.Sine,
	"triangular":       window.Triangular,
	"hann":             window.Hann,
	"hamming":          window.Hamming,
	"blackman":         window.Blackman,
	"blackman-harris":  window.BlackmanHarris,
	"blackman-nuttall": window.BlackmanNuttall,
	"nuttall":          window.Nuttall,
	"flattop":          window.FlatTop,
}

// ParseWindow looks a window up by name (case-insensitive).
// An empty name selects DefaultWindow.
func ParseWindow(name string) (Window, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultWindow
	}

	w, ok := windows[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}

	return w, nil
}

// WindowNames lists the names ParseWindow accepts.
func WindowNames() []string {
	names := make([]string, 0, len(windows))
	for k := range windows {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// WindowFunc adapts a per-index weight function to a Window.
func WindowFunc(weight func(index, n int) float64) Window {
	return func(seq []float64) []float64 {
		for i := range seq {
			seq[i] *= weight(i, len(seq))
		}
		return seq
	}
}

// Weights returns the n weights of w, or of DefaultWindow when w is nil.
// A single-sample window is always [1]; the cosine-sum windows are
// undefined there.
func Weights(w Window, n int) []float64 {
	if w == nil {
		w = windows[DefaultWindow]
	}

	seq := make([]float64, n)
	for i := range seq {
		seq[i] = 1
	}

	if n == 1 {
		return seq
	}

	return w(seq)
}
