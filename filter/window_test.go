// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"errors"
	"math"
	"testing"
)

func TestParseWindow(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"hann", "HANN", " blackman-harris ", "", "rectangular", "flattop"} {
		if _, err := ParseWindow(name); err != nil {
			t.Errorf("ParseWindow(%q) error = %v", name, err)
		}
	}

	if _, err := ParseWindow("kaiser-bessel"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("ParseWindow(unknown) error = %v, want ErrUnknownWindow", err)
	}
}

func TestWindowNames_Sorted(t *testing.T) {
	t.Parallel()

	names := WindowNames()
	if len(names) != len(windows) {
		t.Fatalf("len = %d, want %d", len(names), len(windows))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestWeights(t *testing.T) {
	t.Parallel()

	rect := Weights(windows["rectangular"], 5)
	for i, v := range rect {
		if v != 1 {
			t.Errorf("rectangular[%d] = %v, want 1", i, v)
		}
	}

	single := Weights(windows["blackman-harris"], 1)
	if len(single) != 1 || single[0] != 1 {
		t.Errorf("Weights(n=1) = %v, want [1]", single)
	}

	hann := Weights(windows["hann"], 5)
	want := []float64{0, 0.5, 1, 0.5, 0}
	for i := range want {
		if math.Abs(hann[i]-want[i]) > 1e-12 {
			t.Errorf("hann[%d] = %v, want %v", i, hann[i], want[i])
		}
	}
}

func TestWeights_NilIsDefault(t *testing.T) {
	t.Parallel()

	got := Weights(nil, 16)
	want := Weights(windows[DefaultWindow], 16)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Weights(nil)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWindowFunc(t *testing.T) {
	t.Parallel()

	ramp := WindowFunc(func(index, n int) float64 {
		return float64(index) / float64(n)
	})

	got := Weights(ramp, 4)
	want := []float64{0, 0.25, 0.5, 0.75}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("weights[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
