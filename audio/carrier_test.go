// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestCarrier_KeysEnvelope(t *testing.T) {
	t.Parallel()

	envelope := []float32{1, 1, 1, 1, 0.5, 0.5, 0.5, 0.5}
	c := NewCarrier(NewBufferSource(envelope, 4000, 1), 1000)

	got := readAll(t, c, 3)

	want := []float32{0, 1, 0, -1, 0, 0.5, 0, -0.5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCarrier_StereoSharesPhase(t *testing.T) {
	t.Parallel()

	c := NewCarrier(NewBufferSource([]float32{1, -1, 1, -1}, 4, 2), 1)

	if c.Channels() != 2 || c.SampleRate() != 4 {
		t.Errorf("format = %v Hz x %d, want 4 Hz x 2", c.SampleRate(), c.Channels())
	}

	got := readAll(t, c, 4)
	want := []float32{0, 0, 1, -1}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}
