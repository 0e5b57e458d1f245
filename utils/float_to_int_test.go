// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "small positive", input: 0.001, want: 32},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -7, want: -math.MaxInt16},
		{name: "decoded iq minimum", input: -1.0, want: -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32sToInt16_Appends(t *testing.T) {
	t.Parallel()

	dst := []int16{7}
	got := Float32sToInt16(dst, []float32{0, 1, -1})

	want := []int16{7, 0, 32767, -32767}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFloat32sToInt(t *testing.T) {
	t.Parallel()

	dst := make([]int, 8)
	got := Float32sToInt(dst, []float32{0.5, 2})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	if got[0] != 16383 || got[1] != 32767 {
		t.Errorf("Float32sToInt() = %v, want [16383 32767]", got)
	}
}

func TestFloat32sToInt_Grows(t *testing.T) {
	t.Parallel()

	got := Float32sToInt(nil, []float32{-0.5, 0})
	if len(got) != 2 || got[0] != -16383 || got[1] != 0 {
		t.Errorf("Float32sToInt(nil) = %v, want [-16383 0]", got)
	}
}
