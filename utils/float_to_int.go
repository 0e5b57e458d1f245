// SPDX-License-Identifier: EPL-2.0

package utils

const maxInt16 = 32767.0

// Float32ToInt16 clamps x to [-1, 1] and scales it onto the int16 range.
// Both ends scale by 32767 so the output is symmetric around zero.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * maxInt16)
}

// Float32sToInt16 appends the int16 conversion of every value in src to dst.
func Float32sToInt16(dst []int16, src []float32) []int16 {
	for _, x := range src {
		dst = append(dst, Float32ToInt16(x))
	}

	return dst
}

// Float32sToInt converts src into dst as 16-bit PCM values held in ints,
// the representation go-audio buffers use. dst is reused when it has the
// capacity.
func Float32sToInt(dst []int, src []float32) []int {
	if cap(dst) < len(src) {
		dst = make([]int, len(src))
	}

	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = int(Float32ToInt16(x))
	}

	return dst
}
