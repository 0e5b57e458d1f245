// SPDX-License-Identifier: EPL-2.0

package utils

// Lerp returns the value a fraction x of the way from y0 to y1.
// x = 0 yields exactly y0.
func Lerp(y0, y1, x float32) float32 {
	if x == 0 {
		return y0
	}

	return y0 + (y1-y0)*x
}

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples at fractional position x between y1 and y2 (0 <= x <= 1).
// A constant run of samples interpolates to the same constant.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	if x == 0 {
		return y1
	}

	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
