// SPDX-License-Identifier: EPL-2.0

package iq

// Sample is one complex baseband sample.
type Sample struct {
	I, Q float32
}

func (s Sample) Complex() complex128 {
	return complex(float64(s.I), float64(s.Q))
}
