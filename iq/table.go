// SPDX-License-Identifier: EPL-2.0

package iq

// table maps a raw capture byte to its normalized value.
// Built once at init and never written again.
var table = buildTable()

func buildTable() [256]float32 {
	var t [256]float32
	for b := range t {
		t[b] = float32(int8(b)) / 128.0
	}
	return t
}

// Lookup returns the normalized value of a single capture byte.
func Lookup(b byte) float32 { return table[b] }

// Table returns a copy of the full 256-entry lookup table.
func Table() [256]float32 { return table }
