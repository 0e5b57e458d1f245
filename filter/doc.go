// SPDX-License-Identifier: EPL-2.0

// Package filter holds the per-chunk signal filters applied to decoded I/Q
// samples: a single-bin narrowband amplitude detector and a moving-average
// edge smoother.
//
// # Narrowband
//
// Narrowband correlates consecutive chunks of samples against one target
// frequency (a windowed single-bin DFT, Goertzel style). It is chunk gated:
// Push returns a value only when a chunk completes, so callers cannot read a
// half-filled accumulator.
//
//	nb, err := filter.NewNarrowband(2e6, 25e3, 100, nil) // blackman-harris
//	for _, s := range samples {
//	    if amp, ok := nb.Push(s); ok {
//	        // one amplitude per 100 samples, at nb.ChunkRate() Hz
//	    }
//	}
//
// # Edge
//
// Edge smooths the amplitude stream before level recovery. Unlike
// Narrowband it can be read after any number of inputs.
//
// # Windows
//
// Window functions come from gonum's dsp/window package and are selected by
// name with ParseWindow. WindowFunc wraps a custom per-index weight.
package filter
