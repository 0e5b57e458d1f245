// SPDX-License-Identifier: EPL-2.0

package filter

import "fmt"

// Edge smooths an amplitude stream with a moving average over the last m
// values and tracks the change between consecutive smoothed values, which
// is what level and transition recovery key on.
type Edge struct {
	ring  []float32
	idx   int
	count int
	sum   float64

	prev, cur float32
}

func NewEdge(m int) (*Edge, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: edge window %d", ErrInvalidParameter, m)
	}

	return &Edge{ring: make([]float32, m)}, nil
}

// Input pushes v into the history.
func (e *Edge) Input(v float32) {
	if e.count == len(e.ring) {
		e.sum -= float64(e.ring[e.idx])
	} else {
		e.count++
	}

	e.ring[e.idx] = v
	e.sum += float64(v)
	e.idx = (e.idx + 1) % len(e.ring)

	// re-sum once per lap so the running total cannot drift
	if e.idx == 0 {
		e.sum = 0
		for _, x := range e.ring[:e.count] {
			e.sum += float64(x)
		}
	}

	e.prev = e.cur
	e.cur = float32(e.sum / float64(e.count))
}

// Output is the average of the values currently held, 0 before any input.
func (e *Edge) Output() float32 { return e.cur }

// Slope is the change of Output caused by the latest Input: positive on a
// rising edge, negative on a falling one.
func (e *Edge) Slope() float32 { return e.cur - e.prev }

// Process is Input followed by Output.
func (e *Edge) Process(v float32) float32 {
	e.Input(v)
	return e.cur
}

// Len is the history length m.
func (e *Edge) Len() int { return len(e.ring) }

func (e *Edge) Reset() {
	clear(e.ring)
	e.idx, e.count, e.sum = 0, 0, 0
	e.prev, e.cur = 0, 0
}
