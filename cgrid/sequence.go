// SPDX-License-Identifier: MIT
// Package: zplane/cgrid
//
// sequence.go - 1-D coordinate sequences behind the sampler.
//
// Contract:
//   • FixedValues(b): Low + k·Step for k = 0,1,..., every value ≤ High.
//     High itself is included when it lands on a step boundary (within
//     edgeTolerance·Step); the last value is then snapped to exactly High.
//   • Linspace(lo, hi, n): n evenly spaced values, both endpoints exact.
//   • Values are computed as base + k·delta, never by accumulation, so long
//     sequences do not drift.

package cgrid

import "math"

// FixedValues returns the fixed coordinates selected by b in ascending order.
// Complexity: O((High-Low)/Step) time and space.
func FixedValues(b Bound) ([]float64, error) {
	// 1) Validate early; nothing is allocated for bad input.
	if err := b.Validate(); err != nil {
		return nil, wrapMethod(methodFixedValues, err)
	}

	// 2) Count the steps that fit, allowing a hair of float slack at the edge.
	last := LineCount(b) - 1

	// 3) Emit Low + k·Step.
	out := make([]float64, last+1)
	for k := 0; k <= last; k++ {
		v := b.Low + float64(k)*b.Step
		if math.IsInf(v, 0) {
			v = (b.Low/b.Step + float64(k)) * b.Step
		}
		out[k] = v
	}

	// 4) Snap to High when the final value is High up to rounding.
	if math.Abs(out[last]-b.High) <= edgeTolerance*b.Step {
		out[last] = b.High
	}

	return out, nil
}

// LineCount returns len(FixedValues(b)) without allocating. It is only
// meaningful for a Bound that passes Validate.
func LineCount(b Bound) int {
	return int(math.Floor(b.ratio()+edgeTolerance)) + 1
}

// Linspace returns n evenly spaced samples over [lo, hi].
// lo == hi is allowed and yields n copies of lo.
// Complexity: O(n) time and space.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if err := validateSteps(methodLinspace, n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	delta := (hi - lo) / float64(n-1)
	if math.IsInf(delta, 0) {
		// hi-lo overflowed; interpolate the endpoints instead.
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			out[i] = lo*(1-t) + hi*t
		}
		out[n-1] = hi
		return out, nil
	}
	for i := 0; i < n; i++ {
		out[i] = lo + float64(i)*delta
	}
	// Endpoint is exact regardless of rounding in delta.
	out[n-1] = hi

	return out, nil
}
