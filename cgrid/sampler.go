// SPDX-License-Identifier: MIT
// Package: zplane/cgrid
//
// sampler.go - BuildLines, the probe-line generator.
//
// Canonical model:
//   • ConstReal: for every re in FixedValues(x), one line re + i·im with
//     im ∈ Linspace(y.Low, y.High, nSteps).
//   • ConstImag: for every im in FixedValues(y), one line re + i·im with
//     re ∈ Linspace(x.Low, x.High, nSteps).
//
// Contract:
//   • Both bounds are validated even though each family uses only one Step;
//     a malformed bound is a caller error regardless of the family requested.
//   • nSteps ≥ MinSteps, else ErrInsufficientResolution.
//   • lines × nSteps ≤ MaxGridSamples, else ErrTooManySamples.
//   • Fail fast: on error no lines are returned.
//
// Determinism:
//   • Lines ordered by fixed coordinate ascending; samples ascending.
//   • Identical inputs produce bit-identical output.

package cgrid

import "fmt"

// BuildLines returns the probe lines of one family over the rectangle x × y.
func BuildLines(x, y Bound, nSteps int, fam Family) ([]ProbeLine, error) {
	// 1) Validate everything before any work.
	if !fam.valid() {
		return nil, fmt.Errorf("%s: %v: %w", methodBuildLines, fam, ErrUnknownFamily)
	}
	if _, err := GridSamples(x, y, nSteps, fam); err != nil {
		return nil, err
	}

	// 2) Pick which bound provides the fixed coordinates and which is swept.
	fixedBound, sweptBound := x, y
	if fam == ConstImag {
		fixedBound, sweptBound = y, x
	}

	fixed, err := FixedValues(fixedBound)
	if err != nil {
		return nil, wrapMethod(methodBuildLines, err)
	}
	swept, err := Linspace(sweptBound.Low, sweptBound.High, nSteps)
	if err != nil {
		return nil, wrapMethod(methodBuildLines, err)
	}

	// 3) Emit one line per fixed coordinate.
	lines := make([]ProbeLine, len(fixed))
	for li, f := range fixed {
		pts := make([]complex128, nSteps)
		for i, s := range swept {
			if fam == ConstReal {
				pts[i] = complex(f, s) // re fixed, im swept
			} else {
				pts[i] = complex(s, f) // im fixed, re swept
			}
		}
		lines[li] = ProbeLine{Family: fam, Fixed: f, Points: pts}
	}

	return lines, nil
}

// wrapMethod prefixes err with a method tag, keeping the sentinel for errors.Is.
func wrapMethod(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
