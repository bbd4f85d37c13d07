// Package cgrid validation helpers. Each returns a wrapped sentinel so
// callers can match with errors.Is while still seeing the offending values.
package cgrid

import (
	"fmt"
	"math"
)

// Validate checks the Bound invariants: finite components, Low ≤ High,
// Step > 0, and at most MaxFixedValues fixed coordinates.
func (b Bound) Validate() error {
	if math.IsNaN(b.Low) || math.IsNaN(b.High) || math.IsNaN(b.Step) ||
		math.IsInf(b.Low, 0) || math.IsInf(b.High, 0) || math.IsInf(b.Step, 0) {
		return fmt.Errorf("bound %v has non-finite component: %w", b, ErrInvalidBounds)
	}
	if b.Low > b.High {
		return fmt.Errorf("bound %v: low %g > high %g: %w", b, b.Low, b.High, ErrInvalidBounds)
	}
	if b.Step <= 0 {
		return fmt.Errorf("bound %v: step must be > 0, got %g: %w", b, b.Step, ErrInvalidBounds)
	}
	if b.ratio() >= MaxFixedValues {
		return fmt.Errorf("bound %v selects more than %d fixed values: %w", b, MaxFixedValues, ErrTooManyLines)
	}

	return nil
}

// ratio is Span/Step, computed per endpoint when the span itself overflows.
func (b Bound) ratio() float64 {
	if s := b.Span(); !math.IsInf(s, 0) {
		return s / b.Step
	}

	return b.High/b.Step - b.Low/b.Step
}

// validateSteps ensures n ≥ MinSteps.
func validateSteps(method string, n int) error {
	if n < MinSteps {
		return fmt.Errorf("%s: nSteps must be ≥ %d, got %d: %w", method, MinSteps, n, ErrInsufficientResolution)
	}

	return nil
}

// ValidateGrid checks both bounds and the line resolution in the order
// BuildLines does. It lets callers that build several families reject bad
// input once, before producing any output.
func ValidateGrid(x, y Bound, nSteps int) error {
	if err := x.Validate(); err != nil {
		return fmt.Errorf("%s: x %w", methodBuildLines, err)
	}
	if err := y.Validate(); err != nil {
		return fmt.Errorf("%s: y %w", methodBuildLines, err)
	}

	return validateSteps(methodBuildLines, nSteps)
}

// GridSamples returns the number of samples BuildLines produces for the
// given families, summed. It fails with ErrTooManySamples above
// MaxGridSamples, before anything is allocated.
func GridSamples(x, y Bound, nSteps int, fams ...Family) (int, error) {
	if err := ValidateGrid(x, y, nSteps); err != nil {
		return 0, err
	}

	total := 0
	for _, fam := range fams {
		fixed := x
		if fam == ConstImag {
			fixed = y
		}
		n := LineCount(fixed)
		if nSteps > (MaxGridSamples-total)/n {
			return 0, fmt.Errorf("%s: %d lines × %d steps exceeds %d samples: %w",
				methodBuildLines, n, nSteps, MaxGridSamples, ErrTooManySamples)
		}
		total += n * nSteps
	}

	return total, nil
}
