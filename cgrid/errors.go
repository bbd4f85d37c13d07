// SPDX-License-Identifier: MIT
// Package: zplane/cgrid
//
// errors.go - sentinel errors for the cgrid package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site ("BuildLines: x bound ...: %w").
//   • Sampling never panics; invalid input is reported before any allocation.

package cgrid

import "errors"

// ErrInvalidBounds indicates a Bound with Low > High, a non-positive Step,
// or a non-finite component.
var ErrInvalidBounds = errors.New("cgrid: invalid bounds")

// ErrInsufficientResolution indicates nSteps < MinSteps; a line needs at
// least two points.
var ErrInsufficientResolution = errors.New("cgrid: insufficient resolution")

// ErrUnknownFamily indicates a Family value outside {ConstReal, ConstImag}.
var ErrUnknownFamily = errors.New("cgrid: unknown line family")

// ErrBadBoundSyntax indicates a textual bound that ParseBound cannot read.
var ErrBadBoundSyntax = errors.New("cgrid: malformed bound")

// ErrTooManyLines indicates a Bound whose step selects more than
// MaxFixedValues fixed coordinates.
var ErrTooManyLines = errors.New("cgrid: too many probe lines")

// ErrTooManySamples indicates a grid whose lines × nSteps product exceeds
// MaxGridSamples.
var ErrTooManySamples = errors.New("cgrid: too many grid samples")
