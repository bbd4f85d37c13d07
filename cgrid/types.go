// SPDX-License-Identifier: MIT
// Package: zplane/cgrid
//
// types.go - value types shared by the sampler and its callers.

package cgrid

import "strconv"

// Bound describes a closed interval [Low, High] on one axis together with a
// Step. Step selects the fixed coordinates of the orthogonal line family; it
// does not control the resolution of a line along this axis.
type Bound struct {
	Low  float64
	High float64
	Step float64
}

// Span returns High-Low.
func (b Bound) Span() float64 { return b.High - b.Low }

// String renders the bound as "lo,hi,step", the form ParseBound accepts.
func (b Bound) String() string {
	return strconv.FormatFloat(b.Low, 'g', -1, 64) + "," +
		strconv.FormatFloat(b.High, 'g', -1, 64) + "," +
		strconv.FormatFloat(b.Step, 'g', -1, 64)
}

// Family classifies a probe line by the coordinate it holds constant.
type Family int

const (
	// ConstReal lines keep re fixed and sweep im: parallel to the imaginary axis.
	ConstReal Family = iota

	// ConstImag lines keep im fixed and sweep re: parallel to the real axis.
	ConstImag
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case ConstReal:
		return "const-real"
	case ConstImag:
		return "const-imag"
	default:
		return "family(" + strconv.Itoa(int(f)) + ")"
	}
}

// valid reports whether f is one of the declared families.
func (f Family) valid() bool { return f == ConstReal || f == ConstImag }

// ProbeLine is an ordered run of samples sharing one fixed coordinate.
// Lines are created per call and never mutated by this package afterwards.
type ProbeLine struct {
	// Family tells which coordinate Fixed refers to.
	Family Family
	// Fixed is the held coordinate: re for ConstReal, im for ConstImag.
	Fixed float64
	// Points holds the samples in ascending order along the swept axis.
	Points []complex128
}

// Len returns the number of samples on the line.
func (l ProbeLine) Len() int { return len(l.Points) }
