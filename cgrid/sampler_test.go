// SPDX-License-Identifier: MIT
// Package cgrid_test covers BuildLines: counts, ordering, families and
// validation failures.
package cgrid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/stretchr/testify/require"
)

var square4 = cgrid.Bound{Low: -4, High: 4, Step: 2}

func TestBuildLines_ConstRealCounts(t *testing.T) {
	t.Parallel()

	lines, err := cgrid.BuildLines(square4, square4, cgrid.DefaultSteps, cgrid.ConstReal)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	wantFixed := []float64{-4, -2, 0, 2, 4}
	for i, l := range lines {
		require.Equal(t, cgrid.ConstReal, l.Family)
		require.Equal(t, wantFixed[i], l.Fixed)
		require.Len(t, l.Points, cgrid.DefaultSteps)
		// every sample shares the fixed real part
		for _, p := range l.Points {
			require.Equal(t, wantFixed[i], real(p))
		}
		// sweep covers the y interval, endpoints exact
		require.Equal(t, -4.0, imag(l.Points[0]))
		require.Equal(t, 4.0, imag(l.Points[len(l.Points)-1]))
	}
}

func TestBuildLines_ConstImagCounts(t *testing.T) {
	t.Parallel()

	y := cgrid.Bound{Low: -1, High: 1, Step: 0.5}
	lines, err := cgrid.BuildLines(square4, y, 7, cgrid.ConstImag)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	for i, l := range lines {
		require.Equal(t, -1+0.5*float64(i), l.Fixed)
		require.Len(t, l.Points, 7)
		for j, p := range l.Points {
			require.Equal(t, l.Fixed, imag(p))
			if j > 0 {
				require.Greater(t, real(p), real(l.Points[j-1]), "samples ascend along re")
			}
		}
		require.Equal(t, -4.0, real(l.Points[0]))
		require.Equal(t, 4.0, real(l.Points[6]))
	}
}

func TestBuildLines_ConstImagSquare(t *testing.T) {
	t.Parallel()

	lines, err := cgrid.BuildLines(square4, square4, cgrid.DefaultSteps, cgrid.ConstImag)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	wantFixed := []float64{-4, -2, 0, 2, 4}
	for i, l := range lines {
		require.Equal(t, cgrid.ConstImag, l.Family)
		require.Equal(t, wantFixed[i], l.Fixed)
		for _, p := range l.Points {
			require.Equal(t, wantFixed[i], imag(p))
		}
	}
}

func TestBuildLines_ExtremeBounds(t *testing.T) {
	t.Parallel()

	wide := cgrid.Bound{Low: -1e308, High: 1e308, Step: 1e308}
	lines, err := cgrid.BuildLines(wide, wide, 3, cgrid.ConstReal)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.Equal(t, []float64{-1e308, 0, 1e308}, []float64{lines[0].Fixed, lines[1].Fixed, lines[2].Fixed})
	require.Equal(t, []complex128{complex(0, -1e308), 0, complex(0, 1e308)}, lines[1].Points)
}

func TestGridSamples(t *testing.T) {
	t.Parallel()

	n, err := cgrid.GridSamples(square4, square4, 10, cgrid.ConstReal, cgrid.ConstImag)
	require.NoError(t, err)
	require.Equal(t, 100, n)

	n, err = cgrid.GridSamples(square4, cgrid.Bound{Low: 0, High: 1, Step: 1}, 10, cgrid.ConstImag)
	require.NoError(t, err)
	require.Equal(t, 20, n)

	big := cgrid.Bound{Low: 0, High: 9999, Step: 1}
	_, err = cgrid.GridSamples(big, big, 100000, cgrid.ConstReal)
	require.ErrorIs(t, err, cgrid.ErrTooManySamples)

	// each family fits alone, both together do not
	_, err = cgrid.GridSamples(big, big, 300, cgrid.ConstReal)
	require.NoError(t, err)
	_, err = cgrid.GridSamples(big, big, 300, cgrid.ConstReal, cgrid.ConstImag)
	require.ErrorIs(t, err, cgrid.ErrTooManySamples)

	_, err = cgrid.GridSamples(square4, square4, 1, cgrid.ConstReal)
	require.ErrorIs(t, err, cgrid.ErrInsufficientResolution)
}

func TestBuildLines_Deterministic(t *testing.T) {
	t.Parallel()

	x := cgrid.Bound{Low: -1.3, High: 2.9, Step: 0.7}
	y := cgrid.Bound{Low: 0.1, High: 0.9, Step: 0.1}
	for _, fam := range []cgrid.Family{cgrid.ConstReal, cgrid.ConstImag} {
		a, err := cgrid.BuildLines(x, y, 33, fam)
		require.NoError(t, err)
		b, err := cgrid.BuildLines(x, y, 33, fam)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestBuildLines_DegenerateBound(t *testing.T) {
	t.Parallel()

	// Low == High is a valid closed interval: one fixed value.
	x := cgrid.Bound{Low: 1, High: 1, Step: 1}
	lines, err := cgrid.BuildLines(x, square4, 3, cgrid.ConstReal)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, []complex128{complex(1, -4), complex(1, 0), complex(1, 4)}, lines[0].Points)

	// Swept over a zero-width interval the line collapses onto one point.
	lines, err = cgrid.BuildLines(x, square4, 3, cgrid.ConstImag)
	require.NoError(t, err)
	require.Len(t, lines, 5)
	for _, p := range lines[0].Points {
		require.Equal(t, complex(1, -4), p)
	}
}

func TestBuildLines_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x, y   cgrid.Bound
		n      int
		fam    cgrid.Family
		target error
	}{
		{"low>high x", cgrid.Bound{Low: 1, High: 0, Step: 1}, square4, 10, cgrid.ConstReal, cgrid.ErrInvalidBounds},
		{"low>high y", square4, cgrid.Bound{Low: 1, High: 0, Step: 1}, 10, cgrid.ConstReal, cgrid.ErrInvalidBounds},
		{"zero step", cgrid.Bound{Low: 0, High: 1, Step: 0}, square4, 10, cgrid.ConstImag, cgrid.ErrInvalidBounds},
		{"negative step", square4, cgrid.Bound{Low: 0, High: 1, Step: -1}, 10, cgrid.ConstImag, cgrid.ErrInvalidBounds},
		{"nan low", cgrid.Bound{Low: math.NaN(), High: 1, Step: 1}, square4, 10, cgrid.ConstReal, cgrid.ErrInvalidBounds},
		{"inf high", cgrid.Bound{Low: 0, High: math.Inf(1), Step: 1}, square4, 10, cgrid.ConstReal, cgrid.ErrInvalidBounds},
		{"one step", square4, square4, 1, cgrid.ConstReal, cgrid.ErrInsufficientResolution},
		{"zero steps", square4, square4, 0, cgrid.ConstImag, cgrid.ErrInsufficientResolution},
		{"bad family", square4, square4, 10, cgrid.Family(7), cgrid.ErrUnknownFamily},
		{"too many lines", cgrid.Bound{Low: 0, High: 1, Step: 1e-6}, square4, 10, cgrid.ConstReal, cgrid.ErrTooManyLines},
		{"too many samples", cgrid.Bound{Low: 0, High: 999, Step: 1}, square4, 1 << 20, cgrid.ConstReal, cgrid.ErrTooManySamples},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lines, err := cgrid.BuildLines(tc.x, tc.y, tc.n, tc.fam)
			require.ErrorIs(t, err, tc.target)
			require.Nil(t, lines, "no partial output on error")
		})
	}
}

func TestFamily_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "const-real", cgrid.ConstReal.String())
	require.Equal(t, "const-imag", cgrid.ConstImag.String())
	require.Equal(t, "family(9)", cgrid.Family(9).String())
}
