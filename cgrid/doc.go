// Package cgrid samples axis-parallel probe lines in the complex plane.
//
// 🚀 What is a probe line?
//
//	A probe line holds one coordinate of z = re + i·im fixed and sweeps the
//	other one across a closed interval. Two families exist:
//	  • ConstReal - re fixed, im swept: vertical lines, parallel to the imaginary axis.
//	  • ConstImag - im fixed, re swept: horizontal lines, parallel to the real axis.
//	Feeding both families through a complex function shows how it bends the grid.
//
// ✨ Key features:
//   - Bound{Low, High, Step}: Step picks the fixed coordinates of the
//     orthogonal family; the swept axis uses nSteps evenly spaced samples.
//   - Closed-interval stepping: High is included when (High-Low) is a
//     multiple of Step; otherwise every Low+k·Step ≤ High is kept.
//   - Fail-fast validation with sentinel errors (ErrInvalidBounds,
//     ErrInsufficientResolution); no partial output.
//   - Pure and deterministic: fixed coordinates ascending, samples ascending.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/zplane/cgrid"
//
//	x := cgrid.Bound{Low: -4, High: 4, Step: 2}
//	y := cgrid.Bound{Low: -4, High: 4, Step: 2}
//	lines, err := cgrid.BuildLines(x, y, cgrid.DefaultSteps, cgrid.ConstReal)
//	// 5 lines (re = -4,-2,0,2,4), 100 points each
//
// Performance:
//
//   - Time:   O(L·n) where L = number of fixed coordinates, n = nSteps
//   - Memory: O(L·n) complex128 values
package cgrid
