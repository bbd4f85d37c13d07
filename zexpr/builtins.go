package zexpr

import (
	"maps"
	"math"
	"math/cmplx"
	"slices"
)

// varName is the single free variable of an expression.
const varName = "z"

var constants = map[string]complex128{
	"i":  1i,
	"pi": complex(math.Pi, 0),
	"e":  complex(math.E, 0),
}

// builtin describes a function callable from expressions.
type builtin struct {
	arity int
	fn1   func(complex128) complex128
	fn2   func(a, b complex128) complex128
}

func fn(f func(complex128) complex128) builtin { return builtin{arity: 1, fn1: f} }

func realPart(f func(complex128) float64) builtin {
	return fn(func(z complex128) complex128 { return complex(f(z), 0) })
}

var builtins = map[string]builtin{
	// Trigonometry.
	"sin":  fn(cmplx.Sin),
	"cos":  fn(cmplx.Cos),
	"tan":  fn(cmplx.Tan),
	"cot":  fn(cmplx.Cot),
	"asin": fn(cmplx.Asin),
	"acos": fn(cmplx.Acos),
	"atan": fn(cmplx.Atan),

	// Hyperbolic.
	"sinh":  fn(cmplx.Sinh),
	"cosh":  fn(cmplx.Cosh),
	"tanh":  fn(cmplx.Tanh),
	"asinh": fn(cmplx.Asinh),
	"acosh": fn(cmplx.Acosh),
	"atanh": fn(cmplx.Atanh),

	// Exponentials and logs.
	"exp":   fn(cmplx.Exp),
	"log":   fn(cmplx.Log),
	"ln":    fn(cmplx.Log),
	"log10": fn(cmplx.Log10),

	// Powers and roots.
	"sqrt": fn(cmplx.Sqrt),
	"inv":  fn(func(z complex128) complex128 { return 1 / z }),
	"pow":  {arity: 2, fn2: cmplx.Pow},

	// Parts.
	"abs":  realPart(cmplx.Abs),
	"arg":  realPart(cmplx.Phase),
	"re":   realPart(func(z complex128) float64 { return real(z) }),
	"im":   realPart(func(z complex128) float64 { return imag(z) }),
	"conj": fn(cmplx.Conj),
}

// Builtins returns the names of every callable function, sorted.
func Builtins() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// Constants returns the names of the predefined constants, sorted.
func Constants() []string {
	return slices.Sorted(maps.Keys(constants))
}
