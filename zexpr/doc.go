// Package zexpr compiles textual complex expressions into cmap.Func values,
// so grids can be mapped by functions named on the command line, in scene
// files or in HTTP requests.
//
// Grammar (lowest to highest precedence):
//
//	expr    = sum
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ ("^" | "**") unary ]   (right-associative)
//	primary = number | ident | ident "(" expr { "," expr } ")" | "(" expr ")"
//
// Numbers accept an "i" suffix for imaginary literals ("2i", "0.5i").
// Identifiers: the variable z, the constants i, pi and e, and the builtins
// listed by Builtins. Parsing happens once; the returned function only
// evaluates a closure tree and is safe for concurrent use.
//
//	f, err := zexpr.Compile("sin(z) + 1/z^2")
//	if err != nil { ... }
//	w := f(1 + 1i)
package zexpr
