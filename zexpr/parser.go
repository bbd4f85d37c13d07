package zexpr

import (
	"fmt"
	"math/cmplx"
)

// node is a compiled subexpression. Constant subtrees are folded at parse
// time so the evaluation closure only walks what depends on z.
type node struct {
	eval  func(z complex128) complex128
	konst bool
	val   complex128
}

func constant(v complex128) node {
	return node{eval: func(complex128) complex128 { return v }, konst: true, val: v}
}

var variable = node{eval: func(z complex128) complex128 { return z }}

// maxIntPow bounds the exponent handled by repeated squaring.
const maxIntPow = 64

type parser struct {
	l   lexer
	cur token
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) parseExpr() (node, error) {
	return p.parseSum()
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return node{}, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.kind
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return node{}, err
		}
		if op == tokPlus {
			left = binary(left, right, func(a, b complex128) complex128 { return a + b })
		} else {
			left = binary(left, right, func(a, b complex128) complex128 { return a - b })
		}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return node{}, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.kind
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return node{}, err
		}
		if op == tokStar {
			left = binary(left, right, func(a, b complex128) complex128 { return a * b })
		} else {
			left = binary(left, right, func(a, b complex128) complex128 { return a / b })
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		neg := p.cur.kind == tokMinus
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return node{}, err
		}
		if !neg {
			return x, nil
		}
		return unary(x, func(a complex128) complex128 { return -a }), nil
	}
	return p.parsePower()
}

// parsePower binds tighter than unary minus on its left (-2^2 = -4) and
// accepts a signed exponent on its right (2^-1).
func (p *parser) parsePower() (node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return node{}, err
	}
	if p.cur.kind == tokCaret {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return node{}, err
		}
		return power(left, right), nil
	}
	return left, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return constant(v), nil
	case tokIdent:
		name, pos := p.cur.text, p.cur.pos
		p.next()
		if p.cur.kind == tokLParen {
			p.next()
			var args []node
			if p.cur.kind != tokRParen {
				for {
					ex, err := p.parseExpr()
					if err != nil {
						return node{}, err
					}
					args = append(args, ex)
					if p.cur.kind == tokComma {
						p.next()
						continue
					}
					break
				}
			}
			if p.cur.kind != tokRParen {
				return node{}, p.unexpected("')'")
			}
			p.next()
			return call(name, pos, args)
		}
		return ident(name, pos)
	case tokLParen:
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return node{}, err
		}
		if p.cur.kind != tokRParen {
			return node{}, p.unexpected("')'")
		}
		p.next()
		return ex, nil
	default:
		return node{}, p.unexpected("operand")
	}
}

func (p *parser) unexpected(want string) error {
	if p.cur.kind == tokEOF {
		return fmt.Errorf("%w: expected %s at end of input", ErrParse, want)
	}
	return fmt.Errorf("%w: expected %s, found %q at offset %d", ErrParse, want, p.cur.text, p.cur.pos)
}

func ident(name string, pos int) (node, error) {
	if name == varName {
		return variable, nil
	}
	if v, ok := constants[name]; ok {
		return constant(v), nil
	}
	if _, ok := builtins[name]; ok {
		return node{}, fmt.Errorf("%w: %s at offset %d needs arguments", ErrArity, name, pos)
	}
	return node{}, fmt.Errorf("%w: %q at offset %d", ErrUnknownIdent, name, pos)
}

func call(name string, pos int, args []node) (node, error) {
	b, ok := builtins[name]
	if !ok {
		return node{}, fmt.Errorf("%w: function %q at offset %d", ErrUnknownIdent, name, pos)
	}
	if len(args) != b.arity {
		return node{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, name, b.arity, len(args))
	}
	switch b.arity {
	case 1:
		return unary(args[0], b.fn1), nil
	default:
		return binary(args[0], args[1], b.fn2), nil
	}
}

func unary(x node, fn func(complex128) complex128) node {
	if x.konst {
		return constant(fn(x.val))
	}
	ev := x.eval
	return node{eval: func(z complex128) complex128 { return fn(ev(z)) }}
}

func binary(a, b node, fn func(x, y complex128) complex128) node {
	if a.konst && b.konst {
		return constant(fn(a.val, b.val))
	}
	ea, eb := a.eval, b.eval
	return node{eval: func(z complex128) complex128 { return fn(ea(z), eb(z)) }}
}

// power prefers exact repeated multiplication for small integer exponents;
// cmplx.Pow leaves rounding noise such as i^2 = -1+1.2e-16i.
func power(base, exp node) node {
	if exp.konst && imag(exp.val) == 0 {
		r := real(exp.val)
		if n := int(r); float64(n) == r && n >= -maxIntPow && n <= maxIntPow {
			return unary(base, func(a complex128) complex128 { return intPow(a, n) })
		}
	}
	return binary(base, exp, cmplx.Pow)
}

func intPow(a complex128, n int) complex128 {
	if n < 0 {
		return 1 / intPow(a, -n)
	}
	out := complex(1, 0)
	for n > 0 {
		if n&1 == 1 {
			out *= a
		}
		a *= a
		n >>= 1
	}
	return out
}
