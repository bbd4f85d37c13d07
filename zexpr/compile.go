package zexpr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/zplane/cmap"
)

const methodCompile = "Compile"

// Compile parses src into a function of z. Errors wrap ErrParse,
// ErrUnknownIdent or ErrArity and name the offending offset.
func Compile(src string) (cmap.Func, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%s: %w: empty expression", methodCompile, ErrParse)
	}

	p := &parser{l: lexer{s: src}}
	p.next()
	n, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", methodCompile, src, err)
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("%s(%q): %w", methodCompile, src, p.unexpected("end of input"))
	}

	return n.eval, nil
}

// MustCompile is Compile for expressions known at build time. Panics on error.
func MustCompile(src string) cmap.Func {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}
