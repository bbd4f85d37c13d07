package zexpr

import "errors"

var (
	// ErrParse reports malformed expression syntax.
	ErrParse = errors.New("zexpr: parse error")

	// ErrUnknownIdent reports a name that is neither z, a constant nor a builtin.
	ErrUnknownIdent = errors.New("zexpr: unknown identifier")

	// ErrArity reports a builtin called with the wrong number of arguments.
	ErrArity = errors.New("zexpr: wrong number of arguments")
)
