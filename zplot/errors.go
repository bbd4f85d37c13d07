package zplot

import "errors"

var (
	// ErrNilFunc is returned by PlotZ when no function is supplied.
	ErrNilFunc = errors.New("zplot: function is nil")

	// ErrBadReim is returned for an unrecognised family selector.
	ErrBadReim = errors.New("zplot: unknown re/im selector")
)
