package cgrid

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBound reads "lo,hi,step" (or "lo,hi", which implies step 1) and
// validates the result. Whitespace around fields is ignored.
func ParseBound(s string) (Bound, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return Bound{}, fmt.Errorf("%s(%q): want lo,hi[,step]: %w", methodParseBound, s, ErrBadBoundSyntax)
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Bound{}, fmt.Errorf("%s(%q): field %d: %v: %w", methodParseBound, s, i, err, ErrBadBoundSyntax)
		}
		vals[i] = v
	}

	b := Bound{Low: vals[0], High: vals[1], Step: defaultParseStep}
	if len(vals) == 3 {
		b.Step = vals[2]
	}
	if err := b.Validate(); err != nil {
		return Bound{}, wrapMethod(methodParseBound, err)
	}

	return b, nil
}
