package cmap

import (
	"strconv"

	"github.com/katalvlaran/zplane/cgrid"
)

// imagSuffix marks labels of lines with a fixed imaginary part.
const imagSuffix = "i"

// Label formats the fixed coordinate of line for display: a plain real
// number for ConstReal lines ("-4", "0.5") and an imaginary quantity for
// ConstImag lines ("-4i", "0.5i"). Labels carry no meaning for computation.
func Label(line cgrid.ProbeLine) string {
	s := strconv.FormatFloat(line.Fixed, 'g', -1, 64)
	if line.Family == cgrid.ConstImag {
		return s + imagSuffix
	}

	return s
}
