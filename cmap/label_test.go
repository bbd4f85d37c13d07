package cmap_test

import (
	"testing"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/katalvlaran/zplane/cmap"
)

// TestLabel checks the display label of both families.
func TestLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line cgrid.ProbeLine
		want string
	}{
		{cgrid.ProbeLine{Family: cgrid.ConstReal, Fixed: -4}, "-4"},
		{cgrid.ProbeLine{Family: cgrid.ConstReal, Fixed: 0.5}, "0.5"},
		{cgrid.ProbeLine{Family: cgrid.ConstImag, Fixed: -4}, "-4i"},
		{cgrid.ProbeLine{Family: cgrid.ConstImag, Fixed: 0}, "0i"},
		{cgrid.ProbeLine{Family: cgrid.ConstImag, Fixed: 2.25}, "2.25i"},
	}
	for _, c := range cases {
		if got := cmap.Label(c.line); got != c.want {
			t.Errorf("Label(%v %g): expected %q, got %q", c.line.Family, c.line.Fixed, c.want, got)
		}
	}
}
