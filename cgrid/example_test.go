package cgrid_test

import (
	"fmt"

	"github.com/katalvlaran/zplane/cgrid"
)

// ExampleBuildLines samples the five vertical lines re = -4..4 of the square
// [-4,4]², five points each.
func ExampleBuildLines() {
	b := cgrid.Bound{Low: -4, High: 4, Step: 2}
	lines, err := cgrid.BuildLines(b, b, 5, cgrid.ConstReal)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, l := range lines {
		fmt.Println(l.Fixed, l.Points)
	}
	// Output:
	// -4 [(-4-4i) (-4-2i) (-4+0i) (-4+2i) (-4+4i)]
	// -2 [(-2-4i) (-2-2i) (-2+0i) (-2+2i) (-2+4i)]
	// 0 [(0-4i) (0-2i) (0+0i) (0+2i) (0+4i)]
	// 2 [(2-4i) (2-2i) (2+0i) (2+2i) (2+4i)]
	// 4 [(4-4i) (4-2i) (4+0i) (4+2i) (4+4i)]
}

// ExampleFixedValues shows the closed-interval stepping rule for an
// unaligned step: values stop at the last one not exceeding High.
func ExampleFixedValues() {
	vals, _ := cgrid.FixedValues(cgrid.Bound{Low: -4, High: 4, Step: 3})
	fmt.Println(vals)
	// Output:
	// [-4 -1 2]
}
