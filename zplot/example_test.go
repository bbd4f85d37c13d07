package zplot_test

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/katalvlaran/zplane/zplot"
)

// ExamplePlotZ maps the vertical lines of a coarse grid through sin(z).
func ExamplePlotZ() {
	b := cgrid.Bound{Low: -4, High: 4, Step: 2}
	fig, err := zplot.PlotZ(cmplx.Sin, b, b, zplot.WithReim(zplot.Im), zplot.WithSteps(5))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, tr := range fig.Traces() {
		fmt.Printf("%s:%d ", tr.Name, tr.Len())
	}
	fmt.Println()
	// Output: -4:5 -2:5 0:5 2:5 4:5
}

// ExamplePlotComplexPoints draws a segment and its image on one figure.
func ExamplePlotComplexPoints() {
	top := []complex128{1 + 2i, 1.5 + 2i, 2 + 2i}
	fig, _ := zplot.PlotComplexPoints(top, zplot.WithName("top"), zplot.WithColor("red"))
	fig, _ = zplot.PlotComplexPoints(top, zplot.WithFigure(fig), zplot.WithName("top_t"), zplot.WithTransform(cmplx.Sqrt))
	for _, tr := range fig.Traces() {
		fmt.Println(tr.Name, tr.Len())
	}
	// Output:
	// top 3
	// top_t 3
}
