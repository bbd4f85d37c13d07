// Package zplane shows how complex functions distort the plane.
//
// 🚀 What is zplane?
//
//	A small toolkit that samples lines of constant real and imaginary part
//	over a rectangle, pushes them through f(z) and draws what comes out:
//		• Sampling: evenly spaced probe lines over closed bounds
//		• Mapping: order-preserving, optionally parallel evaluation of f
//		• Traces: named, styled polylines with a renderer-neutral layout
//		• Figures: JSON, interactive HTML, PNG/SVG/PDF via gonum/plot
//		• Expressions: "sin(z) + 1/z" compiled into Go functions
//		• Scenes: YAML files describing a grid and point sets
//
// ✨ Packages
//
//	cgrid/   - Bound, ProbeLine, BuildLines: the sampling grid
//	cmap/    - MapLine, MapLines, MapPoints: applying f
//	trace/   - Trace, Style, AxisStyle and their merge rules
//	figure/  - the accumulating figure and its encoders
//	zplot/   - PlotZ and PlotComplexPoints, the two entry points
//	zexpr/   - expression compiler
//	scene/   - YAML/JSON scene documents
//	cmd/zplot - CLI and HTTP server
//
// Quick start:
//
//	b := cgrid.Bound{Low: -4, High: 4, Step: 1}
//	fig, err := zplot.PlotZ(cmplx.Sin, b, b, zplot.WithReim(zplot.Im))
//	if err != nil { ... }
//	_ = fig.Save("sin.svg", 600, 600)
package zplane
