// Package zplot draws how a complex function distorts a rectangular grid
// and discrete point sets.
//
// 🚀 Pipeline:
//
//	bounds ─▶ cgrid.BuildLines ─▶ cmap.MapLines ─▶ trace.MakeTrace ─▶ figure.Figure
//	points ───────────────────▶ cmap.MapPoints ─▶ trace.MakeTrace ─▶ figure.Figure
//
// ✨ Entry points:
//   - PlotZ(f, x, y, opts...): one trace per probe line of the selected
//     families, colored by family, labeled by the fixed coordinate; axes
//     get gridlines, emphasised zero lines and ranges matching the bounds.
//   - PlotComplexPoints(points, opts...): one scatter trace; axes get a 1:1
//     aspect, unit major gridlines and 0.1 minor gridlines, overridable
//     option by option with WithAxesConfig.
//
// Both accept WithFigure to draw onto an existing figure, so a mapped grid
// and several point sets can share one canvas. The caller owns the figure.
//
// ⚙️ Usage:
//
//	b := cgrid.Bound{Low: -4, High: 4, Step: 2}
//	fig, err := zplot.PlotZ(cmplx.Sin, b, b, zplot.WithReim(zplot.Im))
//	if err != nil { ... }
//	if _, err := zplot.PlotComplexPoints(square, zplot.WithFigure(fig), zplot.WithName("top"), zplot.WithColor("red")); err != nil { ... }
//	_ = fig.Save("sin.png", 600, 600)
//
// Errors: validation failures (cgrid.ErrInvalidBounds,
// cgrid.ErrInsufficientResolution) abort before anything is added to the
// figure. Values f returns are never checked; NaN/Inf become gaps.
package zplot
