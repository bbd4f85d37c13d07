package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/zplane/trace"
)

// gridLines is a plot.Plotter drawing major/minor gridlines and zero lines
// from resolved axis styles. Vertical lines follow the x axis ticks,
// horizontal lines the y axis ticks.
type gridLines struct {
	x, y axisLines
}

// axisLines holds the drawable line styles of one axis; a nil Color means
// the line kind is off.
type axisLines struct {
	major draw.LineStyle
	minor draw.LineStyle
	zero  draw.LineStyle
}

func newGridLines(xa, ya trace.AxisStyle) (*gridLines, error) {
	x, err := linesFor(xa)
	if err != nil {
		return nil, err
	}
	y, err := linesFor(ya)
	if err != nil {
		return nil, err
	}

	return &gridLines{x: x, y: y}, nil
}

// linesFor resolves one axis. Unset showgrid/zeroline default to on.
func linesFor(a trace.AxisStyle) (axisLines, error) {
	var (
		out axisLines
		err error
	)

	if a.ShowGrid == nil || *a.ShowGrid {
		out.major, err = lineStyle(a.GridColor, a.GridWidth, defaultGridColor, defaultGridWidth)
		if err != nil {
			return out, err
		}
	}
	if m := a.Minor; m != nil && (m.ShowGrid == nil || *m.ShowGrid) && (m.GridColor != nil || m.DTick != nil) {
		out.minor, err = lineStyle(m.GridColor, m.GridWidth, defaultGridColor, defaultGridWidth/2)
		if err != nil {
			return out, err
		}
	}
	if a.ZeroLine == nil || *a.ZeroLine {
		out.zero, err = lineStyle(a.ZeroLineColor, a.ZeroLineWidth, defaultZeroColor, defaultZeroWidth)
		if err != nil {
			return out, err
		}
	}

	return out, nil
}

func lineStyle(name *string, width *float64, defColor color.Color, defWidth float64) (draw.LineStyle, error) {
	st := draw.LineStyle{Color: defColor, Width: vg.Points(defWidth)}
	if name != nil {
		c, err := ParseColor(*name)
		if err != nil {
			return st, err
		}
		st.Color = c
	}
	if width != nil && *width > 0 {
		st.Width = vg.Points(*width)
	}

	return st, nil
}

// Plot implements plot.Plotter.
func (g *gridLines) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	// Vertical lines at x ticks.
	for _, tk := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
		st := g.x.major
		if tk.IsMinor() {
			st = g.x.minor
		}
		if st.Color == nil {
			continue
		}
		x := trX(tk.Value)
		c.StrokeLine2(st, x, c.Min.Y, x, c.Max.Y)
	}
	// Horizontal lines at y ticks.
	for _, tk := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
		st := g.y.major
		if tk.IsMinor() {
			st = g.y.minor
		}
		if st.Color == nil {
			continue
		}
		y := trY(tk.Value)
		c.StrokeLine2(st, c.Min.X, y, c.Max.X, y)
	}

	// Zero lines on top of the grid.
	if g.x.zero.Color != nil && plt.X.Min <= 0 && 0 <= plt.X.Max {
		x := trX(0)
		c.StrokeLine2(g.x.zero, x, c.Min.Y, x, c.Max.Y)
	}
	if g.y.zero.Color != nil && plt.Y.Min <= 0 && 0 <= plt.Y.Max {
		y := trY(0)
		c.StrokeLine2(g.y.zero, c.Min.X, y, c.Max.X, y)
	}
}
