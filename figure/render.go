// SPDX-License-Identifier: MIT
// Package: zplane/figure
//
// render.go - static image export through gonum.org/v1/plot.
//
// Contract:
//   • Traces are drawn in insertion order; each is split into runs of
//     finite samples so NaN/±Inf show up as gaps rather than errors.
//   • Axis ranges come from AxisStyle.Range when set, else from the data.
//   • tick0/dtick drive major ticks, minor.dtick minor ticks; gridlines
//     and the zero line follow the resolved axis styles.
//   • scaleanchor (either axis) expands the narrower range so one unit has
//     the same length on both axes.
//   • Width and height are in points (1/72 inch).

package figure

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/zplane/trace"
)

// Render defaults (points unless noted).
const (
	defaultLineWidth   = 1.5
	defaultMarkerSize  = 2.5
	defaultGridWidth   = 0.5
	defaultZeroWidth   = 1.0
	defaultScaleRatio  = 1.0
	maxTicksPerAxis    = 400
	tickLabelPrecision = 6
	axisLabelX         = "Re"
	axisLabelY         = "Im"
)

// Formats lists the image formats Render accepts.
var Formats = []string{"png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff"}

var (
	defaultGridColor = color.Gray{Y: 0xd0}
	defaultZeroColor = color.Gray{Y: 0x40}
)

// Render draws the figure as an image of the given format to w.
func (f *Figure) Render(w io.Writer, format string, width, height float64) error {
	format = strings.ToLower(format)
	if !knownFormat(format) {
		return fmt.Errorf("Render(%q): %w", format, ErrUnknownFormat)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("Render: %gx%g: %w", width, height, ErrBadSize)
	}
	if len(f.traces) == 0 {
		return fmt.Errorf("Render: %w", ErrEmptyFigure)
	}

	p, err := f.buildPlot(width, height)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Points(width), vg.Points(height), format)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// buildPlot translates the figure into a gonum plot.
func (f *Figure) buildPlot(width, height float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.title
	p.X.Label.Text = axisLabelX
	p.Y.Label.Text = axisLabelY
	p.Legend.Top = true

	// 1) Gridlines go first so traces paint over them.
	grid, err := newGridLines(f.xaxis, f.yaxis)
	if err != nil {
		return nil, err
	}
	p.Add(grid)

	// 2) Traces.
	for i, t := range f.traces {
		if err := addTrace(p, i, t); err != nil {
			return nil, fmt.Errorf("trace %d (%s): %w", i, t.Name, err)
		}
	}

	// 3) Ranges, aspect and tick markers.
	applyRange(&p.X, f.xaxis)
	applyRange(&p.Y, f.yaxis)
	if anchored(f.xaxis, "y") || anchored(f.yaxis, "x") {
		ratio := defaultScaleRatio
		if r := scaleRatio(f.yaxis, f.xaxis); r > 0 {
			ratio = r
		}
		equalAspect(p, width, height, ratio)
	}
	p.X.Tick.Marker = tickerFor(f.xaxis)
	p.Y.Tick.Marker = tickerFor(f.yaxis)

	return p, nil
}

// addTrace adds the line and/or marker plotters for one trace.
func addTrace(p *plot.Plot, idx int, t trace.Trace) error {
	var col color.Color = plotutil.Color(idx)
	if t.Color != "" {
		c, err := ParseColor(t.Color)
		if err != nil {
			return err
		}
		col = c
	}
	width := defaultLineWidth
	if t.Width > 0 {
		width = t.Width
	}

	mode := t.Mode
	if mode == "" {
		mode = trace.ModeLinesMarkers
	}
	var thumb plot.Thumbnailer

	if strings.Contains(mode, trace.ModeLines) {
		for _, run := range finiteRuns(t) {
			if len(run) < 2 {
				continue
			}
			l, err := plotter.NewLine(run)
			if err != nil {
				return err
			}
			l.LineStyle.Color = col
			l.LineStyle.Width = vg.Points(width)
			p.Add(l)
			if thumb == nil {
				thumb = l
			}
		}
	}
	if strings.Contains(mode, trace.ModeMarkers) {
		var pts plotter.XYs
		for _, run := range finiteRuns(t) {
			pts = append(pts, run...)
		}
		if len(pts) > 0 {
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return err
			}
			s.GlyphStyle.Color = col
			s.GlyphStyle.Radius = vg.Points(defaultMarkerSize)
			s.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(s)
			if thumb == nil {
				thumb = s
			}
		}
	}
	if thumb != nil && t.Name != "" {
		p.Legend.Add(t.Name, thumb)
	}

	return nil
}

// finiteRuns splits a trace at samples where x or y is NaN or ±Inf.
func finiteRuns(t trace.Trace) []plotter.XYs {
	var (
		runs []plotter.XYs
		cur  plotter.XYs
	)
	for i := range t.X {
		if t.X.Finite(i) && t.Y.Finite(i) {
			cur = append(cur, plotter.XY{X: t.X[i], Y: t.Y[i]})
			continue
		}
		if len(cur) > 0 {
			runs = append(runs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}

	return runs
}

// applyRange pins an axis to AxisStyle.Range when set.
func applyRange(ax *plot.Axis, a trace.AxisStyle) {
	if a.Range == nil {
		return
	}
	ax.Min, ax.Max = a.Range[0], a.Range[1]
}

func anchored(a trace.AxisStyle, to string) bool {
	return a.ScaleAnchor != nil && *a.ScaleAnchor == to
}

// scaleRatio returns the first set ScaleRatio among axes, or 0.
func scaleRatio(axes ...trace.AxisStyle) float64 {
	for _, a := range axes {
		if a.ScaleRatio != nil {
			return *a.ScaleRatio
		}
	}

	return 0
}

// equalAspect widens the narrower axis, around its centre, so that
// xSpan/width == ySpan·ratio/height.
func equalAspect(p *plot.Plot, width, height, ratio float64) {
	xSpan := p.X.Max - p.X.Min
	ySpan := p.Y.Max - p.Y.Min
	if xSpan <= 0 || ySpan <= 0 {
		return
	}
	xPer := xSpan / width
	yPer := ySpan * ratio / height
	if xPer < yPer {
		grow := (yPer*width - xSpan) / 2
		p.X.Min -= grow
		p.X.Max += grow
		return
	}
	grow := (xPer*height/ratio - ySpan) / 2
	p.Y.Min -= grow
	p.Y.Max += grow
}

// tickerFor picks a tick marker honouring tick0/dtick/minor.dtick.
func tickerFor(a trace.AxisStyle) plot.Ticker {
	if a.DTick == nil || *a.DTick <= 0 {
		return plot.DefaultTicks{}
	}
	st := stepTicks{dtick: *a.DTick}
	if a.Tick0 != nil {
		st.tick0 = *a.Tick0
	}
	if a.Minor != nil && a.Minor.DTick != nil && *a.Minor.DTick > 0 {
		st.minor = *a.Minor.DTick
	}

	return st
}

// stepTicks places major ticks at tick0 + k·dtick and unlabeled minor ticks
// at tick0 + k·minor. Falls back to the default ticker when the spacing
// would produce an unreadable number of ticks or drops below the float
// resolution of the axis range.
type stepTicks struct {
	tick0, dtick, minor float64
}

// Ticks implements plot.Ticker.
func (s stepTicks) Ticks(min, max float64) []plot.Tick {
	major, ok := stepValues(s.tick0, s.dtick, min, max)
	if !ok {
		return plot.DefaultTicks{}.Ticks(min, max)
	}

	ticks := make([]plot.Tick, 0, len(major))
	for _, v := range major {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', tickLabelPrecision, 64)})
	}
	if s.minor <= 0 {
		return ticks
	}

	minor, ok := stepValues(s.tick0, s.minor, min, max)
	if !ok {
		return ticks
	}
	for _, v := range minor {
		// skip positions already carrying a major tick
		if r := math.Mod(math.Abs(v-s.tick0), s.dtick); r < 1e-9*s.dtick || s.dtick-r < 1e-9*s.dtick {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v})
	}

	return ticks
}

// stepValues lists tick0 + k·step inside [min, max]. It reports false when
// the count exceeds maxTicksPerAxis or consecutive values stop increasing.
func stepValues(tick0, step, min, max float64) ([]float64, bool) {
	first := math.Ceil((min - tick0) / step)
	last := math.Floor((max - tick0) / step)
	if math.IsNaN(first) || math.IsNaN(last) || math.IsInf(first, 0) || math.IsInf(last, 0) {
		return nil, false
	}
	if last < first {
		return nil, true
	}
	if last-first >= maxTicksPerAxis {
		return nil, false
	}

	n := int(last-first) + 1
	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := tick0 + (first+float64(i))*step
		if i > 0 && v <= values[i-1] {
			return nil, false
		}
		values = append(values, v)
	}

	return values, true
}

func knownFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}

	return false
}
