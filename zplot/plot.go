// SPDX-License-Identifier: MIT
// Package: zplane/zplot
//
// plot.go - PlotZ: sample, map, assemble.
//
// Steps:
//   1) Validate bounds and steps; nothing touches the figure on failure.
//   2) Build every selected family (const-real lines first).
//   3) Map the lines through f, optionally in parallel, order preserved.
//   4) One trace per line, then the axis defaults for the grid.

package zplot

import (
	"fmt"
	"time"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/katalvlaran/zplane/cmap"
	"github.com/katalvlaran/zplane/figure"
	"github.com/katalvlaran/zplane/trace"
)

const (
	methodPlotZ  = "PlotZ"
	methodPoints = "PlotComplexPoints"
)

// PlotZ draws the image of the grid spanned by x and y under fun.
//
// Each fixed coordinate yields one probe line swept across the other bound
// with the configured number of steps. The x axis takes the const-real
// color, the y axis the const-imag color, and both get ranges equal to the
// bounds. Errors wrap cgrid.ErrInvalidBounds, cgrid.ErrTooManyLines,
// cgrid.ErrTooManySamples or cgrid.ErrInsufficientResolution; the figure is
// untouched in that case.
func PlotZ(fun cmap.Func, x, y cgrid.Bound, opts ...Option) (*figure.Figure, error) {
	cfg := newConfig(opts...)
	if fun == nil {
		return nil, fmt.Errorf("%s: %w", methodPlotZ, ErrNilFunc)
	}
	if _, err := cgrid.GridSamples(x, y, cfg.steps, cfg.reim.Families()...); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPlotZ, err)
	}
	if err := checkColor(cfg.style.Color); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPlotZ, err)
	}

	start := time.Now()
	var lines []cgrid.ProbeLine
	for _, fam := range cfg.reim.Families() {
		ls, err := cgrid.BuildLines(x, y, cfg.steps, fam)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPlotZ, err)
		}
		lines = append(lines, ls...)
	}

	mapped := cmap.MapLines(fun, lines, cmap.WithWorkers(cfg.workers))

	fig := cfg.figure()
	for _, m := range mapped {
		st := trace.DefaultStyle(m.Source.Family).Merge(cfg.style)
		fig.AddTrace(trace.MakeTrace(m.Points, m.Label, st))
	}
	fig.UpdateXAxes(trace.ResolveAxisStyle(trace.GridAxisDefaults(x, trace.ConstRealColor), cfg.axes))
	fig.UpdateYAxes(trace.ResolveAxisStyle(trace.GridAxisDefaults(y, trace.ConstImagColor), cfg.axes))

	cfg.logger.Debug("grid plotted",
		"reim", cfg.reim.String(),
		"x", x.String(),
		"y", y.String(),
		"steps", cfg.steps,
		"traces", len(mapped),
		"elapsed", time.Since(start),
	)

	return fig, nil
}

// PlotComplexPoints draws points as one line-and-marker trace, mapped
// through WithTransform first when given. Both axes get a 1:1 aspect,
// unit major gridlines and 0.1 minor gridlines unless overridden with
// WithAxesConfig. The only error is an unparsable WithColor value.
func PlotComplexPoints(points []complex128, opts ...Option) (*figure.Figure, error) {
	cfg := newConfig(opts...)
	if err := checkColor(cfg.style.Color); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPoints, err)
	}

	pts := points
	if cfg.transform != nil {
		pts = cmap.MapPoints(cfg.transform, points)
	}

	st := trace.PointStyle().Merge(cfg.style)
	fig := cfg.figure()
	fig.AddTrace(trace.MakeTrace(pts, st.Name, st))

	axes := trace.ResolveAxisStyle(trace.PointAxisDefaults(), cfg.axes)
	fig.UpdateXAxes(axes)
	fig.UpdateYAxes(axes)

	cfg.logger.Debug("points plotted",
		"name", st.Name,
		"points", len(pts),
		"transformed", cfg.transform != nil,
	)

	return fig, nil
}

// checkColor rejects colors the renderer could not draw. Empty means default.
func checkColor(s string) error {
	if s == "" {
		return nil
	}
	_, err := figure.ParseColor(s)

	return err
}
