// SPDX-License-Identifier: MIT
// Package: zplane/scene
//
// build.go - Scene → figure.
//
// Order:
//   1) everything fallible (function, bounds, axes, point literals) is
//      resolved before the first trace is drawn;
//   2) the grid, if any;
//   3) point sets in document order, sharing the figure.

package scene

import (
	"fmt"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/katalvlaran/zplane/cmap"
	"github.com/katalvlaran/zplane/figure"
	"github.com/katalvlaran/zplane/trace"
	"github.com/katalvlaran/zplane/zexpr"
	"github.com/katalvlaran/zplane/zplot"
)

const methodBuild = "Build"

// PointsFamily is the TraceCounts key for point-set traces.
const PointsFamily = "points"

type pointJob struct {
	pts  []complex128
	opts []zplot.Option
}

// Build draws the scene onto a fresh figure. Extra options (a logger,
// typically) apply to every zplot call.
func (s *Scene) Build(extra ...zplot.Option) (*figure.Figure, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var fun cmap.Func
	if s.Function != "" {
		f, err := zexpr.Compile(s.Function)
		if err != nil {
			return nil, fmt.Errorf("%s: function: %w", methodBuild, err)
		}
		fun = f
	}

	x, y, hasGrid, err := s.bounds()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	gridAxes, err := trace.DecodeAxisStyle(s.Axes)
	if err != nil {
		return nil, fmt.Errorf("%s: axes: %w", methodBuild, err)
	}

	jobs := make([]pointJob, len(s.Points))
	for i, ps := range s.Points {
		pts, err := ps.points()
		if err != nil {
			return nil, fmt.Errorf("%s: points[%d]: %w", methodBuild, i, err)
		}
		axes, err := trace.DecodeAxisStyle(ps.Axes)
		if err != nil {
			return nil, fmt.Errorf("%s: points[%d] axes: %w", methodBuild, i, err)
		}
		opts := []zplot.Option{
			zplot.WithName(ps.Name),
			zplot.WithColor(ps.Color),
			zplot.WithStyle(trace.Style{Mode: ps.Mode}),
			zplot.WithAxesConfig(axes),
		}
		if ps.Transform {
			opts = append(opts, zplot.WithTransform(fun))
		}
		jobs[i] = pointJob{pts: pts, opts: opts}
	}

	fig := figure.New()
	fig.SetTitle(s.Title)

	if hasGrid {
		if _, err := zplot.PlotZ(fun, x, y, s.gridOptions(fig, gridAxes, extra)...); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	for i, j := range jobs {
		opts := append([]zplot.Option{zplot.WithFigure(fig)}, j.opts...)
		opts = append(opts, extra...)
		if _, err := zplot.PlotComplexPoints(j.pts, opts...); err != nil {
			return nil, fmt.Errorf("%s: points[%d]: %w", methodBuild, i, err)
		}
	}

	return fig, nil
}

func (s *Scene) gridOptions(fig *figure.Figure, axes trace.AxisStyle, extra []zplot.Option) []zplot.Option {
	opts := []zplot.Option{zplot.WithFigure(fig), zplot.WithAxesConfig(axes)}
	if s.Steps > 0 {
		opts = append(opts, zplot.WithSteps(s.Steps))
	}
	if s.Reim != 0 {
		opts = append(opts, zplot.WithReim(s.Reim))
	}
	if s.Workers > 1 {
		opts = append(opts, zplot.WithWorkers(s.Workers))
	}
	return append(opts, extra...)
}

// bounds returns the grid bounds, or ok=false for a points-only scene.
func (s *Scene) bounds() (x, y cgrid.Bound, ok bool, err error) {
	if s.Function == "" {
		return x, y, false, nil
	}
	if x, err = toBound("x", s.X); err != nil {
		return x, y, false, err
	}
	if y, err = toBound("y", s.Y); err != nil {
		return x, y, false, err
	}
	return x, y, true, nil
}

// TraceCounts reports how many traces Build draws per family: the probe
// line families by cgrid.Family name, plus "points" for point sets.
func (s *Scene) TraceCounts() (map[string]int, error) {
	counts := map[string]int{PointsFamily: len(s.Points)}
	x, y, ok, err := s.bounds()
	if err != nil || !ok {
		return counts, err
	}

	reim := s.Reim
	if reim == 0 {
		reim = zplot.Both
	}
	for _, fam := range reim.Families() {
		b := y
		if fam == cgrid.ConstReal {
			b = x
		}
		vals, err := cgrid.FixedValues(b)
		if err != nil {
			return counts, err
		}
		counts[fam.String()] = len(vals)
	}
	return counts, nil
}
