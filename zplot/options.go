// SPDX-License-Identifier: MIT
// Package: zplane/zplot
//
// options.go - functional options shared by PlotZ and PlotComplexPoints.
//
// Contract:
//   • Constructors PANIC on programmer error (nil logger, empty Reim,
//     non-positive workers). Data errors (bad bounds, too few steps) are
//     returned by the plot functions instead.
//   • newConfig resolves defaults deterministically; last option wins.
//   • Options irrelevant to a call are ignored (WithReim on points, etc.).

package zplot

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/katalvlaran/zplane/cmap"
	"github.com/katalvlaran/zplane/figure"
	"github.com/katalvlaran/zplane/trace"
)

// Option customizes a plot call.
type Option func(*config)

type config struct {
	steps     int
	reim      Reim
	workers   int
	fig       *figure.Figure
	logger    *slog.Logger
	style     trace.Style     // caller overrides merged over the defaults
	axes      trace.AxisStyle // caller axis overrides
	transform cmap.Func       // points only
}

func newConfig(opts ...Option) config {
	cfg := config{
		steps:   cgrid.DefaultSteps,
		reim:    Both,
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// figure returns the target figure, creating one when none was supplied.
func (c config) figure() *figure.Figure {
	if c.fig != nil {
		return c.fig
	}

	return figure.New()
}

// WithSteps sets how many samples each probe line carries (default
// cgrid.DefaultSteps). Values below cgrid.MinSteps make PlotZ fail.
func WithSteps(n int) Option {
	return func(c *config) { c.steps = n }
}

// WithReim selects the probe-line families. Panics on an empty or unknown set.
func WithReim(r Reim) Option {
	if !r.valid() {
		panic("zplot: WithReim(invalid set)")
	}
	return func(c *config) { c.reim = r }
}

// WithFigure draws onto fig instead of a fresh figure. A nil fig is ignored.
func WithFigure(fig *figure.Figure) Option {
	return func(c *config) {
		if fig != nil {
			c.fig = fig
		}
	}
}

// WithWorkers maps up to n probe lines concurrently. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("zplot: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger routes debug events to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("zplot: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithStyle merges st over the default trace style. For PlotZ it applies
// to every probe-line trace.
func WithStyle(st trace.Style) Option {
	return func(c *config) { c.style = c.style.Merge(st) }
}

// WithLineStyle is WithStyle under the name grid callers look for.
func WithLineStyle(st trace.Style) Option { return WithStyle(st) }

// WithName sets the trace name.
func WithName(name string) Option {
	return func(c *config) { c.style.Name = name }
}

// WithColor sets the trace color (a color name, #rgb or #rrggbb).
func WithColor(color string) Option {
	return func(c *config) { c.style.Color = color }
}

// WithAttr passes a renderer attribute through to the trace unchanged.
// Panics on an empty key.
func WithAttr(key string, v any) Option {
	if key == "" {
		panic("zplot: WithAttr(empty key)")
	}
	return func(c *config) {
		c.style = c.style.Merge(trace.Style{Extra: map[string]any{key: v}})
	}
}

// WithAxesConfig overrides axis attributes over the call's defaults.
// Nested fields (minor gridlines) merge field by field.
func WithAxesConfig(a trace.AxisStyle) Option {
	return func(c *config) { c.axes = trace.ResolveAxisStyle(c.axes, a) }
}

// WithTransform maps points through fun before PlotComplexPoints draws them.
func WithTransform(fun cmap.Func) Option {
	return func(c *config) { c.transform = fun }
}
