// SPDX-License-Identifier: MIT
// Package: zplane/cmap
//
// mapper.go - MapLine, MapLines, MapPoints.
//
// Contract:
//   • Output length and order equal input length and order.
//   • f is called exactly once per sample; its results are stored verbatim.
//   • Inputs are never mutated.
//
// Concurrency:
//   • MapLine/MapPoints are synchronous.
//   • MapLines with workers > 1 evaluates lines in parallel; f must then be
//     safe for concurrent use (pure functions are).

package cmap

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/zplane/cgrid"
)

// MapLine applies fun to every sample of line and labels the result.
// Complexity: O(n) calls to fun.
func MapLine(fun Func, line cgrid.ProbeLine) Mapped {
	return Mapped{
		Source: line,
		Points: apply(fun, line.Points),
		Label:  Label(line),
	}
}

// MapLines maps every line, preserving line order.
func MapLines(fun Func, lines []cgrid.ProbeLine, opts ...Option) []Mapped {
	cfg := newConfig(opts...)
	out := make([]Mapped, len(lines))

	// Sequential path: no goroutines for the common small case.
	if cfg.workers == 1 || len(lines) < 2 {
		for i, l := range lines {
			out[i] = MapLine(fun, l)
		}
		return out
	}

	// Parallel path: each goroutine owns out[i]; order is fixed by index.
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i := range lines {
		i := i
		g.Go(func() error {
			out[i] = MapLine(fun, lines[i])
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()

	return out
}

// MapPoints applies fun to pts elementwise. A nil fun passes the points
// through unchanged (as a copy). Empty input yields an empty, non-nil slice.
func MapPoints(fun Func, pts []complex128) []complex128 {
	if fun == nil {
		out := make([]complex128, len(pts))
		copy(out, pts)
		return out
	}

	return apply(fun, pts)
}

// apply is the elementwise loop shared by lines and points.
func apply(fun Func, pts []complex128) []complex128 {
	out := make([]complex128, len(pts))
	for i, z := range pts {
		out[i] = fun(z)
	}

	return out
}
