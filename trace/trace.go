// SPDX-License-Identifier: MIT
// Package: zplane/trace
//
// trace.go - Trace and MakeTrace.
//
// Contract:
//   • X[i] = real(points[i]), Y[i] = imag(points[i]); order preserved.
//   • Non-finite values are kept as-is (written as null in JSON).
//   • The trace owns fresh X/Y slices and a copy of style.Extra; neither the
//     input points nor the style map are retained.

package trace

import (
	"encoding/json"
	"maps"
)

// traceType is the renderer trace kind for 2-D polylines and point sets.
const traceType = "scatter"

// Trace is a named, styled polyline or point set ready for a renderer.
type Trace struct {
	Name  string
	Mode  string
	X     Series
	Y     Series
	Color string
	Width float64
	Extra map[string]any
}

// MakeTrace splits points into real/imaginary series and applies style.
// style.Name, when set, wins over label.
func MakeTrace(points []complex128, label string, style Style) Trace {
	x := make(Series, len(points))
	y := make(Series, len(points))
	for i, z := range points {
		x[i] = real(z)
		y[i] = imag(z)
	}

	name := label
	if style.Name != "" {
		name = style.Name
	}

	return Trace{
		Name:  name,
		Mode:  style.Mode,
		X:     x,
		Y:     y,
		Color: style.Color,
		Width: style.Width,
		Extra: maps.Clone(style.Extra),
	}
}

// Len returns the number of points in the trace.
func (t Trace) Len() int { return len(t.X) }

// Points rebuilds the complex samples from X and Y.
func (t Trace) Points() []complex128 {
	out := make([]complex128, len(t.X))
	for i := range t.X {
		out[i] = complex(t.X[i], t.Y[i])
	}

	return out
}

// MarshalJSON writes the chart-library scatter shape:
//
//	{"type":"scatter","name":..,"mode":..,"x":[..],"y":[..],"line":{..},"marker":{..}, <extra>}
//
// Extra keys are written last and may override anything except type, x and y.
func (t Trace) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 6+len(t.Extra))
	for k, v := range t.Extra {
		m[k] = v
	}
	m["type"] = traceType
	m["x"] = t.X
	m["y"] = t.Y
	if t.Name != "" {
		setDefault(m, "name", t.Name)
	}
	if t.Mode != "" {
		setDefault(m, "mode", t.Mode)
	}

	line := map[string]any{}
	if t.Color != "" {
		line["color"] = t.Color
	}
	if t.Width > 0 {
		line["width"] = t.Width
	}
	if len(line) > 0 {
		setDefault(m, "line", line)
	}
	if t.Color != "" {
		setDefault(m, "marker", map[string]any{"color": t.Color})
	}

	return json.Marshal(m)
}

// setDefault stores v under k unless Extra already supplied that key.
func setDefault(m map[string]any, k string, v any) {
	if _, ok := m[k]; !ok {
		m[k] = v
	}
}
