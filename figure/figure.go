// SPDX-License-Identifier: MIT
// Package: zplane/figure
//
// figure.go - the Figure builder.

package figure

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/zplane/trace"
)

// Figure accumulates traces and axis configuration.
type Figure struct {
	title  string
	traces []trace.Trace
	xaxis  trace.AxisStyle
	yaxis  trace.AxisStyle
}

// New returns an empty figure.
func New() *Figure {
	return &Figure{}
}

// SetTitle sets the figure title.
func (f *Figure) SetTitle(title string) { f.title = title }

// Title returns the figure title.
func (f *Figure) Title() string { return f.title }

// AddTrace appends t; traces are drawn in insertion order.
func (f *Figure) AddTrace(t trace.Trace) {
	f.traces = append(f.traces, t)
}

// UpdateXAxes merges a into the x-axis style using trace.ResolveAxisStyle.
func (f *Figure) UpdateXAxes(a trace.AxisStyle) {
	f.xaxis = trace.ResolveAxisStyle(f.xaxis, a)
}

// UpdateYAxes merges a into the y-axis style using trace.ResolveAxisStyle.
func (f *Figure) UpdateYAxes(a trace.AxisStyle) {
	f.yaxis = trace.ResolveAxisStyle(f.yaxis, a)
}

// Traces returns a copy of the trace list.
func (f *Figure) Traces() []trace.Trace {
	out := make([]trace.Trace, len(f.traces))
	copy(out, f.traces)
	return out
}

// Len returns the number of traces.
func (f *Figure) Len() int { return len(f.traces) }

// XAxis returns the resolved x-axis style.
func (f *Figure) XAxis() trace.AxisStyle { return f.xaxis }

// YAxis returns the resolved y-axis style.
func (f *Figure) YAxis() trace.AxisStyle { return f.yaxis }

// figureJSON is the wire shape of a figure.
type figureJSON struct {
	Data   []trace.Trace `json:"data"`
	Layout layoutJSON    `json:"layout"`
}

type layoutJSON struct {
	Title *titleJSON      `json:"title,omitempty"`
	XAxis trace.AxisStyle `json:"xaxis"`
	YAxis trace.AxisStyle `json:"yaxis"`
}

type titleJSON struct {
	Text string `json:"text"`
}

// MarshalJSON implements json.Marshaler.
func (f *Figure) MarshalJSON() ([]byte, error) {
	doc := figureJSON{
		Data:   f.traces,
		Layout: layoutJSON{XAxis: f.xaxis, YAxis: f.yaxis},
	}
	if doc.Data == nil {
		doc.Data = []trace.Trace{}
	}
	if f.title != "" {
		doc.Layout.Title = &titleJSON{Text: f.title}
	}

	return json.Marshal(doc)
}

// WriteJSON writes the figure JSON to w.
func (f *Figure) WriteJSON(w io.Writer) error {
	raw, err := f.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
