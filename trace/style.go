// SPDX-License-Identifier: MIT
// Package: zplane/trace
//
// style.go - per-trace style and its defaults.
//
// Resolution order (later wins):
//   1) family default (DefaultStyle / PointStyle),
//   2) caller overrides (Style.Merge).
// Zero values in an override mean "keep the default".

package trace

import (
	"maps"

	"github.com/katalvlaran/zplane/cgrid"
)

// Drawing modes understood by the renderer.
const (
	ModeLines        = "lines"
	ModeMarkers      = "markers"
	ModeLinesMarkers = "lines+markers"
)

// Family default colors: vertical (const-real) lines and horizontal
// (const-imag) lines must be told apart at a glance.
const (
	ConstRealColor = "orange"
	ConstImagColor = "blue"
)

// Style is the set of per-trace attributes a caller may override.
type Style struct {
	// Name replaces the coordinate-derived label when non-empty.
	Name string
	// Color of the line and markers (a color name or #rrggbb).
	Color string
	// Width of the line in renderer units; 0 keeps the renderer default.
	Width float64
	// Mode is one of ModeLines, ModeMarkers, ModeLinesMarkers.
	Mode string
	// Extra holds renderer options this package does not model. They are
	// copied verbatim into the trace.
	Extra map[string]any
}

// Merge returns s overridden by the non-zero fields of o. Extra maps are
// unioned with o's keys winning. Neither s nor o is modified.
func (s Style) Merge(o Style) Style {
	out := s
	if o.Name != "" {
		out.Name = o.Name
	}
	if o.Color != "" {
		out.Color = o.Color
	}
	if o.Width != 0 {
		out.Width = o.Width
	}
	if o.Mode != "" {
		out.Mode = o.Mode
	}
	if len(s.Extra) > 0 || len(o.Extra) > 0 {
		out.Extra = make(map[string]any, len(s.Extra)+len(o.Extra))
		maps.Copy(out.Extra, s.Extra)
		maps.Copy(out.Extra, o.Extra)
	}

	return out
}

// DefaultStyle returns the default style for a probe-line family.
func DefaultStyle(fam cgrid.Family) Style {
	st := Style{Mode: ModeLines}
	switch fam {
	case cgrid.ConstReal:
		st.Color = ConstRealColor
	case cgrid.ConstImag:
		st.Color = ConstImagColor
	}

	return st
}

// PointStyle returns the default style for a plotted point sequence.
func PointStyle() Style {
	return Style{Mode: ModeLinesMarkers}
}
