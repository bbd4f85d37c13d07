// SPDX-License-Identifier: MIT
// Package: zplane/trace
//
// axis.go - typed axis configuration and its merge rule.
//
// Every field is a pointer: nil means "not set", so an override can name
// exactly the options it changes. Recognised options and their effect:
//
//	showgrid       draw major gridlines
//	gridwidth      major gridline width
//	gridcolor      major gridline color
//	zeroline       emphasise the line through 0
//	zerolinewidth  width of the zero line
//	zerolinecolor  color of the zero line
//	range          [min, max] displayed on the axis
//	scaleanchor    axis id ("x"/"y") this axis keeps a fixed ratio with
//	scaleratio     units of this axis per unit of the anchor
//	tick0          position of the first major tick
//	dtick          spacing of major ticks / gridlines
//	minor          nested block: showgrid, dtick, gridcolor, gridwidth

package trace

import "github.com/katalvlaran/zplane/cgrid"

// AxisStyle configures one plot axis.
type AxisStyle struct {
	ShowGrid      *bool       `json:"showgrid,omitempty" mapstructure:"showgrid"`
	GridWidth     *float64    `json:"gridwidth,omitempty" mapstructure:"gridwidth"`
	GridColor     *string     `json:"gridcolor,omitempty" mapstructure:"gridcolor"`
	ZeroLine      *bool       `json:"zeroline,omitempty" mapstructure:"zeroline"`
	ZeroLineWidth *float64    `json:"zerolinewidth,omitempty" mapstructure:"zerolinewidth"`
	ZeroLineColor *string     `json:"zerolinecolor,omitempty" mapstructure:"zerolinecolor"`
	Range         *[2]float64 `json:"range,omitempty" mapstructure:"range"`
	ScaleAnchor   *string     `json:"scaleanchor,omitempty" mapstructure:"scaleanchor"`
	ScaleRatio    *float64    `json:"scaleratio,omitempty" mapstructure:"scaleratio"`
	Tick0         *float64    `json:"tick0,omitempty" mapstructure:"tick0"`
	DTick         *float64    `json:"dtick,omitempty" mapstructure:"dtick"`
	Minor         *MinorStyle `json:"minor,omitempty" mapstructure:"minor"`
}

// MinorStyle configures minor ticks and gridlines.
type MinorStyle struct {
	ShowGrid  *bool    `json:"showgrid,omitempty" mapstructure:"showgrid"`
	DTick     *float64 `json:"dtick,omitempty" mapstructure:"dtick"`
	GridColor *string  `json:"gridcolor,omitempty" mapstructure:"gridcolor"`
	GridWidth *float64 `json:"gridwidth,omitempty" mapstructure:"gridwidth"`
}

// Ptr returns a pointer to v; shorthand for filling AxisStyle literals.
func Ptr[T any](v T) *T { return &v }

// ResolveAxisStyle overlays overrides on defaults. Set scalar options in
// overrides replace the default; the nested Minor block is merged option by
// option into the default's Minor. Neither argument is modified.
func ResolveAxisStyle(defaults, overrides AxisStyle) AxisStyle {
	out := defaults
	overlay(&out.ShowGrid, overrides.ShowGrid)
	overlay(&out.GridWidth, overrides.GridWidth)
	overlay(&out.GridColor, overrides.GridColor)
	overlay(&out.ZeroLine, overrides.ZeroLine)
	overlay(&out.ZeroLineWidth, overrides.ZeroLineWidth)
	overlay(&out.ZeroLineColor, overrides.ZeroLineColor)
	overlay(&out.Range, overrides.Range)
	overlay(&out.ScaleAnchor, overrides.ScaleAnchor)
	overlay(&out.ScaleRatio, overrides.ScaleRatio)
	overlay(&out.Tick0, overrides.Tick0)
	overlay(&out.DTick, overrides.DTick)
	out.Minor = resolveMinor(defaults.Minor, overrides.Minor)

	return out
}

// resolveMinor merges the nested block; the result is always a fresh value.
func resolveMinor(def, over *MinorStyle) *MinorStyle {
	if def == nil && over == nil {
		return nil
	}
	var m MinorStyle
	if def != nil {
		m = *def
	}
	if over != nil {
		overlay(&m.ShowGrid, over.ShowGrid)
		overlay(&m.DTick, over.DTick)
		overlay(&m.GridColor, over.GridColor)
		overlay(&m.GridWidth, over.GridWidth)
	}

	return &m
}

// overlay replaces *dst with src when src is set.
func overlay[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// Default option values for grid plots.
const (
	gridLineWidth = 1.0
	zeroLineWidth = 2.0
)

// Default option values for point plots.
const (
	pointTick0          = 0.0
	pointDTick          = 1.0
	pointScaleRatio     = 1.0
	pointAnchor         = "x"
	pointGridColor      = "black"
	pointMinorDTick     = 0.1
	pointMinorGridColor = "gray"
	pointMinorGridWidth = 0.1
)

// GridAxisDefaults returns the axis style of a grid plot along an axis
// bounded by b: gridlines and an emphasised zero line in color, display
// range [b.Low, b.High].
func GridAxisDefaults(b cgrid.Bound, color string) AxisStyle {
	return AxisStyle{
		ShowGrid:      Ptr(true),
		GridWidth:     Ptr(gridLineWidth),
		GridColor:     Ptr(color),
		ZeroLine:      Ptr(true),
		ZeroLineWidth: Ptr(zeroLineWidth),
		ZeroLineColor: Ptr(color),
		Range:         &[2]float64{b.Low, b.High},
	}
}

// PointAxisDefaults returns the axis style of a point plot: 1:1 aspect,
// integer-spaced major gridlines and tenth-spaced minor gridlines.
func PointAxisDefaults() AxisStyle {
	return AxisStyle{
		ScaleAnchor:   Ptr(pointAnchor),
		ScaleRatio:    Ptr(pointScaleRatio),
		Tick0:         Ptr(pointTick0),
		DTick:         Ptr(pointDTick),
		GridColor:     Ptr(pointGridColor),
		ZeroLineColor: Ptr(pointGridColor),
		Minor: &MinorStyle{
			DTick:     Ptr(pointMinorDTick),
			GridColor: Ptr(pointMinorGridColor),
			GridWidth: Ptr(pointMinorGridWidth),
		},
	}
}
