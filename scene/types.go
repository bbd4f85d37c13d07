// SPDX-License-Identifier: MIT
// Package: zplane/scene
//
// types.go - the scene document.
//
// Field tags serve both YAML (files, request bodies) and JSON (yaml.v3
// reads JSON documents as well, so one decoder covers both).

package scene

import "github.com/katalvlaran/zplane/zplot"

// Default output size in points when a scene names none.
const (
	DefaultWidth  = 600.0
	DefaultHeight = 600.0
)

// Scene is one figure: an optional grid followed by point sets.
type Scene struct {
	Title string `yaml:"title" json:"title"`

	// Function maps the grid and transformed point sets (zexpr syntax).
	// Empty means a points-only scene.
	Function string `yaml:"function" json:"function"`

	// X and Y are [low, high] or [low, high, step]; step defaults to 1.
	X []float64 `yaml:"x" json:"x"`
	Y []float64 `yaml:"y" json:"y"`

	// Steps is the samples per probe line; 0 keeps the zplot default.
	Steps int `yaml:"steps" json:"steps"`
	// Reim selects the line families; zero means both.
	Reim zplot.Reim `yaml:"reim" json:"reim"`
	// Workers maps lines concurrently when > 1.
	Workers int `yaml:"workers" json:"workers"`

	// Axes overrides the grid axis style (trace.AxisStyle option names).
	Axes map[string]any `yaml:"axes" json:"axes"`

	Points []PointSet `yaml:"points" json:"points"`
	Output Output     `yaml:"output" json:"output"`
}

// PointSet is one point trace. Exactly one of Values and Segment is set.
type PointSet struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
	Mode  string `yaml:"mode" json:"mode"`
	// Transform maps the points through the scene function first.
	Transform bool `yaml:"transform" json:"transform"`
	// Values are complex literals: "1+2i", "-0.5i", "3".
	Values  []string `yaml:"values" json:"values"`
	Segment *Segment `yaml:"segment" json:"segment"`
	// Axes overrides the point axis style for this set.
	Axes map[string]any `yaml:"axes" json:"axes"`
}

// Segment is N evenly spaced points from From to To, both included.
type Segment struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
	N    int    `yaml:"n" json:"n"`
}

// Output names where and how large the rendered figure should be.
type Output struct {
	Path   string  `yaml:"path" json:"path"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Size returns the output size with defaults applied.
func (o Output) Size() (w, h float64) {
	w, h = o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}
