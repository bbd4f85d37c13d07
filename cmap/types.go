// SPDX-License-Identifier: MIT
// Package: zplane/cmap
//
// types.go - the function type and the mapped-line record.

package cmap

import "github.com/katalvlaran/zplane/cgrid"

// Func is a total function on complex values, applied elementwise.
type Func func(complex128) complex128

// Identity returns its argument. Useful to plot the undistorted grid.
func Identity(z complex128) complex128 { return z }

// Mapped is the image of one probe line under a Func.
type Mapped struct {
	// Source is the unmapped line (shared, not copied).
	Source cgrid.ProbeLine
	// Points holds f(Source.Points[i]) in the same order.
	Points []complex128
	// Label identifies the line for display, e.g. "-4" or "2i".
	Label string
}
