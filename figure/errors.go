// SPDX-License-Identifier: MIT
// Package: zplane/figure
//
// errors.go - sentinel errors for export.

package figure

import "errors"

var (
	// ErrUnknownFormat is returned for an export format or file extension
	// the renderer does not support.
	ErrUnknownFormat = errors.New("figure: unknown output format")

	// ErrEmptyFigure is returned when rendering an image of a figure with
	// no traces; there is nothing to derive axis ranges from.
	ErrEmptyFigure = errors.New("figure: no traces to render")

	// ErrBadColor is returned for a color that is neither a known name nor #rrggbb.
	ErrBadColor = errors.New("figure: unrecognised color")

	// ErrBadSize is returned for a non-positive image width or height.
	ErrBadSize = errors.New("figure: invalid image size")
)
