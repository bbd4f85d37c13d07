// SPDX-License-Identifier: MIT
// Package: zplane/trace
//
// errors.go - sentinel errors for axis-style decoding.

package trace

import "errors"

var (
	// ErrUnknownAxisKey is returned when an axis override map names an
	// option AxisStyle does not recognise.
	ErrUnknownAxisKey = errors.New("trace: unknown axis option")

	// ErrAxisDecode is returned when an axis override value has the wrong type.
	ErrAxisDecode = errors.New("trace: cannot decode axis option")
)
