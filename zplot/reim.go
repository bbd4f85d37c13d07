// SPDX-License-Identifier: MIT
// Package: zplane/zplot
//
// reim.go - the line-family selector.
//
// Reim is a set, not an enum: Both is literally {Re, Im}. Callers test
// membership with Has, so adding a family never needs a new switch arm.

package zplot

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/zplane/cgrid"
)

// Reim selects which probe-line families a grid plot draws.
type Reim uint8

const (
	// Re selects lines parallel to the real axis (fixed imaginary part).
	Re Reim = 1 << iota
	// Im selects lines parallel to the imaginary axis (fixed real part).
	Im
	// Both selects both families.
	Both = Re | Im
)

// Has reports whether every family in o is selected in r.
func (r Reim) Has(o Reim) bool { return r&o == o && o != 0 }

// valid reports whether r is a non-empty subset of Both.
func (r Reim) valid() bool { return r != 0 && r&^Both == 0 }

// Families lists the selected families in drawing order: lines parallel to
// the imaginary axis first, then lines parallel to the real axis.
func (r Reim) Families() []cgrid.Family {
	var out []cgrid.Family
	if r.Has(Im) {
		out = append(out, cgrid.ConstReal)
	}
	if r.Has(Re) {
		out = append(out, cgrid.ConstImag)
	}

	return out
}

// String implements fmt.Stringer.
func (r Reim) String() string {
	switch r {
	case Re:
		return "re"
	case Im:
		return "im"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("reim(%d)", uint8(r))
	}
}

// ParseReim accepts "re"/"real", "im"/"imag" and "both" (case-insensitive).
func ParseReim(s string) (Reim, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "re", "real":
		return Re, nil
	case "im", "imag":
		return Im, nil
	case "both", "":
		return Both, nil
	default:
		return 0, fmt.Errorf("ParseReim(%q): %w", s, ErrBadReim)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Reim) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler, so scene files and
// flags can spell the selector.
func (r *Reim) UnmarshalText(b []byte) error {
	v, err := ParseReim(string(b))
	if err != nil {
		return err
	}
	*r = v

	return nil
}
