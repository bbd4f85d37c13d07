package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/katalvlaran/zplane/zplot"
)

// defaultBoundStep is the fixed-coordinate step when a bound has two entries.
const defaultBoundStep = 1.0

// MaxSteps caps per-line samples and segment lengths in a scene.
const MaxSteps = 100000

// Validate checks the document's shape. It does not compile the function
// or check bound ordering; Build reports those with their own sentinels.
func (s *Scene) Validate() error {
	hasGrid := len(s.X) > 0 || len(s.Y) > 0
	if hasGrid && s.Function == "" {
		return fmt.Errorf("Validate: x/y given without function: %w", ErrInvalidScene)
	}
	if s.Function != "" && (len(s.X) == 0 || len(s.Y) == 0) {
		return fmt.Errorf("Validate: function given without both x and y: %w", ErrInvalidScene)
	}
	if s.Steps < 0 || s.Steps > MaxSteps {
		return fmt.Errorf("Validate: steps=%d outside [0, %d]: %w", s.Steps, MaxSteps, ErrInvalidScene)
	}
	if s.Reim&^zplot.Both != 0 {
		return fmt.Errorf("Validate: reim=%s: %w", s.Reim, ErrInvalidScene)
	}
	if s.Workers < 0 {
		return fmt.Errorf("Validate: workers=%d: %w", s.Workers, ErrInvalidScene)
	}
	if !hasGrid && len(s.Points) == 0 {
		return fmt.Errorf("Validate: nothing to draw: %w", ErrInvalidScene)
	}
	total := 0
	for i, ps := range s.Points {
		if err := ps.validate(s.Function != ""); err != nil {
			return fmt.Errorf("Validate: points[%d] (%s): %w", i, ps.Name, err)
		}
		total += ps.size()
		if total > cgrid.MaxGridSamples {
			return fmt.Errorf("Validate: point sets exceed %d samples: %w", cgrid.MaxGridSamples, ErrInvalidScene)
		}
	}
	return nil
}

func (ps PointSet) size() int {
	if ps.Segment != nil {
		return ps.Segment.N
	}
	return len(ps.Values)
}

func (ps PointSet) validate(haveFunc bool) error {
	if (len(ps.Values) > 0) == (ps.Segment != nil) {
		return fmt.Errorf("exactly one of values and segment is required: %w", ErrInvalidScene)
	}
	if ps.Transform && !haveFunc {
		return fmt.Errorf("transform without a scene function: %w", ErrInvalidScene)
	}
	if ps.Segment != nil && (ps.Segment.N < cgrid.MinSteps || ps.Segment.N > MaxSteps) {
		return fmt.Errorf("segment n=%d outside [%d, %d]: %w", ps.Segment.N, cgrid.MinSteps, MaxSteps, ErrInvalidScene)
	}
	return nil
}

func toBound(name string, v []float64) (cgrid.Bound, error) {
	switch len(v) {
	case 2:
		return cgrid.Bound{Low: v[0], High: v[1], Step: defaultBoundStep}, nil
	case 3:
		return cgrid.Bound{Low: v[0], High: v[1], Step: v[2]}, nil
	default:
		return cgrid.Bound{}, fmt.Errorf("%s: want [low, high] or [low, high, step], got %d values: %w",
			name, len(v), ErrInvalidScene)
	}
}

// ParseComplex parses a complex literal, accepting the "j" suffix as well
// as "i" ("1+2j" == "1+2i").
func ParseComplex(s string) (complex128, error) {
	t := strings.ReplaceAll(strings.TrimSpace(s), "j", "i")
	z, err := strconv.ParseComplex(t, 128)
	if err != nil {
		return 0, fmt.Errorf("ParseComplex(%q): %w", s, ErrInvalidScene)
	}
	return z, nil
}

func (ps PointSet) points() ([]complex128, error) {
	if ps.Segment != nil {
		return ps.Segment.points()
	}
	out := make([]complex128, len(ps.Values))
	for i, v := range ps.Values {
		z, err := ParseComplex(v)
		if err != nil {
			return nil, err
		}
		out[i] = z
	}
	return out, nil
}

func (sg Segment) points() ([]complex128, error) {
	from, err := ParseComplex(sg.From)
	if err != nil {
		return nil, err
	}
	to, err := ParseComplex(sg.To)
	if err != nil {
		return nil, err
	}
	re, err := cgrid.Linspace(real(from), real(to), sg.N)
	if err != nil {
		return nil, err
	}
	im, err := cgrid.Linspace(imag(from), imag(to), sg.N)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, sg.N)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out, nil
}
