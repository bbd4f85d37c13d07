package trace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DecodeAxisStyle converts a loosely typed option map (from YAML, JSON or
// flags) into an AxisStyle. Integers are accepted where floats are expected;
// unknown option names are rejected with ErrUnknownAxisKey.
func DecodeAxisStyle(raw map[string]any) (AxisStyle, error) {
	var (
		out AxisStyle
		md  mapstructure.Metadata
	)
	if len(raw) == 0 {
		return out, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   &out,
		TagName:  "mapstructure",
	})
	if err != nil {
		return AxisStyle{}, fmt.Errorf("DecodeAxisStyle: %v: %w", err, ErrAxisDecode)
	}
	if err := dec.Decode(raw); err != nil {
		return AxisStyle{}, fmt.Errorf("DecodeAxisStyle: %v: %w", err, ErrAxisDecode)
	}
	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return AxisStyle{}, fmt.Errorf("DecodeAxisStyle: %s: %w", strings.Join(md.Unused, ", "), ErrUnknownAxisKey)
	}

	return out, nil
}
