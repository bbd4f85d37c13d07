package trace

import (
	"bytes"
	"math"
	"strconv"
)

// Series is a run of plot coordinates. It marshals non-finite entries as
// JSON null, which chart libraries draw as a gap; encoding/json would
// otherwise refuse NaN and ±Inf outright.
type Series []float64

// MarshalJSON implements json.Marshaler.
func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}

	var buf bytes.Buffer
	buf.Grow(len(s) * 8)
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// Finite reports whether s[i] is neither NaN nor ±Inf.
func (s Series) Finite(i int) bool {
	return !math.IsNaN(s[i]) && !math.IsInf(s[i], 0)
}
