// Package trace_test contains unit tests for MakeTrace, Style merging and
// the JSON trace shape.
package trace_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/zplane/cgrid"
	"github.com/katalvlaran/zplane/trace"
	"github.com/stretchr/testify/require"
)

func TestMakeTrace_SplitsParts(t *testing.T) {
	t.Parallel()

	pts := []complex128{1 + 2i, -3 + 0.5i, 0}
	tr := trace.MakeTrace(pts, "-4", trace.DefaultStyle(cgrid.ConstReal))

	require.Equal(t, trace.Series{1, -3, 0}, tr.X)
	require.Equal(t, trace.Series{2, 0.5, 0}, tr.Y)
	require.Equal(t, "-4", tr.Name)
	require.Equal(t, trace.ConstRealColor, tr.Color)
	require.Equal(t, trace.ModeLines, tr.Mode)
	require.Equal(t, pts, tr.Points())
	require.Equal(t, 3, tr.Len())
}

func TestMakeTrace_NameOverridesLabel(t *testing.T) {
	t.Parallel()

	tr := trace.MakeTrace(nil, "2i", trace.Style{Name: "top"})
	require.Equal(t, "top", tr.Name)
	require.Zero(t, tr.Len())
}

func TestMakeTrace_CopiesExtra(t *testing.T) {
	t.Parallel()

	st := trace.Style{Extra: map[string]any{"opacity": 0.5}}
	tr := trace.MakeTrace([]complex128{1}, "a", st)

	st.Extra["opacity"] = 0.9
	require.Equal(t, 0.5, tr.Extra["opacity"])

	tr.Extra["dash"] = "dot"
	require.NotContains(t, st.Extra, "dash")

	require.Nil(t, trace.MakeTrace(nil, "b", trace.Style{}).Extra)
}

func TestDefaultStyle_FamiliesDiffer(t *testing.T) {
	t.Parallel()

	re := trace.DefaultStyle(cgrid.ConstReal)
	im := trace.DefaultStyle(cgrid.ConstImag)
	require.NotEqual(t, re.Color, im.Color)
	require.Equal(t, "orange", re.Color)
	require.Equal(t, "blue", im.Color)
}

func TestStyle_Merge(t *testing.T) {
	t.Parallel()

	base := trace.Style{Color: "blue", Mode: trace.ModeLines, Extra: map[string]any{"opacity": 0.5, "dash": "dot"}}
	over := trace.Style{Color: "red", Width: 3, Extra: map[string]any{"dash": "solid"}}

	got := base.Merge(over)
	require.Equal(t, "red", got.Color)
	require.Equal(t, 3.0, got.Width)
	require.Equal(t, trace.ModeLines, got.Mode)
	require.Equal(t, map[string]any{"opacity": 0.5, "dash": "solid"}, got.Extra)

	// base map is not shared with the result
	got.Extra["opacity"] = 1.0
	require.Equal(t, 0.5, base.Extra["opacity"])
}

func TestTrace_MarshalJSON(t *testing.T) {
	t.Parallel()

	tr := trace.MakeTrace(
		[]complex128{1 + 1i, complex(math.Inf(1), math.NaN())},
		"0",
		trace.Style{Color: "red", Width: 2, Mode: trace.ModeLinesMarkers, Extra: map[string]any{"opacity": 0.4, "x": "ignored"}},
	)
	raw, err := json.Marshal(tr)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, "scatter", got["type"])
	require.Equal(t, "0", got["name"])
	require.Equal(t, trace.ModeLinesMarkers, got["mode"])
	require.Equal(t, []any{1.0, nil}, got["x"], "non-finite becomes null; extra cannot clobber x")
	require.Equal(t, []any{1.0, nil}, got["y"])
	require.Equal(t, map[string]any{"color": "red", "width": 2.0}, got["line"])
	require.Equal(t, map[string]any{"color": "red"}, got["marker"])
	require.Equal(t, 0.4, got["opacity"])
}

func TestSeries_MarshalJSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(trace.Series{0.5, math.NaN(), -2, math.Inf(-1)})
	require.NoError(t, err)
	require.JSONEq(t, `[0.5,null,-2,null]`, string(raw))

	raw, err = json.Marshal(trace.Series(nil))
	require.NoError(t, err)
	require.Equal(t, "[]", string(raw))
}
