// Package figure is the chart-renderer handle: an accumulator of traces and
// per-axis styles that can be exported.
//
// A Figure is a mutable builder owned by the caller. Plot functions append
// to it, so several calls can draw onto the same canvas (a mapped grid,
// then a few point sets on top). It is not safe for concurrent mutation.
//
// Export targets:
//
//	MarshalJSON / WriteJSON - {"data":[...], "layout":{...}} scatter figure JSON
//	WriteHTML               - standalone page rendering that JSON in a browser
//	Render / Save           - PNG, SVG, PDF, JPEG, EPS or TIFF via gonum.org/v1/plot
//
// Non-finite samples are never an error: JSON writes them as null and the
// image renderer breaks the polyline at them.
package figure
