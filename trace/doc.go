// Package trace assembles drawable traces and resolves axis styles.
//
// A Trace is the renderer-facing record: a name, a drawing mode, parallel
// X (real part) and Y (imaginary part) series, and style attributes. Traces
// marshal to the JSON shape chart libraries expect for a 2-D scatter, with
// non-finite samples written as null so they render as gaps.
//
// Styles resolve in two layers:
//
//   - Style (per trace): family defaults first, caller overrides on top;
//     Style.Extra is the deliberate escape hatch that passes unknown keys
//     straight to the renderer.
//   - AxisStyle (per axis): a typed set of recognised options. Overrides
//     replace scalars; the nested Minor block is merged key by key, so a
//     caller can recolor minor gridlines and keep their spacing.
//
// Everything here is a pure value transform; nothing is retained.
package trace
