// Package cmap applies a complex function to probe lines and point sequences.
//
// The mapper is deliberately thin: it evaluates f elementwise, keeps order,
// and attaches a display label derived from the line's fixed coordinate.
// It never validates, retries or sanitizes the values f returns; NaN and
// ±Inf travel unchanged into the traces so a broken mapping stays visible.
//
// Lines are independent, so MapLines can spread them over workers
// (WithWorkers); results are reassembled in input order and are identical
// to the sequential run.
package cmap
