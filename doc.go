// SPDX-License-Identifier: MIT

// Package lvstride is a toolkit of low-level array primitives built around
// one idea: every operation works over a raw buffer plus stride/offset
// arithmetic, and every buffer is reached through a resolved accessor so
// plain slices and "exotic" arrays (interleaved complex storage, custom
// Get/Set types) flow through the same code.
//
// Packages:
//
//	accessor/  array resolution, the dtype identifier table, complex arrays
//	strided/   strided kernels (masked unary, unary, binary, nullary) and views
//	circular/  fixed-capacity FIFO ring with eviction, iterators and JSON
//	compact/   bit-packed directed adjacency matrix with toposort
//
// Quick example (mask non-zero = skip):
//
//	x := []float64{-1, -2, -3, -4, -5}
//	m := []uint8{0, 0, 1, 0, 0}
//	y := make([]float64, 5)
//	_ = strided.MaskedUnary([]any{x, m, y}, []int{5}, []int{1, 1, 1}, math.Abs)
//	// y == [1 2 0 4 5]
//
// The cmd/lvstride CLI drives every package from the command line.
package lvstride
