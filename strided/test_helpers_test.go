// SPDX-License-Identifier: MIT
// Package strided_test contains test helpers
//
// Purpose:
//   • boxed hides a slice behind the accessor protocol so the same call can
//     be driven through the slice fast path and the Get/Set path.
//   • Small deterministic fixtures for strided buffers.

package strided_test

import (
	"math/rand"

	"github.com/katalvlaran/lvstride/accessor"
)

// boxed wraps a slice into an accessor-protocol array.
// Use boxed{s} in tests to force the Get/Set path.
type boxed[T any] struct{ s []T }

func (b boxed[T]) Get(idx int) T    { return b.s[idx] }
func (b boxed[T]) Set(idx int, v T) { b.s[idx] = v }
func (b boxed[T]) Len() int         { return len(b.s) }

var _ accessor.Array[float64] = boxed[float64]{}

// maskGetter is an accessor-protocol mask that skips exactly one index.
type maskGetter struct {
	n    int
	skip int
}

func (m maskGetter) Get(idx int) uint8 {
	if idx == m.skip {
		return 1
	}
	return 0
}
func (m maskGetter) Set(int, uint8) {}
func (m maskGetter) Len() int       { return m.n }

// iabs is |v| for ints.
func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// randFloats returns n values in [-50, 50).
func randFloats(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*100 - 50
	}
	return out
}

// randMask returns n mask bytes, roughly a third of them set.
func randMask(rng *rand.Rand, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		if rng.Intn(3) == 0 {
			out[i] = 1
		}
	}
	return out
}

// sentinels returns n distinct pre-fill values that no kernel output in the
// tests can produce.
func sentinels(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = -1000 - float64(i)
	}
	return out
}
