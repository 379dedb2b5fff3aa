// SPDX-License-Identifier: MIT

// Package strided - masked unary apply.
//
// Purpose:
//   - y[i] = fn(x[i]) for every logical index whose mask element is zero.
//   - Representative of the kernel family: resolve, pick a path, loop.
//
// Determinism & Performance:
//   - Fixed loop order 0..N-1; all three positions advance every step.
//   - Slice fast path when no participant speaks the accessor protocol.

package strided

import (
	"github.com/katalvlaran/lvstride/accessor"
)

// MaskedUnary applies fn to each element of a strided input array whose
// mask element is zero and stores the result in a strided output array.
//
// arrays is [x, mask, y]; shape is [N]; strides is [sx, sm, sy].
// Offsets are derived from the strides (see StrideToOffset).
//
// Example:
//
//	x := []float64{-1, -2, -3, -4, -5}
//	m := []uint8{0, 0, 1, 0, 0}
//	y := make([]float64, 5)
//	_ = MaskedUnary([]any{x, m, y}, []int{5}, []int{1, 1, 1}, math.Abs)
//	// y == [1 2 0 4 5]
func MaskedUnary[X, Y any](arrays []any, shape, strides []int, fn func(X) Y) error {
	if err := checkArgs(ctxMaskedUnary, 3, arrays, shape, strides, nil, false); err != nil {
		return err
	}
	return MaskedUnaryNdarray(arrays, shape, strides, Offsets(shape[0], strides), fn)
}

// MaskedUnaryNdarray is MaskedUnary with explicit starting offsets.
//
// MAIN DESCRIPTION:
//   - For i in [0,N): if mask[om+i*sm] == 0 then y[oy+i*sy] = fn(x[ox+i*sx]).
//
// Implementation:
//   - Stage 1: validate list lengths and the callback.
//   - Stage 2: resolve x (X), mask (uint8) and y (Y) through accessor.
//   - Stage 3: N <= 0 returns immediately.
//   - Stage 4: slice loop if all three are direct, else Get/Set loop.
//
// Behavior highlights:
//   - Masked-out outputs are left untouched, never zeroed.
//   - Index ranges are trusted; leaving a buffer panics.
//
// Errors:
//   - ErrArrayCount, ErrShape, ErrStrides, ErrOffsets, ErrNilCallback.
//   - accessor.ErrNotArrayLike / accessor.ErrElementType from resolution.
//
// Complexity:
//   - Time O(N), Space O(1).
func MaskedUnaryNdarray[X, Y any](arrays []any, shape, strides, offsets []int, fn func(X) Y) error {
	// Stage 1: list lengths and callback.
	if err := checkArgs(ctxMaskedUnary, 3, arrays, shape, strides, offsets, true); err != nil {
		return err
	}
	if fn == nil {
		return kernelErrorf(ctxMaskedUnary, ErrNilCallback)
	}

	// Stage 2: one resolution per argument.
	x, err := accessor.Resolve[X](arrays[0])
	if err != nil {
		return kernelErrorf(ctxMaskedUnary, err)
	}
	m, err := accessor.Resolve[uint8](arrays[1])
	if err != nil {
		return kernelErrorf(ctxMaskedUnary, err)
	}
	y, err := accessor.Resolve[Y](arrays[2])
	if err != nil {
		return kernelErrorf(ctxMaskedUnary, err)
	}

	// Stage 3: empty index space.
	n := shape[0]
	if n <= 0 {
		return nil
	}

	// Stage 4: pick the loop.
	xs, xok := x.Slice()
	ms, mok := m.Slice()
	ys, yok := y.Slice()
	if xok && mok && yok {
		maskedUnaryDirect(n, xs, strides[0], offsets[0], ms, strides[1], offsets[1], ys, strides[2], offsets[2], fn)
		return nil
	}
	maskedUnaryAccessors(n, x, strides[0], offsets[0], m, strides[1], offsets[1], y, strides[2], offsets[2], fn)
	return nil
}

// maskedUnaryDirect is the slice fast path.
func maskedUnaryDirect[X, Y any](n int, xs []X, sx, ix int, ms []uint8, sm, im int, ys []Y, sy, iy int, fn func(X) Y) {
	for i := 0; i < n; i++ {
		if ms[im] == 0 {
			ys[iy] = fn(xs[ix])
		}
		ix += sx
		im += sm
		iy += sy
	}
}

// maskedUnaryAccessors is the Get/Set path, used for every participant as
// soon as one of them speaks the accessor protocol.
func maskedUnaryAccessors[X, Y any](
	n int,
	x accessor.Descriptor[X], sx, ix int,
	m accessor.Descriptor[uint8], sm, im int,
	y accessor.Descriptor[Y], sy, iy int,
	fn func(X) Y,
) {
	xget, mget, yset := x.Get, m.Get, y.Set
	for i := 0; i < n; i++ {
		if mget(im) == 0 {
			yset(iy, fn(xget(ix)))
		}
		ix += sx
		im += sm
		iy += sy
	}
}
