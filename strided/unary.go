// SPDX-License-Identifier: MIT

package strided

import (
	"github.com/katalvlaran/lvstride/accessor"
)

// Unary stores fn(x[i]) into y[i] for every logical index.
// arrays is [x, y]; strides is [sx, sy]; offsets are implicit.
func Unary[X, Y any](arrays []any, shape, strides []int, fn func(X) Y) error {
	if err := checkArgs(ctxUnary, 2, arrays, shape, strides, nil, false); err != nil {
		return err
	}
	return UnaryNdarray(arrays, shape, strides, Offsets(shape[0], strides), fn)
}

// UnaryNdarray is Unary with explicit offsets.
// Complexity: O(N).
func UnaryNdarray[X, Y any](arrays []any, shape, strides, offsets []int, fn func(X) Y) error {
	if err := checkArgs(ctxUnary, 2, arrays, shape, strides, offsets, true); err != nil {
		return err
	}
	if fn == nil {
		return kernelErrorf(ctxUnary, ErrNilCallback)
	}
	x, err := accessor.Resolve[X](arrays[0])
	if err != nil {
		return kernelErrorf(ctxUnary, err)
	}
	y, err := accessor.Resolve[Y](arrays[1])
	if err != nil {
		return kernelErrorf(ctxUnary, err)
	}
	n := shape[0]
	if n <= 0 {
		return nil
	}

	sx, sy := strides[0], strides[1]
	ix, iy := offsets[0], offsets[1]
	xs, xok := x.Slice()
	ys, yok := y.Slice()
	if xok && yok {
		for i := 0; i < n; i++ {
			ys[iy] = fn(xs[ix])
			ix += sx
			iy += sy
		}
		return nil
	}
	xget, yset := x.Get, y.Set
	for i := 0; i < n; i++ {
		yset(iy, fn(xget(ix)))
		ix += sx
		iy += sy
	}
	return nil
}

// UnaryBy calls fn(x[i], i) for every logical index i and stores the result
// into y[i] when fn reports ok. Returning ok=false leaves y[i] untouched.
// arrays is [x, y]; strides is [sx, sy]; offsets are implicit.
func UnaryBy[X, Y any](arrays []any, shape, strides []int, fn func(v X, i int) (Y, bool)) error {
	if err := checkArgs(ctxUnaryBy, 2, arrays, shape, strides, nil, false); err != nil {
		return err
	}
	return UnaryByNdarray(arrays, shape, strides, Offsets(shape[0], strides), fn)
}

// UnaryByNdarray is UnaryBy with explicit offsets. The index passed to fn is
// the logical index, not the buffer index.
func UnaryByNdarray[X, Y any](arrays []any, shape, strides, offsets []int, fn func(v X, i int) (Y, bool)) error {
	if err := checkArgs(ctxUnaryBy, 2, arrays, shape, strides, offsets, true); err != nil {
		return err
	}
	if fn == nil {
		return kernelErrorf(ctxUnaryBy, ErrNilCallback)
	}
	x, err := accessor.Resolve[X](arrays[0])
	if err != nil {
		return kernelErrorf(ctxUnaryBy, err)
	}
	y, err := accessor.Resolve[Y](arrays[1])
	if err != nil {
		return kernelErrorf(ctxUnaryBy, err)
	}
	n := shape[0]
	if n <= 0 {
		return nil
	}

	sx, sy := strides[0], strides[1]
	ix, iy := offsets[0], offsets[1]
	xs, xok := x.Slice()
	ys, yok := y.Slice()
	if xok && yok {
		for i := 0; i < n; i++ {
			if v, ok := fn(xs[ix], i); ok {
				ys[iy] = v
			}
			ix += sx
			iy += sy
		}
		return nil
	}
	xget, yset := x.Get, y.Set
	for i := 0; i < n; i++ {
		if v, ok := fn(xget(ix), i); ok {
			yset(iy, v)
		}
		ix += sx
		iy += sy
	}
	return nil
}
