// SPDX-License-Identifier: MIT

package strided

import (
	"github.com/katalvlaran/lvstride/accessor"
)

// Nullary fills a strided output array with successive fn() results.
// arrays is [y]; strides is [sy]; offsets are implicit.
func Nullary[Y any](arrays []any, shape, strides []int, fn func() Y) error {
	if err := checkArgs(ctxNullary, 1, arrays, shape, strides, nil, false); err != nil {
		return err
	}
	return NullaryNdarray(arrays, shape, strides, Offsets(shape[0], strides), fn)
}

// NullaryNdarray is Nullary with explicit offsets.
func NullaryNdarray[Y any](arrays []any, shape, strides, offsets []int, fn func() Y) error {
	if err := checkArgs(ctxNullary, 1, arrays, shape, strides, offsets, true); err != nil {
		return err
	}
	if fn == nil {
		return kernelErrorf(ctxNullary, ErrNilCallback)
	}
	y, err := accessor.Resolve[Y](arrays[0])
	if err != nil {
		return kernelErrorf(ctxNullary, err)
	}
	n := shape[0]
	if n <= 0 {
		return nil
	}

	sy, iy := strides[0], offsets[0]
	if ys, ok := y.Slice(); ok {
		for i := 0; i < n; i++ {
			ys[iy] = fn()
			iy += sy
		}
		return nil
	}
	for i := 0; i < n; i++ {
		y.Set(iy, fn())
		iy += sy
	}
	return nil
}
