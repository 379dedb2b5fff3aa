// SPDX-License-Identifier: MIT

// Package strided - binary and masked binary apply.
//
// Purpose:
//   - z[i] = fn(x[i], w[i]) over two strided inputs.
//   - Masked variant skips indices whose mask element is non-zero.

package strided

import (
	"github.com/katalvlaran/lvstride/accessor"
)

// Binary stores fn(x[i], w[i]) into z[i] for every logical index.
// arrays is [x, w, z]; strides is [sx, sw, sz]; offsets are implicit.
func Binary[X, W, Z any](arrays []any, shape, strides []int, fn func(X, W) Z) error {
	if err := checkArgs(ctxBinary, 3, arrays, shape, strides, nil, false); err != nil {
		return err
	}
	return BinaryNdarray(arrays, shape, strides, Offsets(shape[0], strides), fn)
}

// BinaryNdarray is Binary with explicit offsets.
// Complexity: O(N).
func BinaryNdarray[X, W, Z any](arrays []any, shape, strides, offsets []int, fn func(X, W) Z) error {
	if err := checkArgs(ctxBinary, 3, arrays, shape, strides, offsets, true); err != nil {
		return err
	}
	if fn == nil {
		return kernelErrorf(ctxBinary, ErrNilCallback)
	}
	x, err := accessor.Resolve[X](arrays[0])
	if err != nil {
		return kernelErrorf(ctxBinary, err)
	}
	w, err := accessor.Resolve[W](arrays[1])
	if err != nil {
		return kernelErrorf(ctxBinary, err)
	}
	z, err := accessor.Resolve[Z](arrays[2])
	if err != nil {
		return kernelErrorf(ctxBinary, err)
	}
	n := shape[0]
	if n <= 0 {
		return nil
	}

	sx, sw, sz := strides[0], strides[1], strides[2]
	ix, iw, iz := offsets[0], offsets[1], offsets[2]
	xs, xok := x.Slice()
	ws, wok := w.Slice()
	zs, zok := z.Slice()
	if xok && wok && zok {
		for i := 0; i < n; i++ {
			zs[iz] = fn(xs[ix], ws[iw])
			ix += sx
			iw += sw
			iz += sz
		}
		return nil
	}
	xget, wget, zset := x.Get, w.Get, z.Set
	for i := 0; i < n; i++ {
		zset(iz, fn(xget(ix), wget(iw)))
		ix += sx
		iw += sw
		iz += sz
	}
	return nil
}

// MaskedBinary is Binary restricted to indices whose mask element is zero.
// arrays is [x, w, mask, z]; strides is [sx, sw, sm, sz].
func MaskedBinary[X, W, Z any](arrays []any, shape, strides []int, fn func(X, W) Z) error {
	if err := checkArgs(ctxMaskedBinary, 4, arrays, shape, strides, nil, false); err != nil {
		return err
	}
	return MaskedBinaryNdarray(arrays, shape, strides, Offsets(shape[0], strides), fn)
}

// MaskedBinaryNdarray is MaskedBinary with explicit offsets.
func MaskedBinaryNdarray[X, W, Z any](arrays []any, shape, strides, offsets []int, fn func(X, W) Z) error {
	if err := checkArgs(ctxMaskedBinary, 4, arrays, shape, strides, offsets, true); err != nil {
		return err
	}
	if fn == nil {
		return kernelErrorf(ctxMaskedBinary, ErrNilCallback)
	}
	x, err := accessor.Resolve[X](arrays[0])
	if err != nil {
		return kernelErrorf(ctxMaskedBinary, err)
	}
	w, err := accessor.Resolve[W](arrays[1])
	if err != nil {
		return kernelErrorf(ctxMaskedBinary, err)
	}
	m, err := accessor.Resolve[uint8](arrays[2])
	if err != nil {
		return kernelErrorf(ctxMaskedBinary, err)
	}
	z, err := accessor.Resolve[Z](arrays[3])
	if err != nil {
		return kernelErrorf(ctxMaskedBinary, err)
	}
	n := shape[0]
	if n <= 0 {
		return nil
	}

	sx, sw, sm, sz := strides[0], strides[1], strides[2], strides[3]
	ix, iw, im, iz := offsets[0], offsets[1], offsets[2], offsets[3]
	xs, xok := x.Slice()
	ws, wok := w.Slice()
	ms, mok := m.Slice()
	zs, zok := z.Slice()
	if xok && wok && mok && zok {
		for i := 0; i < n; i++ {
			if ms[im] == 0 {
				zs[iz] = fn(xs[ix], ws[iw])
			}
			ix += sx
			iw += sw
			im += sm
			iz += sz
		}
		return nil
	}
	xget, wget, mget, zset := x.Get, w.Get, m.Get, z.Set
	for i := 0; i < n; i++ {
		if mget(im) == 0 {
			zset(iz, fn(xget(ix), wget(iw)))
		}
		ix += sx
		iw += sw
		im += sm
		iz += sz
	}
	return nil
}
