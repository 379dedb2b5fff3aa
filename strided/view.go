// SPDX-License-Identifier: MIT

// Package strided - validated strided views.
//
// Purpose:
//   - View[T] pins (buffer, stride, offset, length) and guarantees at
//     construction that every logical element maps inside the buffer.
//   - Safe At/Set return ErrOutOfBounds instead of panicking.
//   - *Views helpers are the checked entry points to the unchecked kernels.
//
// Index formula:
//   - element i lives at buffer index Offset + i*Stride, i in [0, Len).
//
// Complexity quicksheet:
//   - NewView: O(1); At/Set: O(1); Reverse: O(1); ToSlice: O(n).

package strided

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/katalvlaran/lvstride/accessor"
)

// View method tags.
const (
	ctxNewView = "NewView"
	ctxAt      = "At"
	ctxSet     = "Set"
)

// View is a strided window onto an array-like buffer. It never copies the
// buffer; writes through Set (or through kernels) are visible to every other
// view of the same buffer.
type View[T any] struct {
	d      accessor.Descriptor[T]
	n      int
	stride int
	offset int
}

// viewErrorf wraps an error with the View method and logical index.
func viewErrorf(method string, i int, err error) error {
	return fmt.Errorf("View.%s(%d): %w", method, i, err)
}

// NewView builds a view of n elements of data starting at buffer index
// offset and advancing by stride.
//
// Implementation:
//   - Stage 1: resolve data through accessor (slices and accessor arrays).
//   - Stage 2: reject n < 0.
//   - Stage 3: for n > 0, check first and last buffer index are inside
//     [0, Len(data)). Intermediate indices lie between them.
//
// Errors:
//   - accessor resolution errors, ErrNegativeLength, ErrOutOfBounds.
func NewView[T any](data any, n, stride, offset int) (View[T], error) {
	d, err := accessor.Resolve[T](data)
	if err != nil {
		return View[T]{}, fmt.Errorf("%s: %w", ctxNewView, err)
	}
	if n < 0 {
		return View[T]{}, fmt.Errorf("%s(n=%d): %w", ctxNewView, n, ErrNegativeLength)
	}
	if n > 0 {
		first, last := offset, offset+(n-1)*stride
		size := d.Len()
		if first < 0 || first >= size || last < 0 || last >= size {
			return View[T]{}, fmt.Errorf("%s(n=%d, stride=%d, offset=%d, len=%d): %w",
				ctxNewView, n, stride, offset, size, ErrOutOfBounds)
		}
	}
	return View[T]{d: d, n: n, stride: stride, offset: offset}, nil
}

// ViewOf is the contiguous view of a whole buffer (stride 1, offset 0).
func ViewOf[T any](data any) (View[T], error) {
	n, err := accessor.Len(data)
	if err != nil {
		return View[T]{}, fmt.Errorf("%s: %w", ctxNewView, err)
	}
	return NewView[T](data, n, 1, 0)
}

// Len returns the number of logical elements.
func (v View[T]) Len() int { return v.n }

// Stride returns the buffer step between consecutive elements.
func (v View[T]) Stride() int { return v.stride }

// Offset returns the buffer index of logical element 0.
func (v View[T]) Offset() int { return v.offset }

// Data returns the underlying buffer as passed to NewView.
func (v View[T]) Data() any { return v.d.Data }

// Kind returns the data type of the underlying buffer.
func (v View[T]) Kind() accessor.Kind { return v.d.Kind }

// index maps logical index i to a buffer index, or fails.
func (v View[T]) index(method string, i int) (int, error) {
	if i < 0 || i >= v.n {
		return 0, viewErrorf(method, i, ErrOutOfBounds)
	}
	return v.offset + i*v.stride, nil
}

// At returns logical element i.
func (v View[T]) At(i int) (T, error) {
	k, err := v.index(ctxAt, i)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.d.Get(k), nil
}

// Set stores x at logical element i.
func (v View[T]) Set(i int, x T) error {
	k, err := v.index(ctxSet, i)
	if err != nil {
		return err
	}
	v.d.Set(k, x)
	return nil
}

// Reverse returns the view traversing the same elements back to front.
func (v View[T]) Reverse() View[T] {
	if v.n == 0 {
		return v
	}
	return View[T]{
		d:      v.d,
		n:      v.n,
		stride: -v.stride,
		offset: v.offset + (v.n-1)*v.stride,
	}
}

// ToSlice copies the logical elements out, in logical order.
func (v View[T]) ToSlice() []T {
	out := make([]T, v.n)
	k := v.offset
	for i := 0; i < v.n; i++ {
		out[i] = v.d.Get(k)
		k += v.stride
	}
	return out
}

// Bounds returns the smallest and largest buffer index the view touches.
// For an empty view both are -1.
func (v View[T]) Bounds() (lo, hi int) {
	if v.n == 0 {
		return -1, -1
	}
	first, last := v.offset, v.offset+(v.n-1)*v.stride
	if first > last {
		first, last = last, first
	}
	return first, last
}

// bufferIndices lists every buffer index touched by v.
func (v View[T]) bufferIndices() []int {
	out := make([]int, v.n)
	k := v.offset
	for i := range out {
		out[i] = k
		k += v.stride
	}
	return out
}

// Overlaps reports whether a and b view the same buffer and touch at least
// one common buffer element. It is a debug aid for in-place calls and is not
// used by any kernel. Slices count as the same buffer when they start at the
// same address; accessor arrays when they are the same (comparable) value.
// Complexity: O(a.Len() + b.Len()).
func Overlaps[T any](a, b View[T]) bool {
	if a.n == 0 || b.n == 0 || !sameBuffer(a.d, b.d) {
		return false
	}
	alo, ahi := a.Bounds()
	blo, bhi := b.Bounds()
	if ahi < blo || bhi < alo {
		return false
	}
	seen := make(map[int]struct{}, a.n)
	for _, k := range a.bufferIndices() {
		seen[k] = struct{}{}
	}
	for _, k := range b.bufferIndices() {
		if _, ok := seen[k]; ok {
			return true
		}
	}
	return false
}

// sameBuffer reports whether two descriptors refer to the same storage.
func sameBuffer[T any](a, b accessor.Descriptor[T]) bool {
	as, aok := a.Slice()
	bs, bok := b.Slice()
	if aok && bok {
		return len(as) > 0 && len(bs) > 0 && unsafe.SliceData(as) == unsafe.SliceData(bs)
	}
	if aok != bok {
		return false
	}
	ta, tb := reflect.TypeOf(a.Data), reflect.TypeOf(b.Data)
	return ta == tb && ta != nil && ta.Comparable() && a.Data == b.Data
}

// checkSameLen verifies every view has the length of the first.
func checkSameLen(method string, lens ...int) error {
	for _, l := range lens[1:] {
		if l != lens[0] {
			return kernelErrorf(method, fmt.Errorf("lengths %v: %w", lens, ErrLengthMismatch))
		}
	}
	return nil
}

// MaskedUnaryViews is the checked entry point for MaskedUnaryNdarray: all
// three views must have the same length; their bounds were validated when
// they were built.
func MaskedUnaryViews[X, Y any](x View[X], m View[uint8], y View[Y], fn func(X) Y) error {
	if err := checkSameLen(ctxMaskedUnary, x.n, m.n, y.n); err != nil {
		return err
	}
	return MaskedUnaryNdarray(
		[]any{x.d.Data, m.d.Data, y.d.Data},
		[]int{x.n},
		[]int{x.stride, m.stride, y.stride},
		[]int{x.offset, m.offset, y.offset},
		fn,
	)
}

// UnaryViews is the checked entry point for UnaryNdarray.
func UnaryViews[X, Y any](x View[X], y View[Y], fn func(X) Y) error {
	if err := checkSameLen(ctxUnary, x.n, y.n); err != nil {
		return err
	}
	return UnaryNdarray(
		[]any{x.d.Data, y.d.Data},
		[]int{x.n},
		[]int{x.stride, y.stride},
		[]int{x.offset, y.offset},
		fn,
	)
}

// BinaryViews is the checked entry point for BinaryNdarray.
func BinaryViews[X, W, Z any](x View[X], w View[W], z View[Z], fn func(X, W) Z) error {
	if err := checkSameLen(ctxBinary, x.n, w.n, z.n); err != nil {
		return err
	}
	return BinaryNdarray(
		[]any{x.d.Data, w.d.Data, z.d.Data},
		[]int{x.n},
		[]int{x.stride, w.stride, z.stride},
		[]int{x.offset, w.offset, z.offset},
		fn,
	)
}
