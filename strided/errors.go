// SPDX-License-Identifier: MIT
// Package strided: sentinel error set.
//
// Every sentinel wraps accessor.ErrType or accessor.ErrRange. Accessor
// resolution failures are returned as-is (accessor.ErrNotArrayLike, ...).

package strided

import (
	"fmt"

	"github.com/katalvlaran/lvstride/accessor"
)

var (
	// ErrArrayCount indicates the arrays list has the wrong number of entries.
	ErrArrayCount = fmt.Errorf("strided: wrong number of arrays: %w", accessor.ErrType)

	// ErrShape indicates shape is not a single-element list.
	ErrShape = fmt.Errorf("strided: shape must have exactly one element: %w", accessor.ErrType)

	// ErrStrides indicates strides does not have one entry per array.
	ErrStrides = fmt.Errorf("strided: strides must have one entry per array: %w", accessor.ErrType)

	// ErrOffsets indicates offsets does not have one entry per array.
	ErrOffsets = fmt.Errorf("strided: offsets must have one entry per array: %w", accessor.ErrType)

	// ErrNilCallback indicates a nil callback.
	ErrNilCallback = fmt.Errorf("strided: callback must be a function: %w", accessor.ErrType)

	// ErrOutOfBounds indicates a view whose index range leaves its buffer,
	// or an At/Set index outside [0, Len).
	ErrOutOfBounds = fmt.Errorf("strided: index out of bounds: %w", accessor.ErrRange)

	// ErrLengthMismatch indicates views of different logical lengths were
	// combined in one call.
	ErrLengthMismatch = fmt.Errorf("strided: view length mismatch: %w", accessor.ErrRange)

	// ErrNegativeLength indicates a view with a negative element count.
	ErrNegativeLength = fmt.Errorf("strided: length must be nonnegative: %w", accessor.ErrRange)
)
