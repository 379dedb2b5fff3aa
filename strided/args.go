// SPDX-License-Identifier: MIT

// Package strided - argument checks shared by every kernel.
//
// Purpose:
//   - One place for the list-length checks of the calling convention.
//   - Offset derivation for the implicit-offset form.
//
// Notes:
//   - Nothing here inspects index ranges; that is the View layer's job.

package strided

import "fmt"

// Kernel method tags used in error context.
const (
	ctxNullary      = "Nullary"
	ctxUnary        = "Unary"
	ctxUnaryBy      = "UnaryBy"
	ctxMaskedUnary  = "MaskedUnary"
	ctxBinary       = "Binary"
	ctxMaskedBinary = "MaskedBinary"
)

// StrideToOffset returns the buffer index of logical element 0 for a view of
// n elements traversed with the given stride: 0 for stride >= 0 and
// (1-n)*stride otherwise, so a negative stride walks a buffer back to front.
// Complexity: O(1).
func StrideToOffset(n, stride int) int {
	if stride < 0 {
		return (1 - n) * stride
	}
	return 0
}

// Offsets applies StrideToOffset to every stride.
func Offsets(n int, strides []int) []int {
	out := make([]int, len(strides))
	for k, s := range strides {
		out[k] = StrideToOffset(n, s)
	}
	return out
}

// kernelErrorf attaches the kernel tag to a sentinel.
func kernelErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// checkArgs validates list lengths for a kernel taking nArrays arrays.
// explicit=false skips the offsets check (implicit-offset form).
func checkArgs(method string, nArrays int, arrays []any, shape, strides, offsets []int, explicit bool) error {
	if len(arrays) != nArrays {
		return kernelErrorf(method, fmt.Errorf("got %d, want %d: %w", len(arrays), nArrays, ErrArrayCount))
	}
	if len(shape) != 1 {
		return kernelErrorf(method, ErrShape)
	}
	if len(strides) != nArrays {
		return kernelErrorf(method, ErrStrides)
	}
	if explicit && len(offsets) != nArrays {
		return kernelErrorf(method, ErrOffsets)
	}
	return nil
}
