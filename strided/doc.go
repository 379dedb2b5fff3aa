// Package strided implements 1-D strided array kernels over raw buffers.
//
// What:
//
//   - MaskedUnary / MaskedUnaryNdarray: y[i] = fn(x[i]) where mask[i] == 0.
//   - Unary, UnaryBy, Nullary, Binary, MaskedBinary: the rest of the kernel
//     family, sharing the same calling convention and dual-path structure.
//   - View: a validated (buffer, stride, offset, length) tuple with safe
//     At/Set, used by callers that want bounds checks before entering the
//     unchecked kernels.
//
// Calling convention:
//
//	Kernel(arrays, shape, strides, fn)                  // implicit offsets
//	KernelNdarray(arrays, shape, strides, offsets, fn)  // explicit offsets
//
//   - arrays lists inputs first, then the mask (if any), then outputs.
//   - shape is always []int{N}.
//   - The implicit form derives offsets with StrideToOffset: 0 for a
//     positive stride, (1-N)*stride for a negative one.
//
// Dispatch:
//
//   - Every array is resolved once through package accessor.
//   - If all participants are plain slices, the kernel indexes slices
//     directly. If any participant speaks the accessor protocol, every
//     participant goes through its Get/Set pair.
//
// Contract:
//
//   - N <= 0 is a no-op.
//   - Output elements that are skipped (mask != 0, or UnaryBy returning
//     ok=false) are left untouched.
//   - Argument kinds and list lengths are validated on entry. Index ranges
//     are NOT: a shape/stride/offset combination that leaves a buffer is a
//     caller bug and panics with Go's index-out-of-range error. Wrap calls
//     in View-based helpers (MaskedUnaryViews, UnaryViews) to get checked
//     entry points.
//   - Aliasing input and output views is allowed but not detected; the
//     caller must make sure writes never clobber elements not yet read.
//     Overlaps is a debug helper for that check.
//
// Complexity:
//
//   - Time O(N), no allocation beyond argument resolution.
package strided
