// SPDX-License-Identifier: MIT

package accessor

import "math"

// Uint8c is a byte buffer with clamped write semantics ("uint8c"). It is
// directly indexable; the clamping applies when converting wider values in,
// see ClampUint8.
type Uint8c []uint8

// ClampUint8 converts v the way a clamped byte store does: NaN becomes 0,
// values are clamped to [0, 255] and rounded half to even.
func ClampUint8(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(math.RoundToEven(v))
	}
}
