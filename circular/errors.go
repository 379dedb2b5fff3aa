// SPDX-License-Identifier: MIT

package circular

import (
	"fmt"

	"github.com/katalvlaran/lvstride/accessor"
)

var (
	// ErrInvalidCapacity indicates a non-positive capacity or an empty /
	// non-array backing value.
	ErrInvalidCapacity = fmt.Errorf("circular: capacity must be a positive integer or a non-empty array: %w", accessor.ErrType)

	// ErrInvalidCount indicates a negative iteration limit.
	ErrInvalidCount = fmt.Errorf("circular: iteration count must be a nonnegative integer: %w", accessor.ErrType)

	// ErrBadJSON indicates a JSON document that is not a serialized buffer.
	ErrBadJSON = fmt.Errorf("circular: invalid circular buffer JSON: %w", accessor.ErrType)
)
