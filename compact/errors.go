// SPDX-License-Identifier: MIT
// Package compact: sentinel error set.
//
// Every sentinel wraps accessor.ErrType or accessor.ErrRange, so callers can
// branch either on the exact condition or on its class with errors.Is.

package compact

import (
	"fmt"

	"github.com/katalvlaran/lvstride/accessor"
)

var (
	// ErrNegativeVertexCount indicates a negative N at construction.
	ErrNegativeVertexCount = fmt.Errorf("compact: vertex count must be a nonnegative integer: %w", accessor.ErrType)

	// ErrInvalidVertex indicates a negative vertex index.
	ErrInvalidVertex = fmt.Errorf("compact: vertex must be a nonnegative integer: %w", accessor.ErrType)

	// ErrVertexOutOfRange indicates a vertex index >= N.
	ErrVertexOutOfRange = fmt.Errorf("compact: vertex exceeds matrix dimensions: %w", accessor.ErrRange)

	// ErrNotEdge indicates an edge-list element with fewer than two entries.
	ErrNotEdge = fmt.Errorf("compact: edge must be an array-like object with two elements: %w", accessor.ErrType)

	// ErrNilCallback indicates a nil mapping function.
	ErrNilCallback = fmt.Errorf("compact: callback must be a function: %w", accessor.ErrType)

	// ErrTooManyVertices indicates an N whose N*N bit count overflows int.
	ErrTooManyVertices = fmt.Errorf("compact: vertex count too large: %w", accessor.ErrRange)

	// ErrTooFewVertices indicates a generator size below its minimum.
	ErrTooFewVertices = fmt.Errorf("compact: parameter too small: %w", accessor.ErrRange)

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = fmt.Errorf("compact: probability out of range: %w", accessor.ErrRange)

	// ErrNeedRandSource indicates a stochastic generator called without an rng.
	ErrNeedRandSource = fmt.Errorf("compact: rng is required: %w", accessor.ErrType)
)
