// SPDX-License-Identifier: MIT
// Package accessor: sentinel error set.
//
// ErrType and ErrRange are the two error classes of the module. Every other
// sentinel (here and in strided, circular, compact) wraps exactly one of them
// so callers can branch on the class with errors.Is.

package accessor

import (
	"errors"
	"fmt"
)

var (
	// ErrType classifies wrong-argument-kind failures (not array-like,
	// not an integer in the accepted domain, wrong element type).
	ErrType = errors.New("type error")

	// ErrRange classifies index/dimension violations.
	ErrRange = errors.New("range error")
)

var (
	// ErrNotArrayLike is returned by Resolve when the value is neither a
	// slice nor an accessor-protocol array.
	ErrNotArrayLike = fmt.Errorf("accessor: value is not array-like: %w", ErrType)

	// ErrElementType is returned when the value is array-like but its
	// element type does not match the requested one.
	ErrElementType = fmt.Errorf("accessor: element type mismatch: %w", ErrType)

	// ErrUnknownKind is returned by ParseKind for identifiers outside the
	// dispatch table.
	ErrUnknownKind = fmt.Errorf("accessor: unknown data type: %w", ErrType)

	// ErrOddLength is returned when a complex array is built over a buffer
	// that cannot hold whole (re, im) pairs.
	ErrOddLength = fmt.Errorf("accessor: complex buffer length must be even: %w", ErrRange)
)
