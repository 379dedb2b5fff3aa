// SPDX-License-Identifier: MIT

// Package accessor - descriptor resolution.
//
// Purpose:
//   - Resolve turns an arbitrary array-like value into a Descriptor whose
//     Get/Set pair is valid for that value.
//   - Plain slices get direct index closures; accessor-protocol values get
//     their own methods bound as Get/Set.
//
// AI-Hints:
//   - Resolve once per argument per call, never inside a loop.
//   - Use Descriptor.Slice to unlock the slice fast path in hot code.

package accessor

import (
	"fmt"
	"reflect"
)

// Array is the accessor protocol: a value that is read and written through
// methods instead of direct indexing. Complex arrays implement it, and so can
// any caller-defined container.
type Array[T any] interface {
	// Get returns the element at logical index idx.
	Get(idx int) T

	// Set stores v at logical index idx.
	Set(idx int, v T)

	// Len returns the number of logical elements.
	Len() int
}

// Descriptor is the canonical access record for one array argument.
//   - Data is the value that was resolved.
//   - Kind is its data type identifier.
//   - AccessorProtocol is true when Data speaks the Get/Set protocol.
//   - Get/Set are always valid for Data.
//
// A Descriptor is immutable after Resolve returns it.
type Descriptor[T any] struct {
	Data             any
	Kind             Kind
	AccessorProtocol bool
	Get              func(idx int) T
	Set              func(idx int, v T)

	slice []T // non-nil only for direct descriptors
	n     int // logical length
}

// Len returns the logical number of elements of Data.
func (d Descriptor[T]) Len() int { return d.n }

// Slice exposes the underlying slice for direct descriptors.
// ok is false for accessor-protocol descriptors.
func (d Descriptor[T]) Slice() (s []T, ok bool) {
	if d.AccessorProtocol {
		return nil, false
	}
	return d.slice, true
}

// Resolve builds the Descriptor of x for element type T.
//
// Accepted values:
//   - []T: direct access, Kind from KindOf.
//   - Uint8c when T is uint8: direct access, Kind Uint8Clamped.
//   - Array[T]: accessor protocol, Get/Set bound to x's methods.
//
// Errors:
//   - ErrElementType if x is array-like with a different element type.
//   - ErrNotArrayLike for everything else (including nil).
//
// Complexity: O(1).
func Resolve[T any](x any) (Descriptor[T], error) {
	switch v := x.(type) {
	case []T:
		return direct(v, KindOf(v)), nil
	case Uint8c:
		// Only meaningful for byte descriptors.
		if s, ok := any([]uint8(v)).([]T); ok {
			return direct(s, Uint8Clamped), nil
		}
	case Array[T]:
		return Descriptor[T]{
			Data:             v,
			Kind:             KindOf(v),
			AccessorProtocol: true,
			Get:              v.Get,
			Set:              v.Set,
			n:                v.Len(),
		}, nil
	}
	if isArrayLike(x) {
		var zero T
		return Descriptor[T]{}, fmt.Errorf("Resolve(%T as %T): %w", x, zero, ErrElementType)
	}
	return Descriptor[T]{}, fmt.Errorf("Resolve(%T): %w", x, ErrNotArrayLike)
}

// MustResolve is Resolve for callers that already validated x.
// It panics on error and is meant for tests and package-internal fixtures.
func MustResolve[T any](x any) Descriptor[T] {
	d, err := Resolve[T](x)
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the logical length of any array-like value: a slice of any
// element type, or a value with a Len() int method.
// Returns ErrNotArrayLike otherwise.
func Len(x any) (int, error) {
	if l, ok := x.(interface{ Len() int }); ok {
		return l.Len(), nil
	}
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv.Len(), nil
	}
	return 0, fmt.Errorf("Len(%T): %w", x, ErrNotArrayLike)
}

// direct wraps a slice into a direct-access descriptor.
func direct[T any](s []T, k Kind) Descriptor[T] {
	return Descriptor[T]{
		Data:  s,
		Kind:  k,
		Get:   func(idx int) T { return s[idx] },
		Set:   func(idx int, v T) { s[idx] = v },
		slice: s,
		n:     len(s),
	}
}

// isArrayLike reports whether x is a slice/array or exposes Get and Set
// methods, regardless of element type.
func isArrayLike(x any) bool {
	if x == nil {
		return false
	}
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return true
	}
	return rv.MethodByName("Get").IsValid() && rv.MethodByName("Set").IsValid()
}
