// SPDX-License-Identifier: MIT

// Package accessor - complex number arrays.
//
// Complex128Array and Complex64Array view a real buffer as interleaved
// (re, im) pairs: element i occupies buf[2i] and buf[2i+1]. They are the
// canonical "exotic" arrays: they cannot be indexed directly and only
// speak the accessor protocol.

package accessor

import "fmt"

// Complex128Array is an accessor-protocol array of complex128 values stored
// over a []float64 buffer.
type Complex128Array struct {
	buf []float64
}

// Complex64Array is an accessor-protocol array of complex64 values stored
// over a []float32 buffer.
type Complex64Array struct {
	buf []float32
}

var (
	_ Array[complex128] = (*Complex128Array)(nil)
	_ Array[complex64]  = (*Complex64Array)(nil)
)

// NewComplex128Array views buf as len(buf)/2 complex values. The buffer is
// shared, not copied. Returns ErrOddLength if len(buf) is odd.
func NewComplex128Array(buf []float64) (*Complex128Array, error) {
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("NewComplex128Array(len=%d): %w", len(buf), ErrOddLength)
	}
	return &Complex128Array{buf: buf}, nil
}

// NewComplex64Array views buf as len(buf)/2 complex values. The buffer is
// shared, not copied. Returns ErrOddLength if len(buf) is odd.
func NewComplex64Array(buf []float32) (*Complex64Array, error) {
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("NewComplex64Array(len=%d): %w", len(buf), ErrOddLength)
	}
	return &Complex64Array{buf: buf}, nil
}

// Complex128ArrayOf allocates a fresh array holding vals.
func Complex128ArrayOf(vals ...complex128) *Complex128Array {
	a := &Complex128Array{buf: make([]float64, 2*len(vals))}
	for i, v := range vals {
		a.Set(i, v)
	}
	return a
}

// Complex64ArrayOf allocates a fresh array holding vals.
func Complex64ArrayOf(vals ...complex64) *Complex64Array {
	a := &Complex64Array{buf: make([]float32, 2*len(vals))}
	for i, v := range vals {
		a.Set(i, v)
	}
	return a
}

// Get returns element idx.
func (a *Complex128Array) Get(idx int) complex128 {
	return complex(a.buf[2*idx], a.buf[2*idx+1])
}

// Set stores v at idx.
func (a *Complex128Array) Set(idx int, v complex128) {
	a.buf[2*idx] = real(v)
	a.buf[2*idx+1] = imag(v)
}

// Len returns the number of complex elements.
func (a *Complex128Array) Len() int { return len(a.buf) / 2 }

// Buffer returns the interleaved backing buffer.
func (a *Complex128Array) Buffer() []float64 { return a.buf }

// Get returns element idx.
func (a *Complex64Array) Get(idx int) complex64 {
	return complex(a.buf[2*idx], a.buf[2*idx+1])
}

// Set stores v at idx.
func (a *Complex64Array) Set(idx int, v complex64) {
	a.buf[2*idx] = real(v)
	a.buf[2*idx+1] = imag(v)
}

// Len returns the number of complex elements.
func (a *Complex64Array) Len() int { return len(a.buf) / 2 }

// Buffer returns the interleaved backing buffer.
func (a *Complex64Array) Buffer() []float32 { return a.buf }
