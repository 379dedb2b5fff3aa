// SPDX-License-Identifier: MIT

// Package accessor - data type dispatch table.
//
// Purpose:
//   - Map every supported buffer type to a Kind, and every Kind to its
//     user-facing identifier.
//   - Keep the identifiers in one table; String, ParseKind and the text
//     codec all read from it.
//
// Determinism:
//   - KindOf is a pure type switch; no reflection, no allocation.

package accessor

import "fmt"

// Kind identifies the element type of a buffer.
type Kind uint8

// Supported kinds. The zero value is Generic.
const (
	Generic Kind = iota
	Float64
	Float32
	Int32
	Int16
	Int8
	Uint32
	Uint16
	Uint8
	Uint8Clamped
	Complex128
	Complex64
)

// kindNames is the dispatch table. Index = Kind.
var kindNames = [...]string{
	Generic:      "generic",
	Float64:      "float64",
	Float32:      "float32",
	Int32:        "int32",
	Int16:        "int16",
	Int8:         "int8",
	Uint32:       "uint32",
	Uint16:       "uint16",
	Uint8:        "uint8",
	Uint8Clamped: "uint8c",
	Complex128:   "complex128",
	Complex64:    "complex64",
}

// Kinds returns every supported kind in table order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// String returns the data type identifier, e.g. "float64" or "uint8c".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps an identifier back to its Kind.
// Returns ErrUnknownKind for anything outside the table.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return Generic, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("MarshalText(%d): %w", uint8(k), ErrUnknownKind)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// KindOf reports the data type of a buffer.
// Slices of the fixed-width numeric types map to their kind, Uint8c maps to
// Uint8Clamped, the complex arrays (and plain complex slices) map to the
// complex kinds, and everything else is Generic.
func KindOf(x any) Kind {
	switch x.(type) {
	case []float64:
		return Float64
	case []float32:
		return Float32
	case []int32:
		return Int32
	case []int16:
		return Int16
	case []int8:
		return Int8
	case []uint32:
		return Uint32
	case []uint16:
		return Uint16
	case []uint8:
		return Uint8
	case Uint8c:
		return Uint8Clamped
	case *Complex128Array, []complex128:
		return Complex128
	case *Complex64Array, []complex64:
		return Complex64
	default:
		return Generic
	}
}
