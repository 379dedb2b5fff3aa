// SPDX-License-Identifier: MIT

package circular

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvstride/accessor"
)

// jsonType is the "type" tag of the serialized form.
const jsonType = "circular-buffer"

// Buffer is a fixed-capacity FIFO ring. Build one with New or FromArray; the
// zero value has no capacity and ignores pushes.
type Buffer[T any] struct {
	d      accessor.Descriptor[T] // backing storage, len == length
	length int                    // capacity, never changes
	count  int                    // elements currently held, 0..length
	cursor int                    // slot of the most recent write; -1 when rewound
}

// New allocates a buffer holding up to capacity elements.
// Returns ErrInvalidCapacity if capacity <= 0.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrInvalidCapacity)
	}
	return &Buffer[T]{
		d:      accessor.MustResolve[T](make([]T, capacity)),
		length: capacity,
		cursor: -1,
	}, nil
}

// FromArray adopts buf (a []T or an accessor.Array[T]) as backing storage.
// The capacity is the length of buf. Existing contents are not considered
// pushed: the buffer starts empty (Count() == 0) and overwrites buf from
// index 0.
//
// Errors:
//   - accessor resolution errors for non-array values.
//   - ErrInvalidCapacity for an empty buf.
func FromArray[T any](buf any) (*Buffer[T], error) {
	d, err := accessor.Resolve[T](buf)
	if err != nil {
		return nil, fmt.Errorf("FromArray: %w", err)
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("FromArray(len=0): %w", ErrInvalidCapacity)
	}
	return &Buffer[T]{d: d, length: d.Len(), cursor: -1}, nil
}

// Len returns the capacity.
func (b *Buffer[T]) Len() int { return b.length }

// Count returns the number of elements currently held.
func (b *Buffer[T]) Count() int { return b.count }

// Full reports whether Count() == Len().
func (b *Buffer[T]) Full() bool { return b.count == b.length }

// Kind returns the data type of the backing storage.
func (b *Buffer[T]) Kind() accessor.Kind { return b.d.Kind }

// Push appends v. While filling it returns the zero value and false; once
// full it overwrites the oldest element and returns it with true.
// Complexity: O(1).
func (b *Buffer[T]) Push(v T) (evicted T, ok bool) {
	if b.length == 0 {
		return evicted, false
	}
	b.cursor = (b.cursor + 1) % b.length
	if b.count < b.length {
		b.d.Set(b.cursor, v)
		b.count++
		return evicted, false
	}
	evicted = b.d.Get(b.cursor)
	b.d.Set(b.cursor, v)
	return evicted, true
}

// Clear empties the buffer and rewinds the write cursor. Storage is kept.
func (b *Buffer[T]) Clear() {
	b.count = 0
	b.cursor = -1
}

// ToArray returns the held elements, oldest first.
// Complexity: O(Count()).
func (b *Buffer[T]) ToArray() []T {
	out := make([]T, b.count)
	if b.count < b.length {
		// Filling: slots 0..count-1 in write order.
		for k := range out {
			out[k] = b.d.Get(k)
		}
		return out
	}
	// Full: oldest element sits right after the cursor.
	for k := range out {
		out[k] = b.d.Get((b.cursor + 1 + k) % b.length)
	}
	return out
}

// All returns a snapshot sequence over ToArray().
func (b *Buffer[T]) All() iter.Seq[T] {
	return slices.Values(b.ToArray())
}

// bufferJSON is the serialized shape.
type bufferJSON struct {
	Type   string          `json:"type"`
	Length int             `json:"length"`
	Data   json.RawMessage `json:"data"`
}

// complexJSON is the element form of complex64 and complex128 values,
// which encoding/json cannot represent natively.
type complexJSON struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// encodeData marshals vals, mapping complex elements to complexJSON.
func encodeData[T any](vals []T) ([]byte, error) {
	switch vs := any(vals).(type) {
	case []complex128:
		out := make([]complexJSON, len(vs))
		for k, z := range vs {
			out[k] = complexJSON{Re: real(z), Im: imag(z)}
		}
		return json.Marshal(out)
	case []complex64:
		out := make([]complexJSON, len(vs))
		for k, z := range vs {
			out[k] = complexJSON{Re: float64(real(z)), Im: float64(imag(z))}
		}
		return json.Marshal(out)
	}
	return json.Marshal(vals)
}

// decodeData is the inverse of encodeData. A missing data field decodes to
// no elements.
func decodeData[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var zero T
	switch any(zero).(type) {
	case complex128, complex64:
		var zs []complexJSON
		if err := json.Unmarshal(raw, &zs); err != nil {
			return nil, err
		}
		out := make([]T, len(zs))
		for k, z := range zs {
			c := complex(z.Re, z.Im)
			if _, narrow := any(zero).(complex64); narrow {
				out[k] = any(complex64(c)).(T)
			} else {
				out[k] = any(c).(T)
			}
		}
		return out, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarshalJSON encodes {"type":"circular-buffer","length":cap,"data":[...]}.
// Complex elements are written as {"re":..,"im":..} objects.
func (b *Buffer[T]) MarshalJSON() ([]byte, error) {
	data, err := encodeData(b.ToArray())
	if err != nil {
		return nil, fmt.Errorf("MarshalJSON: %w", err)
	}
	return json.Marshal(bufferJSON{Type: jsonType, Length: b.length, Data: data})
}

// UnmarshalJSON restores a buffer from its JSON form. The data elements are
// pushed in order, so Count() == len(data) afterwards.
//
// Errors:
//   - ErrBadJSON for a wrong "type", a non-positive "length", data elements
//     of the wrong type, or more data elements than "length".
func (b *Buffer[T]) UnmarshalJSON(raw []byte) error {
	var doc bufferJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("UnmarshalJSON: %w: %w", ErrBadJSON, err)
	}
	switch {
	case doc.Type != jsonType:
		return fmt.Errorf("UnmarshalJSON(type=%q): %w", doc.Type, ErrBadJSON)
	case doc.Length <= 0:
		return fmt.Errorf("UnmarshalJSON(length=%d): %w", doc.Length, ErrBadJSON)
	}
	data, err := decodeData[T](doc.Data)
	if err != nil {
		return fmt.Errorf("UnmarshalJSON(data): %w: %w", ErrBadJSON, err)
	}
	if len(data) > doc.Length {
		return fmt.Errorf("UnmarshalJSON(len(data)=%d > length=%d): %w", len(data), doc.Length, ErrBadJSON)
	}
	fresh, err := New[T](doc.Length)
	if err != nil {
		return err
	}
	for _, v := range data {
		fresh.Push(v)
	}
	*b = *fresh
	return nil
}
