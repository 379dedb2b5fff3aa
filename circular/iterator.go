// SPDX-License-Identifier: MIT

package circular

import (
	"fmt"
	"iter"
	"math"
)

// Iterator walks a Buffer forward, wrapping around, re-reading the ring's
// current contents at every step.
//
// Every Next call requires a full buffer. The first call that finds the
// buffer not full (never filled, or emptied by Clear) ends the iterator for
// good, even if the buffer fills up again later.
type Iterator[T any] struct {
	b       *Buffer[T]
	limit   int  // maximum number of values to yield
	yielded int  // values yielded so far
	pos     int  // slot of the last yielded value
	started bool // first Next already happened
	done    bool // latched end state
}

// Iterator returns an unbounded iterator (math.MaxInt steps).
func (b *Buffer[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{b: b, limit: math.MaxInt}
}

// IteratorN returns an iterator that yields at most n values.
// Returns ErrInvalidCount if n < 0.
func (b *Buffer[T]) IteratorN(n int) (*Iterator[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("IteratorN(%d): %w", n, ErrInvalidCount)
	}
	return &Iterator[T]{b: b, limit: n}, nil
}

// Next returns the next value and true, or the zero value and false once
// the iterator is done.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	if it.b.length == 0 || !it.b.Full() {
		it.done = true
		return zero, false
	}
	if !it.started {
		it.started = true
		// Start right after the newest element, i.e. at the oldest.
		it.pos = it.b.cursor
	}
	if it.yielded >= it.limit {
		it.done = true
		return zero, false
	}
	it.yielded++
	it.pos = (it.pos + 1) % it.b.length
	return it.b.d.Get(it.pos), true
}

// Close ends the iteration; every later Next reports done.
func (it *Iterator[T]) Close() {
	it.started = true
	it.done = true
}

// Done reports whether the iterator has finished.
func (it *Iterator[T]) Done() bool { return it.done }

// Seq adapts the iterator to range-over-func. Breaking out of the loop
// leaves the iterator open at its current position.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
