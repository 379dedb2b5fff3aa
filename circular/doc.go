// Package circular implements a fixed-capacity ring buffer with FIFO
// eviction.
//
// The storage is resolved through package accessor, so a Buffer can own a
// freshly allocated slice (New) or adopt any slice or accessor-protocol
// array (FromArray), including complex arrays.
//
// States:
//
//   - filling: Count() < Len(); Push stores and returns ok=false.
//   - full:    Count() == Len(); Push overwrites the oldest element and
//     returns it with ok=true.
//
// Clear returns to the filling state and rewinds the write cursor, so a
// cleared buffer always refills from slot 0.
//
// Iterators are live views over the ring, not snapshots. An Iterator
// yields only while the buffer is full; the first Next that finds it not
// full ends the iterator permanently.
//
// JSON form (stable contract):
//
//	{"type":"circular-buffer","length":<capacity>,"data":[<oldest>...<newest>]}
//
// Complex elements are written as {"re":<real>,"im":<imag>} objects.
//
// A Buffer is not safe for concurrent use.
package circular
