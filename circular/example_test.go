// SPDX-License-Identifier: MIT

package circular_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvstride/circular"
)

// ExampleBuffer_Push shows eviction once the ring is full.
func ExampleBuffer_Push() {
	buf, _ := circular.New[string](3)
	for _, v := range []string{"foo", "bar", "beep", "boop"} {
		if old, ok := buf.Push(v); ok {
			fmt.Println("evicted", old)
		}
	}
	fmt.Println(buf.ToArray())
	// Output:
	// evicted foo
	// [bar beep boop]
}

// ExampleBuffer_IteratorN walks a full ring past its end.
func ExampleBuffer_IteratorN() {
	buf, _ := circular.New[int](2)
	buf.Push(1)
	buf.Push(2)
	it, _ := buf.IteratorN(5)
	for v := range it.Seq() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 2 1 2 1
}

// ExampleBuffer_MarshalJSON prints the serialized form.
func ExampleBuffer_MarshalJSON() {
	buf, _ := circular.New[float64](2)
	buf.Push(0.5)
	raw, _ := json.Marshal(buf)
	fmt.Println(string(raw))
	// Output: {"type":"circular-buffer","length":2,"data":[0.5]}
}
