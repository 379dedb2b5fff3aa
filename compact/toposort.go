// SPDX-License-Identifier: MIT

package compact

import (
	"context"
	"slices"
)

// Vertex visitation marks.
const (
	white uint8 = iota // not yet discovered
	gray               // on the DFS stack
	black              // fully explored
)

// frame is one DFS stack entry: the vertex and the next column to scan.
type frame struct {
	v    int
	next int
}

// Toposort computes a topological order of all vertices.
//
// MAIN DESCRIPTION:
//
//	Depth-first search restarted at every undiscovered vertex in increasing
//	index order, with successors scanned in increasing index order. The
//	first edge into a gray vertex stops the search.
//
// Implementation:
//
//   - Stage 1: explicit stack of frames instead of recursion, so deep
//     graphs cannot overflow the goroutine stack.
//   - Stage 2: on a back edge v→w, the cycle is the stack segment from w up
//     to v; each consecutive pair is a tree edge and v→w closes it.
//   - Stage 3: otherwise vertices are emitted in post-order and reversed.
//
// Returns (order, nil) for a DAG and (nil, cycle) otherwise.
//
// Complexity: O(N²) time, O(N) memory.
func (a *AdjacencyMatrix) Toposort() (order, cycle []int) {
	order, cycle, _ = a.ToposortContext(context.Background())
	return order, cycle
}

// ToposortContext is Toposort with cancellation; ctx is checked on every
// DFS step. On cancellation it returns ctx.Err() and no result.
func (a *AdjacencyMatrix) ToposortContext(ctx context.Context) (order, cycle []int, err error) {
	state := make([]uint8, a.n)
	order = make([]int, 0, a.n)
	stack := make([]frame, 0, a.n)

	for root := 0; root < a.n; root++ {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack = append(stack, frame{v: root})

		for len(stack) > 0 {
			if err = ctx.Err(); err != nil {
				return nil, nil, err
			}
			top := &stack[len(stack)-1]
			v := top.v
			descended := false
			for top.next < a.n {
				w := top.next
				top.next++
				if !a.bit(v, w) {
					continue
				}
				if state[w] == gray {
					return nil, cycleFrom(stack, w), nil
				}
				if state[w] == white {
					state[w] = gray
					stack = append(stack, frame{v: w})
					descended = true
					break
				}
			}
			if descended {
				continue
			}
			state[v] = black
			order = append(order, v)
			stack = stack[:len(stack)-1]
		}
	}

	slices.Reverse(order)
	return order, nil, nil
}

// cycleFrom returns the vertices of stack from w to the top.
func cycleFrom(stack []frame, w int) []int {
	k := len(stack) - 1
	for stack[k].v != w {
		k--
	}
	out := make([]int, 0, len(stack)-k)
	for _, f := range stack[k:] {
		out = append(out, f.v)
	}
	return out
}
