// SPDX-License-Identifier: MIT

package compact

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// wordBits is the number of bits per storage word.
const wordBits = 64

// AdjacencyMatrix is a directed graph over vertices 0..N-1 with one bit per
// possible edge.
type AdjacencyMatrix struct {
	n     int      // vertex count, fixed
	m     int      // edge count == popcount(words)
	words []uint64 // row-major bit matrix, len == ceil(n*n/64)
}

// NewAdjacencyMatrix returns an edgeless matrix over n vertices.
// Returns ErrNegativeVertexCount if n < 0 and ErrTooManyVertices if n*n
// does not fit in an int.
func NewAdjacencyMatrix(n int) (*AdjacencyMatrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacencyMatrix(%d): %w", n, ErrNegativeVertexCount)
	}
	if n > 0 && n > math.MaxInt/n {
		return nil, fmt.Errorf("NewAdjacencyMatrix(%d): %w", n, ErrTooManyVertices)
	}
	cells := n * n
	nw := cells / wordBits
	if cells%wordBits != 0 {
		nw++
	}
	return &AdjacencyMatrix{n: n, words: make([]uint64, nw)}, nil
}

// NVertices returns N.
func (a *AdjacencyMatrix) NVertices() int { return a.n }

// NEdges returns the number of edges.
func (a *AdjacencyMatrix) NEdges() int { return a.m }

// loc returns the word index and bit mask for (i, j).
func (a *AdjacencyMatrix) loc(i, j int) (int, uint64) {
	idx := i*a.n + j
	return idx / wordBits, 1 << (uint(idx) % wordBits)
}

// bit reports whether (i, j) is set. Indices are trusted.
func (a *AdjacencyMatrix) bit(i, j int) bool {
	w, mask := a.loc(i, j)
	return a.words[w]&mask != 0
}

// checkVertex validates a single vertex index.
func (a *AdjacencyMatrix) checkVertex(method string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s: vertex %d: %w", method, v, ErrInvalidVertex)
	}
	if v >= a.n {
		return fmt.Errorf("%s: vertex %d >= %d: %w", method, v, a.n, ErrVertexOutOfRange)
	}
	return nil
}

// checkPair validates both endpoints of an edge.
func (a *AdjacencyMatrix) checkPair(method string, i, j int) error {
	if err := a.checkVertex(method, i); err != nil {
		return err
	}
	return a.checkVertex(method, j)
}

// AddEdge adds the directed edge i→j. Adding an existing edge is a no-op.
// Returns ErrInvalidVertex or ErrVertexOutOfRange for bad indices.
// Complexity: O(1).
func (a *AdjacencyMatrix) AddEdge(i, j int) error {
	if err := a.checkPair("AddEdge", i, j); err != nil {
		return err
	}
	w, mask := a.loc(i, j)
	if a.words[w]&mask == 0 {
		a.words[w] |= mask
		a.m++
	}
	return nil
}

// RemoveEdge removes the directed edge i→j. Removing a missing edge is a
// no-op.
// Complexity: O(1).
func (a *AdjacencyMatrix) RemoveEdge(i, j int) error {
	if err := a.checkPair("RemoveEdge", i, j); err != nil {
		return err
	}
	w, mask := a.loc(i, j)
	if a.words[w]&mask != 0 {
		a.words[w] &^= mask
		a.m--
	}
	return nil
}

// HasEdge reports whether i→j exists.
func (a *AdjacencyMatrix) HasEdge(i, j int) (bool, error) {
	if err := a.checkPair("HasEdge", i, j); err != nil {
		return false, err
	}
	return a.bit(i, j), nil
}

// OutDegree returns the number of edges leaving i.
// Complexity: O(N).
func (a *AdjacencyMatrix) OutDegree(i int) (int, error) {
	if err := a.checkVertex("OutDegree", i); err != nil {
		return 0, err
	}
	deg := 0
	for j := 0; j < a.n; j++ {
		if a.bit(i, j) {
			deg++
		}
	}
	return deg, nil
}

// InDegree returns the number of edges entering j.
// Complexity: O(N).
func (a *AdjacencyMatrix) InDegree(j int) (int, error) {
	if err := a.checkVertex("InDegree", j); err != nil {
		return 0, err
	}
	deg := 0
	for i := 0; i < a.n; i++ {
		if a.bit(i, j) {
			deg++
		}
	}
	return deg, nil
}

// OutEdges returns the successors of i in ascending order.
func (a *AdjacencyMatrix) OutEdges(i int) ([]int, error) {
	if err := a.checkVertex("OutEdges", i); err != nil {
		return nil, err
	}
	return a.row(i), nil
}

// InEdges returns the predecessors of j in ascending order.
func (a *AdjacencyMatrix) InEdges(j int) ([]int, error) {
	if err := a.checkVertex("InEdges", j); err != nil {
		return nil, err
	}
	out := []int{}
	for i := 0; i < a.n; i++ {
		if a.bit(i, j) {
			out = append(out, i)
		}
	}
	return out, nil
}

// row lists the set columns of row i. Never nil.
func (a *AdjacencyMatrix) row(i int) []int {
	out := []int{}
	for j := 0; j < a.n; j++ {
		if a.bit(i, j) {
			out = append(out, j)
		}
	}
	return out
}

// Edges returns every edge as an (i, j) pair in row-major order.
// Complexity: O(N²).
func (a *AdjacencyMatrix) Edges() [][2]int {
	out := make([][2]int, 0, a.m)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if a.bit(i, j) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// ToAdjacencyList returns, for each vertex in order, its successors in
// ascending order.
// Complexity: O(N²).
func (a *AdjacencyMatrix) ToAdjacencyList() [][]int {
	out := make([][]int, a.n)
	for i := range out {
		out[i] = a.row(i)
	}
	return out
}

// Clone returns an independent copy.
func (a *AdjacencyMatrix) Clone() *AdjacencyMatrix {
	words := make([]uint64, len(a.words))
	copy(words, a.words)
	return &AdjacencyMatrix{n: a.n, m: a.m, words: words}
}

// ToDense exports the matrix as a row-major N*N slice of 0/1 values.
func (a *AdjacencyMatrix) ToDense() []float64 {
	out := make([]float64, a.n*a.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if a.bit(i, j) {
				out[i*a.n+j] = 1
			}
		}
	}
	return out
}

// popcount recounts the set bits; used to check the NEdges bookkeeping.
func (a *AdjacencyMatrix) popcount() int {
	c := 0
	for _, w := range a.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// String renders the matrix as N lines of space-separated 0/1 cells.
func (a *AdjacencyMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if a.bit(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if i < a.n-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
