// SPDX-License-Identifier: MIT

package compact

import (
	"fmt"
	"iter"
	"slices"
)

// Method tags for error context.
const (
	methodFromAdjacencyList = "FromAdjacencyList"
	methodFromEdges         = "FromEdges"
)

// FromAdjacencyList builds an N = len(list) matrix where list[i] holds the
// successors of vertex i.
func FromAdjacencyList(list [][]int) (*AdjacencyMatrix, error) {
	return FromAdjacencyListFunc(list, identityRow)
}

// FromAdjacencyListFunc is FromAdjacencyList over arbitrary elements: fn
// maps list[i] (and i) to the successor row of vertex i.
func FromAdjacencyListFunc[E any](list []E, fn func(e E, i int) ([]int, error)) (*AdjacencyMatrix, error) {
	if fn == nil {
		return nil, fmt.Errorf("%s: %w", methodFromAdjacencyList, ErrNilCallback)
	}
	rows := make([][]int, len(list))
	for i, e := range list {
		row, err := fn(e, i)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", methodFromAdjacencyList, i, err)
		}
		rows[i] = row
	}
	return fromRows(rows)
}

// FromAdjacencyListSeq pulls rows from seq; N is the number of rows pulled.
func FromAdjacencyListSeq(seq iter.Seq[[]int]) (*AdjacencyMatrix, error) {
	return FromAdjacencyListSeqFunc(seq, identityRow)
}

// FromAdjacencyListSeqFunc pulls elements from seq and maps each through fn.
func FromAdjacencyListSeqFunc[E any](seq iter.Seq[E], fn func(e E, i int) ([]int, error)) (*AdjacencyMatrix, error) {
	if fn == nil {
		return nil, fmt.Errorf("%s: %w", methodFromAdjacencyList, ErrNilCallback)
	}
	var rows [][]int
	i := 0
	for e := range seq {
		row, err := fn(e, i)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", methodFromAdjacencyList, i, err)
		}
		rows = append(rows, row)
		i++
	}
	return fromRows(rows)
}

// fromRows allocates len(rows) vertices and adds every row entry.
func fromRows(rows [][]int) (*AdjacencyMatrix, error) {
	a, err := NewAdjacencyMatrix(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for _, j := range row {
			if err = a.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", methodFromAdjacencyList, err)
			}
		}
	}
	return a, nil
}

// FromEdges builds an n-vertex matrix from (i, j) pairs. Entries beyond the
// first two are ignored; shorter entries fail with ErrNotEdge.
func FromEdges(n int, edges [][]int) (*AdjacencyMatrix, error) {
	return FromEdgesFunc(n, edges, identityRow)
}

// FromEdgesFunc maps each element through fn before reading it as an edge.
func FromEdgesFunc[E any](n int, edges []E, fn func(e E, k int) ([]int, error)) (*AdjacencyMatrix, error) {
	return FromEdgesSeqFunc(n, slices.Values(edges), fn)
}

// FromEdgesSeq pulls (i, j) pairs from seq.
func FromEdgesSeq(n int, seq iter.Seq[[]int]) (*AdjacencyMatrix, error) {
	return FromEdgesSeqFunc(n, seq, identityRow)
}

// FromEdgesSeqFunc pulls elements from seq and maps each through fn.
func FromEdgesSeqFunc[E any](n int, seq iter.Seq[E], fn func(e E, k int) ([]int, error)) (*AdjacencyMatrix, error) {
	if fn == nil {
		return nil, fmt.Errorf("%s: %w", methodFromEdges, ErrNilCallback)
	}
	a, err := NewAdjacencyMatrix(n)
	if err != nil {
		return nil, err
	}
	k := 0
	for e := range seq {
		edge, err := fn(e, k)
		if err != nil {
			return nil, fmt.Errorf("%s: edge %d: %w", methodFromEdges, k, err)
		}
		if len(edge) < 2 {
			return nil, fmt.Errorf("%s: edge %d %v: %w", methodFromEdges, k, edge, ErrNotEdge)
		}
		if err = a.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("%s: edge %d: %w", methodFromEdges, k, err)
		}
		k++
	}
	return a, nil
}

func identityRow(r []int, _ int) ([]int, error) { return r, nil }
