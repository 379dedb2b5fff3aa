// SPDX-License-Identifier: MIT

package compact_test

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstride/accessor"
	"github.com/katalvlaran/lvstride/compact"
)

var scenarioList = [][]int{{1, 2}, {2}, {3}, {}}

var scenarioEdges = [][]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}}

func TestFromAdjacencyList(t *testing.T) {
	a, err := compact.FromAdjacencyList(scenarioList)
	require.NoError(t, err)
	assert.Equal(t, 4, a.NVertices())
	assert.Equal(t, [][]int{{1, 2}, {2}, {3}, {}}, a.ToAdjacencyList())

	_, err = compact.FromAdjacencyList([][]int{{1}, {2}})
	assert.ErrorIs(t, err, compact.ErrVertexOutOfRange)
}

func TestFromAdjacencyListSeq_CountsRows(t *testing.T) {
	a, err := compact.FromAdjacencyListSeq(slices.Values(scenarioList))
	require.NoError(t, err)
	assert.Equal(t, 4, a.NVertices())
	assert.Equal(t, 4, a.NEdges())

	empty, err := compact.FromAdjacencyListSeq(func(func([]int) bool) {})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NVertices())
}

// csvRow parses a "1,2" style row.
func csvRow(s string, _ int) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func TestFromAdjacencyListFunc(t *testing.T) {
	a, err := compact.FromAdjacencyListFunc([]string{"1,2", "2", "3", ""}, csvRow)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {2}, {3}, {}}, a.ToAdjacencyList())

	seqA, err := compact.FromAdjacencyListSeqFunc(slices.Values([]string{"1,2", "2", "3", ""}), csvRow)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), seqA.Edges())

	_, err = compact.FromAdjacencyListFunc([]string{"x"}, csvRow)
	assert.Error(t, err)

	_, err = compact.FromAdjacencyListFunc[string]([]string{"1"}, nil)
	assert.ErrorIs(t, err, compact.ErrNilCallback)
	_, err = compact.FromAdjacencyListSeqFunc[string](slices.Values([]string{"1"}), nil)
	assert.ErrorIs(t, err, compact.ErrNilCallback)
}

func TestFromEdges_Variants(t *testing.T) {
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}}

	a, err := compact.FromEdges(4, scenarioEdges)
	require.NoError(t, err)
	assert.Equal(t, want, a.Edges())

	b, err := compact.FromEdgesSeq(4, slices.Values(scenarioEdges))
	require.NoError(t, err)
	assert.Equal(t, want, b.Edges())

	type arc struct{ from, to int }
	arcs := []arc{{2, 3}, {0, 1}, {1, 2}, {0, 2}}
	toPair := func(e arc, _ int) ([]int, error) { return []int{e.from, e.to}, nil }

	c, err := compact.FromEdgesFunc(4, arcs, toPair)
	require.NoError(t, err)
	assert.Equal(t, want, c.Edges())

	d, err := compact.FromEdgesSeqFunc(4, slices.Values(arcs), toPair)
	require.NoError(t, err)
	assert.Equal(t, want, d.Edges())

	// Extra entries are ignored.
	e, err := compact.FromEdges(2, [][]int{{0, 1, 99}})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}}, e.Edges())
}

func TestFromEdges_Errors(t *testing.T) {
	_, err := compact.FromEdges(3, [][]int{{0, 1}, {2}})
	assert.ErrorIs(t, err, compact.ErrNotEdge)
	assert.ErrorIs(t, err, accessor.ErrType)

	_, err = compact.FromEdges(3, [][]int{{0, 3}})
	assert.ErrorIs(t, err, compact.ErrVertexOutOfRange)

	_, err = compact.FromEdges(-1, nil)
	assert.ErrorIs(t, err, compact.ErrNegativeVertexCount)

	boom := errors.New("boom")
	_, err = compact.FromEdgesFunc(2, []int{0}, func(int, int) ([]int, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	_, err = compact.FromEdgesSeqFunc[int](2, slices.Values([]int{0}), nil)
	assert.ErrorIs(t, err, compact.ErrNilCallback)
}

// TestFromEdgesSeq_Lazy stops pulling at the first bad element.
func TestFromEdgesSeq_Lazy(t *testing.T) {
	pulled := 0
	var seq iter.Seq[[]int] = func(yield func([]int) bool) {
		for _, e := range [][]int{{0, 1}, {7, 7}, {1, 0}} {
			pulled++
			if !yield(e) {
				return
			}
		}
	}
	_, err := compact.FromEdgesSeq(2, seq)
	assert.ErrorIs(t, err, compact.ErrVertexOutOfRange)
	assert.Equal(t, 2, pulled)
}
