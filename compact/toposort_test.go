// SPDX-License-Identifier: MIT

package compact_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstride/compact"
)

// assertTopological checks order is a permutation of 0..N-1 in which every
// edge points forward.
func assertTopological(t *testing.T, a *compact.AdjacencyMatrix, order []int) {
	t.Helper()
	require.Len(t, order, a.NVertices())
	pos := make([]int, a.NVertices())
	for i := range pos {
		pos[i] = -1
	}
	for k, v := range order {
		require.Equal(t, -1, pos[v], "vertex %d repeated", v)
		pos[v] = k
	}
	for _, e := range a.Edges() {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %v out of order", e)
	}
}

// assertCycle checks cycle is non-empty and closed: every consecutive pair,
// and last→first, is an edge.
func assertCycle(t *testing.T, a *compact.AdjacencyMatrix, cycle []int) {
	t.Helper()
	require.NotEmpty(t, cycle)
	for k := range cycle {
		from, to := cycle[k], cycle[(k+1)%len(cycle)]
		has, err := a.HasEdge(from, to)
		require.NoError(t, err)
		assert.True(t, has, "missing edge %d→%d in cycle %v", from, to, cycle)
	}
}

func TestToposort_RandomDAGs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(40)
		dag, err := compact.RandomDAG(n, rng.Float64(), rng)
		require.NoError(t, err)

		// Relabel through a random permutation so the order is not trivial.
		perm := rng.Perm(n)
		g, _ := compact.NewAdjacencyMatrix(n)
		for _, e := range dag.Edges() {
			require.NoError(t, g.AddEdge(perm[e[0]], perm[e[1]]))
		}

		order, cycle := g.Toposort()
		require.Nil(t, cycle)
		assertTopological(t, g, order)
	}
}

func TestToposort_CycleIsClosed(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][]int
		want  []int
	}{
		{"ring", 5, [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}, []int{0, 1, 2, 3, 4}},
		{"tail excluded", 3, [][]int{{0, 1}, {1, 2}, {2, 1}}, []int{1, 2}},
		{"self loop", 2, [][]int{{0, 1}, {1, 1}}, []int{1}},
		{"second component", 4, [][]int{{0, 1}, {2, 3}, {3, 2}}, []int{2, 3}},
		{"first found wins", 4, [][]int{{0, 1}, {1, 0}, {2, 3}, {3, 2}}, []int{0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := compact.FromEdges(tc.n, tc.edges)
			require.NoError(t, err)
			order, cycle := a.Toposort()
			assert.Nil(t, order)
			assert.Equal(t, tc.want, cycle)
			assertCycle(t, a, cycle)
		})
	}
}

func TestToposort_RandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cycles := 0
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(12)
		a, _ := compact.NewAdjacencyMatrix(n)
		for k := rng.Intn(2 * n); k > 0; k-- {
			require.NoError(t, a.AddEdge(rng.Intn(n), rng.Intn(n)))
		}
		order, cycle := a.Toposort()
		if cycle != nil {
			cycles++
			assert.Nil(t, order)
			assertCycle(t, a, cycle)
			continue
		}
		assertTopological(t, a, order)
	}
	assert.Positive(t, cycles)
}

// TestToposort_Deep runs a long path that would be deep recursion.
func TestToposort_Deep(t *testing.T) {
	const n = 3000
	a, err := compact.Path(n)
	require.NoError(t, err)
	order, cycle := a.Toposort()
	require.Nil(t, cycle)
	assert.Equal(t, 0, order[0])
	assert.Equal(t, n-1, order[n-1])
}

func TestToposortContext_Cancel(t *testing.T) {
	a, _ := compact.Path(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	order, cycle, err := a.ToposortContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, order)
	assert.Nil(t, cycle)

	order, cycle, err = a.ToposortContext(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cycle)
	assertTopological(t, a, order)
}
