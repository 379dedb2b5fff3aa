// SPDX-License-Identifier: MIT
// Package compact: deterministic and seeded graph generators.
//
// Contract:
//   - Vertices are 0..n-1; edges are emitted in ascending source order.
//   - Deterministic generators never consult an rng.
//   - RandomDAG only emits i→j with i < j, so its result is always acyclic
//     and 0..n-1 is a valid topological order.

package compact

import (
	"fmt"
	"math/rand"
)

// Method tags and minimum sizes.
const (
	methodPath      = "Path"
	methodCycle     = "Cycle"
	methodStar      = "Star"
	methodComplete  = "Complete"
	methodRandomDAG = "RandomDAG"

	minCycleNodes = 2
	minStarNodes  = 1
)

// Path returns the directed path 0→1→…→n-1.
func Path(n int) (*AdjacencyMatrix, error) {
	a, err := NewAdjacencyMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	for i := 0; i+1 < n; i++ {
		_ = a.AddEdge(i, i+1)
	}
	return a, nil
}

// Cycle returns the directed cycle 0→1→…→n-1→0. Requires n >= 2.
func Cycle(n int) (*AdjacencyMatrix, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	a, _ := NewAdjacencyMatrix(n)
	for i := 0; i < n; i++ {
		_ = a.AddEdge(i, (i+1)%n)
	}
	return a, nil
}

// Star returns hub 0 with spokes 0→i for i = 1..n-1. Requires n >= 1.
func Star(n int) (*AdjacencyMatrix, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	a, _ := NewAdjacencyMatrix(n)
	for i := 1; i < n; i++ {
		_ = a.AddEdge(0, i)
	}
	return a, nil
}

// Complete returns every edge i→j with i != j.
func Complete(n int) (*AdjacencyMatrix, error) {
	a, err := NewAdjacencyMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				_ = a.AddEdge(i, j)
			}
		}
	}
	return a, nil
}

// RandomDAG includes each forward edge i→j (i < j) independently with
// probability p, drawn from rng in row-major order.
//
// Errors: ErrNeedRandSource for a nil rng, ErrInvalidProbability for p
// outside [0, 1], ErrNegativeVertexCount for n < 0.
func RandomDAG(n int, p float64, rng *rand.Rand) (*AdjacencyMatrix, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomDAG, ErrNeedRandSource)
	}
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("%s: p=%g: %w", methodRandomDAG, p, ErrInvalidProbability)
	}
	a, err := NewAdjacencyMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomDAG, err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = a.AddEdge(i, j)
			}
		}
	}
	return a, nil
}
