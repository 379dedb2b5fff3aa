// SPDX-License-Identifier: MIT

// Package compact provides a bit-packed directed adjacency matrix.
//
// An AdjacencyMatrix over N vertices stores one bit per ordered pair (i, j)
// in ceil(N*N/64) uint64 words, row-major: the bit for (i, j) lives at
// linear index i*N+j. Edge mutation is idempotent and NEdges always equals
// the number of set bits.
//
// Beyond edge and degree queries the package offers:
//
//   - Toposort: iterative three-color DFS returning either a topological
//     order or the first cycle found.
//   - Bulk constructors from adjacency lists and edge lists, finite or
//     pulled from an iter.Seq, with optional element mapping callbacks.
//   - Small deterministic generators (Path, Cycle, Star, Complete) and a
//     seeded RandomDAG for tests and benchmarks.
//
// Vertex count is fixed at construction. The type is not safe for
// concurrent mutation.
//
// Complexity:
//
//   - AddEdge, RemoveEdge, HasEdge: O(1)
//   - degree and neighbor queries: O(N)
//   - Edges, ToAdjacencyList, Toposort: O(N²)
//   - Memory: O(N²/64) words
package compact
