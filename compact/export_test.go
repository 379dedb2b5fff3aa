// SPDX-License-Identifier: MIT

package compact

// PopCount exposes the raw bit count for bookkeeping checks.
func (a *AdjacencyMatrix) PopCount() int { return a.popcount() }
