// SPDX-License-Identifier: MIT
// Package matrix - local (neighbourhood) similarity metrics.
//
// Every metric here is defined over shared PREDECESSORS: z is a common
// neighbour of (x, y) iff A[z][x] ∧ A[z][y]. Only one matrix dimension is
// scanned per call, so nothing is cached.
//
// Two formulas are kept exactly as the downstream feature models were
// trained on them:
//   - Sørensen normalises by OUT-degree although the numerator counts
//     predecessors.
//   - Adamic–Adar sums ln(in_degree(z)) directly, not 1/ln(in_degree(z)).
//
// Division by zero follows IEEE-754 (NaN / ±Inf) and is not special-cased.

package matrix

import "math"

// checkPair validates both indices under the shared pair tag.
func (a *AdjacencyMatrix) checkPair(x, y int) error {
	if !a.inRange(x) || !a.inRange(y) {
		return indexErrorf(opPair, x, y, a.n)
	}

	return nil
}

// shares reports whether z points into both x and y.
func (a *AdjacencyMatrix) shares(z, x, y int) bool {
	row := a.rowOffset(z)

	return a.cells[row+x] && a.cells[row+y]
}

// commonNeighbours counts shared predecessors. Caller validates indices.
func (a *AdjacencyMatrix) commonNeighbours(x, y int) int {
	total := 0
	for z := 0; z < a.n; z++ {
		if a.shares(z, x, y) {
			total++
		}
	}

	return total
}

// CommonNeighbourCount returns |{z : A[z][x] ∧ A[z][y]}|.
// Symmetric in (x, y); CommonNeighbourCount(x, x) == InDegree(x).
// Complexity: O(n).
func (a *AdjacencyMatrix) CommonNeighbourCount(x, y int) (int, error) {
	if err := a.checkPair(x, y); err != nil {
		return 0, err
	}

	return a.commonNeighbours(x, y), nil
}

// SaltonMetric returns cn(x, y) / sqrt(in(x) · in(y)).
// Complexity: O(n).
func (a *AdjacencyMatrix) SaltonMetric(x, y int) (float64, error) {
	if err := a.checkPair(x, y); err != nil {
		return 0, err
	}
	common := float64(a.commonNeighbours(x, y))
	dx := float64(a.inDegree(x))
	dy := float64(a.inDegree(y))

	return common / math.Sqrt(dx*dy), nil
}

// SorensenMetric returns cn(x, y) / (out(x) + out(y)).
// Complexity: O(n).
func (a *AdjacencyMatrix) SorensenMetric(x, y int) (float64, error) {
	if err := a.checkPair(x, y); err != nil {
		return 0, err
	}
	common := float64(a.commonNeighbours(x, y))
	dx := float64(a.outDegree(x))
	dy := float64(a.outDegree(y))

	return common / (dx + dy), nil
}

// AdamicAdarMetric returns Σ ln(in(z)) over shared predecessors z.
// Complexity: O(n) plus O(n) per shared predecessor.
func (a *AdjacencyMatrix) AdamicAdarMetric(x, y int) (float64, error) {
	if err := a.checkPair(x, y); err != nil {
		return 0, err
	}
	total := 0.0
	for z := 0; z < a.n; z++ {
		if a.shares(z, x, y) {
			total += math.Log(float64(a.inDegree(z)))
		}
	}

	return total, nil
}

// RusselRaoMetric returns cn(x, y) / n.
// Complexity: O(n).
func (a *AdjacencyMatrix) RusselRaoMetric(x, y int) (float64, error) {
	if err := a.checkPair(x, y); err != nil {
		return 0, err
	}

	return float64(a.commonNeighbours(x, y)) / float64(a.n), nil
}

// ResourceAllocationMetric returns Σ 1/in(z) over shared predecessors z.
// Complexity: O(n) plus O(n) per shared predecessor.
func (a *AdjacencyMatrix) ResourceAllocationMetric(x, y int) (float64, error) {
	if err := a.checkPair(x, y); err != nil {
		return 0, err
	}
	total := 0.0
	for z := 0; z < a.n; z++ {
		if a.shares(z, x, y) {
			total += 1.0 / float64(a.inDegree(z))
		}
	}

	return total, nil
}
