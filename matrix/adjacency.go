// SPDX-License-Identifier: MIT
// Package matrix - dense boolean adjacency.
//
// Layout:
//   - cells holds n*n booleans in row-major order; cell (i, j) sits at i*n + j.
//   - Row i = outgoing connections of i; column i = incoming connections of i.
//   - Size is fixed at construction and never changes.
//
// AI-Hints:
//   - Out-degree scans one contiguous row; in-degree strides by n down a column.
//   - Connect is meant for the construction phase only; once a Graph owns the
//     matrix it is treated as read-only and may be shared freely.

package matrix

import "gonum.org/v1/gonum/mat"

// Pair is an ordered pair of vertex indices (From → To).
type Pair struct {
	From int
	To   int
}

// AdjacencyMatrix is a dense n×n boolean connectivity matrix.
type AdjacencyMatrix struct {
	n     int    // vertex count (matrix dimension)
	cells []bool // row-major, len == n*n
	edges int    // number of set cells
}

// NewAdjacency allocates an n×n matrix with no edges.
// n == 0 is legal and yields an empty matrix.
// Complexity: O(n²) time and memory.
func NewAdjacency(n int) (*AdjacencyMatrix, error) {
	if n < 0 {
		return nil, matrixErrorf(opNewAdj, ErrInvalidSize)
	}

	return &AdjacencyMatrix{n: n, cells: make([]bool, n*n)}, nil
}

// Size returns the vertex count n.
func (a *AdjacencyMatrix) Size() int { return a.n }

// EdgeCount returns the number of directed edges (set cells).
func (a *AdjacencyMatrix) EdgeCount() int { return a.edges }

// rowOffset returns the flat offset of row i.
func (a *AdjacencyMatrix) rowOffset(i int) int { return i * a.n }

// inRange reports whether i is a valid vertex index.
func (a *AdjacencyMatrix) inRange(i int) bool { return i >= 0 && i < a.n }

// Connect sets the directed edge from → to. Setting an existing edge is a no-op.
// Complexity: O(1).
func (a *AdjacencyMatrix) Connect(from, to int) error {
	if !a.inRange(from) || !a.inRange(to) {
		return indexErrorf(opConnect, from, to, a.n)
	}
	cell := a.rowOffset(from) + to
	if !a.cells[cell] {
		a.cells[cell] = true
		a.edges++
	}

	return nil
}

// IsConnected reports whether the directed edge from → to exists.
// Complexity: O(1).
func (a *AdjacencyMatrix) IsConnected(from, to int) (bool, error) {
	if !a.inRange(from) || !a.inRange(to) {
		return false, indexErrorf(opConnect, from, to, a.n)
	}

	return a.cells[a.rowOffset(from)+to], nil
}

// InDegree returns Σ_i A[i][v], the number of edges entering v.
// Complexity: O(n).
func (a *AdjacencyMatrix) InDegree(v int) (int, error) {
	if !a.inRange(v) {
		return 0, indexErrorf(opDegree, v, v, a.n)
	}

	return a.inDegree(v), nil
}

// OutDegree returns Σ_j A[v][j], the number of edges leaving v.
// Complexity: O(n).
func (a *AdjacencyMatrix) OutDegree(v int) (int, error) {
	if !a.inRange(v) {
		return 0, indexErrorf(opDegree, v, v, a.n)
	}

	return a.outDegree(v), nil
}

// inDegree walks column v. Caller guarantees 0 ≤ v < n.
func (a *AdjacencyMatrix) inDegree(v int) int {
	total := 0
	for i := 0; i < a.n; i++ {
		if a.cells[a.rowOffset(i)+v] {
			total++
		}
	}

	return total
}

// outDegree walks row v. Caller guarantees 0 ≤ v < n.
func (a *AdjacencyMatrix) outDegree(v int) int {
	total := 0
	row := a.cells[a.rowOffset(v) : a.rowOffset(v)+a.n]
	for _, set := range row {
		if set {
			total++
		}
	}

	return total
}

// Edges returns every directed edge in row-major order (by From, then To).
// The slice is freshly allocated; callers may keep it.
// Complexity: O(n²).
func (a *AdjacencyMatrix) Edges() []Pair {
	out := make([]Pair, 0, a.edges)
	for i := 0; i < a.n; i++ {
		base := a.rowOffset(i)
		for j := 0; j < a.n; j++ {
			if a.cells[base+j] {
				out = append(out, Pair{From: i, To: j})
			}
		}
	}

	return out
}

// Float64 returns the adjacency as a 0.0/1.0 gonum matrix in the same
// row-major orientation (row i = outgoing edges of i).
// Returns nil for an empty matrix, which gonum cannot represent.
// Complexity: O(n²).
func (a *AdjacencyMatrix) Float64() *mat.Dense {
	if a.n == 0 {
		return nil
	}
	data := make([]float64, len(a.cells))
	for k, set := range a.cells {
		if set {
			data[k] = 1
		}
	}

	return mat.NewDense(a.n, a.n, data)
}
