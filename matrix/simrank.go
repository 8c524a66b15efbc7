// SPDX-License-Identifier: MIT
// Package matrix - SimRank similarity.
//
// Definition (matrix form):
//   Â       = A with every non-zero column scaled to sum 1 (zero columns stay 0).
//   S₀      = I
//   S_{k+1} = C · (Âᵗ · S_k · Â), then diag(S_{k+1}) := 1.
//   Stop when max|S_{k+1} − S_k| < tolerance.
//
// Two vertices are similar when their predecessors are similar. The diagonal
// reset keeps self-similarity at exactly 1.0 for every iteration.
//
// Divergence guard: if the tolerance is not reached within MaxIterations
// products, ErrNonConvergence is returned and the partial matrix is dropped.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SimRank defaults.
const (
	// DefaultSimRankDamping is the decay constant C.
	DefaultSimRankDamping = 0.9

	// DefaultSimRankTolerance is the max-norm convergence threshold.
	DefaultSimRankTolerance = 1e-4

	// DefaultSimRankMaxIterations caps the fixed-point iteration.
	DefaultSimRankMaxIterations = 1000
)

// SimRankParams configures the SimRank iteration.
type SimRankParams struct {
	// Damping is the decay constant C, in (0, 1].
	Damping float64

	// Tolerance is the entrywise max-norm threshold; must be > 0 and finite.
	Tolerance float64

	// MaxIterations is the number of products allowed before giving up; >= 1.
	MaxIterations int
}

// DefaultSimRankParams returns C=0.9, tolerance=1e-4, 1000 iterations.
func DefaultSimRankParams() SimRankParams {
	return SimRankParams{
		Damping:       DefaultSimRankDamping,
		Tolerance:     DefaultSimRankTolerance,
		MaxIterations: DefaultSimRankMaxIterations,
	}
}

// Validate reports ErrBadParameter for values outside their documented range.
func (p SimRankParams) Validate() error {
	if math.IsNaN(p.Damping) || p.Damping <= 0 || p.Damping > 1 {
		return fmt.Errorf("%s: damping=%v: %w", opSimRank, p.Damping, ErrBadParameter)
	}
	if math.IsNaN(p.Tolerance) || math.IsInf(p.Tolerance, 0) || p.Tolerance <= 0 {
		return fmt.Errorf("%s: tolerance=%v: %w", opSimRank, p.Tolerance, ErrBadParameter)
	}
	if p.MaxIterations < 1 {
		return fmt.Errorf("%s: max iterations=%d: %w", opSimRank, p.MaxIterations, ErrBadParameter)
	}

	return nil
}

// SimRankStats describes how the iteration ended.
type SimRankStats struct {
	// Iterations is the number of products computed.
	Iterations int

	// Delta is the max-norm change of the last iteration.
	Delta float64
}

// SimRank computes the full SimRank matrix.
//
// Implementation:
//   - Stage 1: validate params; the empty graph converges trivially.
//   - Stage 2: column-normalise the 0/1 adjacency.
//   - Stage 3: iterate S ← C·(Âᵗ·S·Â), reset the diagonal, measure the max-norm
//     step with floats.Distance(·, ·, +Inf).
//   - Stage 4: return on convergence; ErrNonConvergence once the cap is hit.
//
// Complexity: O(k·n³) time for k iterations, O(n²) memory.
func (a *AdjacencyMatrix) SimRank(p SimRankParams) (*ScoreMatrix, SimRankStats, error) {
	if err := p.Validate(); err != nil {
		return nil, SimRankStats{}, err
	}
	n := a.n
	if n == 0 {
		return newScoreMatrix(0, nil), SimRankStats{}, nil
	}

	norm := a.Float64()
	columnNormalize(norm)

	current := identity(n)
	next := mat.NewDense(n, n, nil)
	var left mat.Dense
	stats := SimRankStats{}
	for stats.Iterations < p.MaxIterations {
		stats.Iterations++

		left.Mul(norm.T(), current)
		next.Mul(&left, norm)
		next.Scale(p.Damping, next)
		for i := 0; i < n; i++ {
			next.Set(i, i, 1)
		}

		stats.Delta = floats.Distance(next.RawMatrix().Data, current.RawMatrix().Data, math.Inf(1))
		current, next = next, current
		if stats.Delta < p.Tolerance {
			return newScoreMatrix(n, current), stats, nil
		}
	}

	return nil, stats, fmt.Errorf("%s: %d iterations, last delta %g > %g: %w",
		opSimRank, stats.Iterations, stats.Delta, p.Tolerance, ErrNonConvergence)
}

// columnNormalize divides every column by its sum. A zero column is left as
// is (its sum is treated as 1).
func columnNormalize(m *mat.Dense) {
	rows, cols := m.Dims()
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += m.At(i, j)
		}
		if sum == 0 {
			continue
		}
		for i := 0; i < rows; i++ {
			m.Set(i, j, m.At(i, j)/sum)
		}
	}
}

// identity returns a freshly allocated n×n identity matrix.
func identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id
}
