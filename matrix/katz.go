// SPDX-License-Identifier: MIT
// Package matrix - Katz similarity.
//
// Definition:
//   B = (I − β·A)⁻¹ − I,  A = 0/1 adjacency,  β = damping factor.
//   B[x][y] = Σ_{k≥1} β^k · (number of length-k walks x → y).
//
// Numeric policy:
//   - Inversion uses gonum's partially pivoted LU (mat.Dense.Inverse).
//   - A singular or numerically singular system (gonum reports a Condition
//     error) is fatal: ErrSingular is returned and no matrix is produced.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultKatzBeta is the damping factor β used when none is configured.
const DefaultKatzBeta = 0.005

// Katz computes the full Katz score matrix for damping factor beta.
//
// Implementation:
//   - Stage 1: validate beta (finite) and short-circuit the empty graph.
//   - Stage 2: form M = I − β·A from the 0/1 adjacency.
//   - Stage 3: invert M; map gonum's Condition error onto ErrSingular.
//   - Stage 4: subtract I in place and wrap as ScoreMatrix.
//
// Complexity: O(n³) time, O(n²) memory.
func (a *AdjacencyMatrix) Katz(beta float64) (*ScoreMatrix, error) {
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("%s: beta=%v: %w", opKatz, beta, ErrBadParameter)
	}
	n := a.n
	if n == 0 {
		return newScoreMatrix(0, nil), nil
	}

	// M = I − β·A
	m := a.Float64()
	m.Scale(-beta, m)
	for i := 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)+1)
	}

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%s: condition number %g: %w", opKatz, float64(cond), ErrSingular)
		}
		return nil, matrixErrorf(opKatz, err)
	}

	// B = M⁻¹ − I
	for i := 0; i < n; i++ {
		inv.Set(i, i, inv.At(i, i)-1)
	}

	return newScoreMatrix(n, &inv), nil
}
