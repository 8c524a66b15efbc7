// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ScoreMatrix is an immutable n×n table of pairwise scores produced by a
// global metric. Score(x, y) is the score of the ordered pair (x, y).
type ScoreMatrix struct {
	n    int
	data *mat.Dense // nil when n == 0
}

// newScoreMatrix takes ownership of d; d must be n×n (or nil with n == 0).
func newScoreMatrix(n int, d *mat.Dense) *ScoreMatrix {
	return &ScoreMatrix{n: n, data: d}
}

// NewScoreMatrix copies a row-major slice of n*n values into a ScoreMatrix.
// Mostly useful for fixtures and for callers that precompute scores elsewhere.
func NewScoreMatrix(n int, rowMajor []float64) (*ScoreMatrix, error) {
	if n < 0 || len(rowMajor) != n*n {
		return nil, matrixErrorf(opNewScore, ErrInvalidSize)
	}
	if n == 0 {
		return newScoreMatrix(0, nil), nil
	}
	data := make([]float64, len(rowMajor))
	copy(data, rowMajor)

	return newScoreMatrix(n, mat.NewDense(n, n, data)), nil
}

// Size returns the dimension n.
func (s *ScoreMatrix) Size() int { return s.n }

// Score returns the score of (x, y).
// Complexity: O(1).
func (s *ScoreMatrix) Score(x, y int) (float64, error) {
	if x < 0 || x >= s.n || y < 0 || y >= s.n {
		return 0, indexErrorf(opScore, x, y, s.n)
	}

	return s.data.At(x, y), nil
}

// Row returns a copy of row x: the scores of (x, y) for every y.
func (s *ScoreMatrix) Row(x int) ([]float64, error) {
	if x < 0 || x >= s.n {
		return nil, indexErrorf(opScore, x, 0, s.n)
	}

	return mat.Row(nil, x, s.data), nil
}
