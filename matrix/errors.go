// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidSize is returned when a negative matrix size is requested.
	ErrInvalidSize = errors.New("matrix: size must be >= 0")

	// ErrSingular is returned when (I − β·A) cannot be inverted for Katz scores.
	// The damping factor makes this rare; it is fatal for the graph.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNonConvergence is returned when SimRank exhausts its iteration cap
	// without reaching the tolerance. No partial result is returned.
	ErrNonConvergence = errors.New("matrix: simrank did not converge")

	// ErrBadParameter flags a damping factor, tolerance or iteration cap
	// outside its admissible range.
	ErrBadParameter = errors.New("matrix: invalid parameter")
)

// Operation tags for uniform error wrapping.
const (
	opConnect  = "Connect"
	opDegree   = "Degree"
	opPair     = "Pair"
	opKatz     = "Katz"
	opSimRank  = "SimRank"
	opScore    = "Score"
	opNewAdj   = "NewAdjacency"
	opNewScore = "NewScoreMatrix"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf reports an out-of-range index pair under the given tag.
func indexErrorf(tag string, x, y, n int) error {
	return fmt.Errorf("%s(%d,%d) with n=%d: %w", tag, x, y, n, ErrOutOfRange)
}
