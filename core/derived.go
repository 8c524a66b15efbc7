// SPDX-License-Identifier: MIT
// Package core: compute-once cells for the derived score matrices.
//
// Each cell runs its kernel at most once per Graph, no matter how many
// goroutines race on first access; losers block until the winner finishes
// and then observe the same matrix (or the same error). Nothing is ever
// invalidated because the Graph cannot change.

package core

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gml4tdm/linkfeatures/matrix"
)

// derived memoises one global score matrix together with its error.
type derived struct {
	once   sync.Once
	scores *matrix.ScoreMatrix
	err    error
}

// katzScores returns the memoised Katz matrix, computing it on first use.
func (g *Graph) katzScores() (*matrix.ScoreMatrix, error) {
	g.katz.once.Do(func() {
		start := time.Now()
		scores, err := g.adj.Katz(g.cfg.katzBeta)
		elapsed := time.Since(start)
		if err != nil {
			err = fmt.Errorf("core: katz matrix: %w", err)
		}
		g.katz.scores, g.katz.err = scores, err

		g.cfg.logger.Debug("katz matrix computed",
			"vertices", g.VertexCount(),
			"beta", g.cfg.katzBeta,
			"elapsed", elapsed,
			"error", err,
		)
		if g.cfg.observer != nil {
			g.cfg.observer.KatzComputed(g.VertexCount(), elapsed, err)
		}
	})

	return g.katz.scores, g.katz.err
}

// simRankScores returns the memoised SimRank matrix, computing it on first use.
func (g *Graph) simRankScores() (*matrix.ScoreMatrix, error) {
	g.simRank.once.Do(func() {
		start := time.Now()
		scores, stats, err := g.adj.SimRank(g.cfg.simRank)
		elapsed := time.Since(start)
		if err != nil {
			err = fmt.Errorf("core: simrank matrix: %w", err)
		}
		g.simRank.scores, g.simRank.err = scores, err

		g.cfg.logger.Debug("simrank matrix computed",
			"vertices", g.VertexCount(),
			"iterations", stats.Iterations,
			"delta", stats.Delta,
			"elapsed", elapsed,
			"error", err,
		)
		if g.cfg.observer != nil {
			g.cfg.observer.SimRankComputed(g.VertexCount(), elapsed, stats, err)
		}
	})

	return g.simRank.scores, g.simRank.err
}

// Precompute forces both derived matrices so that a fatal numeric failure
// (matrix.ErrSingular, matrix.ErrNonConvergence) surfaces before any pair
// is scored. Both kernels are attempted; their errors are joined.
func (g *Graph) Precompute() error {
	_, katzErr := g.katzScores()
	_, simErr := g.simRankScores()

	return errors.Join(katzErr, simErr)
}
