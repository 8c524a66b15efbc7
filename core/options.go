// SPDX-License-Identifier: MIT
// Package core: functional options for Graph construction.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs; query and
//     kernel code never panics.
//   - Defaults mirror the literal constants of the feature models:
//     β = 0.005, C = 0.9, tolerance = 1e-4, 1000 iterations.
//   - Later options override earlier ones.

package core

import (
	"log/slog"
	"math"
	"time"

	"github.com/gml4tdm/linkfeatures/matrix"
)

// Observer receives timing and convergence data for the derived matrices.
// Implementations must be safe for concurrent use.
type Observer interface {
	// KatzComputed is called once per Graph after the Katz matrix attempt.
	KatzComputed(vertices int, elapsed time.Duration, err error)

	// SimRankComputed is called once per Graph after the SimRank attempt.
	SimRankComputed(vertices int, elapsed time.Duration, stats matrix.SimRankStats, err error)
}

// Option configures a Graph before it is built.
type Option func(*config)

// config is the resolved option set.
type config struct {
	katzBeta float64
	simRank  matrix.SimRankParams
	logger   *slog.Logger
	observer Observer
}

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{
		katzBeta: matrix.DefaultKatzBeta,
		simRank:  matrix.DefaultSimRankParams(),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// WithKatzBeta sets the Katz damping factor β. Panics on NaN/±Inf.
func WithKatzBeta(beta float64) Option {
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		panic("core: WithKatzBeta(non-finite)")
	}
	return func(c *config) { c.katzBeta = beta }
}

// WithSimRankDamping sets the SimRank decay constant C ∈ (0, 1].
func WithSimRankDamping(damping float64) Option {
	if math.IsNaN(damping) || damping <= 0 || damping > 1 {
		panic("core: WithSimRankDamping out of (0, 1]")
	}
	return func(c *config) { c.simRank.Damping = damping }
}

// WithSimRankTolerance sets the max-norm convergence threshold (> 0).
func WithSimRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("core: WithSimRankTolerance must be finite and > 0")
	}
	return func(c *config) { c.simRank.Tolerance = tol }
}

// WithSimRankMaxIterations sets the SimRank iteration cap (>= 1).
func WithSimRankMaxIterations(k int) Option {
	if k < 1 {
		panic("core: WithSimRankMaxIterations(< 1)")
	}
	return func(c *config) { c.simRank.MaxIterations = k }
}

// WithLogger routes debug records about derived-matrix computation to l.
// A nil logger falls back to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithObserver registers o for derived-matrix timing. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("core: WithObserver(nil)")
	}
	return func(c *config) { c.observer = o }
}
