// SPDX-License-Identifier: MIT
// Package core: label-keyed similarity queries.
//
// The six local metrics are recomputed on every call straight from the
// adjacency (one O(n) column scan each). Katz and SimRank read from the
// memoised score matrices, which are built on first use.
//
// Every query fails with ErrUndefinedVertex when either label is unknown,
// before any computation is attempted.

package core

// LinkScores bundles every topological feature of one ordered pair.
type LinkScores struct {
	CommonNeighbours   int
	Salton             float64
	Sorensen           float64
	AdamicAdar         float64
	RusselRao          float64
	ResourceAllocation float64
	Katz               float64
	SimRank            float64
}

// CommonNeighbours returns the number of vertices with an edge into both a and b.
func (g *Graph) CommonNeighbours(a, b string) (int, error) {
	x, y, err := g.resolve(a, b)
	if err != nil {
		return 0, err
	}

	return g.adj.CommonNeighbourCount(x, y)
}

// Salton returns cn(a, b) / sqrt(in(a) · in(b)).
func (g *Graph) Salton(a, b string) (float64, error) {
	x, y, err := g.resolve(a, b)
	if err != nil {
		return 0, err
	}

	return g.adj.SaltonMetric(x, y)
}

// Sorensen returns cn(a, b) / (out(a) + out(b)).
func (g *Graph) Sorensen(a, b string) (float64, error) {
	x, y, err := g.resolve(a, b)
	if err != nil {
		return 0, err
	}

	return g.adj.SorensenMetric(x, y)
}

// AdamicAdar returns Σ ln(in(z)) over the shared predecessors z of a and b.
func (g *Graph) AdamicAdar(a, b string) (float64, error) {
	x, y, err := g.resolve(a, b)
	if err != nil {
		return 0, err
	}

	return g.adj.AdamicAdarMetric(x, y)
}

// RusselRao returns cn(a, b) / n.
func (g *Graph) RusselRao(a, b string) (float64, error) {
	x, y, err := g.resolve(a, b)
	if err != nil {
		return 0, err
	}

	return g.adj.RusselRaoMetric(x, y)
}

// ResourceAllocation returns Σ 1/in(z) over the shared predecessors z.
func (g *Graph) ResourceAllocation(a, b string) (float64, error) {
	x, y, err := g.resolve(a, b)
	if err != nil {
		return 0, err
	}

	return g.adj.ResourceAllocationMetric(x, y)
}

// Katz returns the Katz score of (a, b). The first call computes the
// whole matrix; a computation failure is returned on every later call too.
func (g *Graph) Katz(a, b string) (float64, error) {
	x, y, err := g.resolve(a, b)
	if err != nil {
		return 0, err
	}
	scores, err := g.katzScores()
	if err != nil {
		return 0, err
	}

	return scores.Score(x, y)
}

// SimRank returns the SimRank similarity of (a, b). The first call runs
// the fixed-point iteration for the whole graph.
func (g *Graph) SimRank(a, b string) (float64, error) {
	x, y, err := g.resolve(a, b)
	if err != nil {
		return 0, err
	}
	scores, err := g.simRankScores()
	if err != nil {
		return 0, err
	}

	return scores.Score(x, y)
}

// Scores computes all eight features of (a, b) in one call.
func (g *Graph) Scores(a, b string) (LinkScores, error) {
	var out LinkScores
	x, y, err := g.resolve(a, b)
	if err != nil {
		return out, err
	}
	katz, err := g.katzScores()
	if err != nil {
		return out, err
	}
	simRank, err := g.simRankScores()
	if err != nil {
		return out, err
	}

	if out.CommonNeighbours, err = g.adj.CommonNeighbourCount(x, y); err != nil {
		return out, err
	}
	if out.Salton, err = g.adj.SaltonMetric(x, y); err != nil {
		return out, err
	}
	if out.Sorensen, err = g.adj.SorensenMetric(x, y); err != nil {
		return out, err
	}
	if out.AdamicAdar, err = g.adj.AdamicAdarMetric(x, y); err != nil {
		return out, err
	}
	if out.RusselRao, err = g.adj.RusselRaoMetric(x, y); err != nil {
		return out, err
	}
	if out.ResourceAllocation, err = g.adj.ResourceAllocationMetric(x, y); err != nil {
		return out, err
	}
	if out.Katz, err = katz.Score(x, y); err != nil {
		return out, err
	}
	if out.SimRank, err = simRank.Score(x, y); err != nil {
		return out, err
	}

	return out, nil
}
