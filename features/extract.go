// SPDX-License-Identifier: MIT
// Package features: feature extraction.
//
// Concurrency:
//   - One task per source vertex; tasks write only to their own result slot,
//     so no locking is needed and concatenating slots in index order keeps
//     the output deterministic.
//   - The Graph is shared read-only; its derived matrices are already
//     computed by Stage 1.

package features

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/gml4tdm/linkfeatures/core"
	"github.com/gml4tdm/linkfeatures/dataset/semantic"
)

// Option configures Extract.
type Option func(*extractConfig)

type extractConfig struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers bounds the number of concurrently scored source vertices.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("features: WithWorkers(< 1)")
	}
	return func(c *extractConfig) { c.workers = n }
}

// WithLogger sets the logger for per-graph summaries. Nil means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *extractConfig) { c.logger = l }
}

func gatherOptions(opts ...Option) extractConfig {
	cfg := extractConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// rowResult holds everything one source vertex contributes.
type rowResult struct {
	edges      []Edge
	noSemantic []Edge
	features   []LinkFeature
}

// Extract builds the feature table of g against records.
//
// Complexity: O(n²) pairs, each O(n) for the local metrics, plus the one-off
// O(n³) Katz inversion and O(k·n³) SimRank iteration.
func Extract(ctx context.Context, g *core.Graph, records []semantic.Record, opts ...Option) (*GraphFeatureData, error) {
	cfg := gatherOptions(opts...)

	// Stage 1: global matrices.
	if err := g.Precompute(); err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	// Stage 2: pair scoring.
	nodes := g.Nodes()
	index := semantic.Index(records)
	rows := make([]rowResult, len(nodes))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for x := range nodes {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := scoreRow(g, nodes, x, index)
			if err != nil {
				return err
			}
			rows[x] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	out := &GraphFeatureData{
		Nodes:                           nodes,
		Edges:                           make([]Edge, 0, len(nodes)*max(len(nodes)-1, 0)),
		PairsWithoutSemanticFeatures:    []Edge{},
		PairsWithoutTopologicalFeatures: []Edge{},
		LinkFeatures:                    []LinkFeature{},
	}
	for _, r := range rows {
		out.Edges = append(out.Edges, r.edges...)
		out.PairsWithoutSemanticFeatures = append(out.PairsWithoutSemanticFeatures, r.noSemantic...)
		out.LinkFeatures = append(out.LinkFeatures, r.features...)
	}

	// Stage 3: semantic rows no pair visited.
	for key := range index {
		if key.From == key.To || !g.HasVertex(key.From) || !g.HasVertex(key.To) {
			out.PairsWithoutTopologicalFeatures = append(out.PairsWithoutTopologicalFeatures,
				Edge{From: key.From, To: key.To})
		}
	}
	sort.Slice(out.PairsWithoutTopologicalFeatures, func(i, j int) bool {
		a, b := out.PairsWithoutTopologicalFeatures[i], out.PairsWithoutTopologicalFeatures[j]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	cfg.logger.Debug("features extracted",
		"vertices", len(nodes),
		"link_features", len(out.LinkFeatures),
		"without_semantic", len(out.PairsWithoutSemanticFeatures),
		"without_topological", len(out.PairsWithoutTopologicalFeatures),
	)

	return out, nil
}

// scoreRow handles every pair with source nodes[x].
func scoreRow(g *core.Graph, nodes []string, x int, index map[semantic.Key]semantic.Record) (rowResult, error) {
	var res rowResult
	from := nodes[x]
	for y, to := range nodes {
		if x == y {
			continue
		}
		e := Edge{From: from, To: to}
		res.edges = append(res.edges, e)

		rec, ok := index[semantic.Key{From: from, To: to}]
		if !ok {
			res.noSemantic = append(res.noSemantic, e)
			continue
		}
		scores, err := g.Scores(from, to)
		if err != nil {
			return res, err
		}
		res.features = append(res.features, newLinkFeature(e, scores, rec.Cosine))
	}

	return res, nil
}
