// SPDX-License-Identifier: MIT
// Package core: the immutable, label-addressed Graph.
//
// Layout:
//   - index  maps label → dense vertex index (0..n-1, insertion order).
//   - labels maps index → label; index and labels are exact inverses.
//   - adj    is the owned n×n adjacency; it is never mutated after New.
//   - katz / simRank are compute-once cells for the derived matrices.
//
// Concurrency:
//   - Every method is safe for concurrent use; the only mutable state is the
//     two compute-once cells, each guarded by its own sync.Once.

package core

import (
	"fmt"

	"github.com/gml4tdm/linkfeatures/matrix"
)

// Edge is a directed edge between two vertex labels.
type Edge struct {
	From string
	To   string
}

// Graph is a write-once, read-many directed graph with pairwise
// similarity queries. Construct it with New or through builder.Builder.
type Graph struct {
	index  map[string]int
	labels []string
	adj    *matrix.AdjacencyMatrix
	cfg    config

	katz    derived
	simRank derived
}

// New builds a Graph from an ordered vertex list and an edge list.
//
// Implementation:
//   - Stage 1: index labels in the given order (ErrDuplicateVertex on repeats).
//   - Stage 2: resolve edges. Sources must be listed in labels
//     (ErrUndefinedVertex); a target that is not listed is appended as a new
//     vertex, in first-seen order. Repeated pairs fail with ErrDuplicateEdge.
//   - Stage 3: allocate the n×n adjacency and connect every edge.
//
// Complexity: O(n² + m) time, O(n² + m) memory.
func New(labels []string, edges []Edge, opts ...Option) (*Graph, error) {
	index := make(map[string]int, len(labels))
	order := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, dup := index[label]; dup {
			return nil, vertexErrorf(ErrDuplicateVertex, label)
		}
		index[label] = len(order)
		order = append(order, label)
	}
	registered := len(order)

	pairs := make([]matrix.Pair, 0, len(edges))
	seen := make(map[matrix.Pair]struct{}, len(edges))
	for _, e := range edges {
		from, ok := index[e.From]
		if !ok || from >= registered {
			return nil, vertexErrorf(ErrUndefinedVertex, e.From)
		}
		to, ok := index[e.To]
		if !ok {
			to = len(order)
			index[e.To] = to
			order = append(order, e.To)
		}
		p := matrix.Pair{From: from, To: to}
		if _, dup := seen[p]; dup {
			return nil, edgeErrorf(ErrDuplicateEdge, e.From, e.To)
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}

	adj, err := matrix.NewAdjacency(len(order))
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	for _, p := range pairs {
		if err = adj.Connect(p.From, p.To); err != nil {
			return nil, fmt.Errorf("core: %w", err)
		}
	}

	return &Graph{
		index:  index,
		labels: order,
		adj:    adj,
		cfg:    gatherOptions(opts...),
	}, nil
}

// Nodes returns all labels in index order. The slice is a fresh copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return len(g.labels) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.adj.EdgeCount() }

// HasVertex reports whether label is part of the graph.
func (g *Graph) HasVertex(label string) bool {
	_, ok := g.index[label]

	return ok
}

// Index returns the dense index of label.
func (g *Graph) Index(label string) (int, error) {
	i, ok := g.index[label]
	if !ok {
		return 0, vertexErrorf(ErrUndefinedVertex, label)
	}

	return i, nil
}

// Label returns the label at index i.
func (g *Graph) Label(i int) (string, error) {
	if i < 0 || i >= len(g.labels) {
		return "", fmt.Errorf("core: label %d of %d: %w", i, len(g.labels), matrix.ErrOutOfRange)
	}

	return g.labels[i], nil
}

// Edges returns every edge as a label pair, ordered by source index then
// target index.
func (g *Graph) Edges() []Edge {
	pairs := g.adj.Edges()
	out := make([]Edge, len(pairs))
	for k, p := range pairs {
		out[k] = Edge{From: g.labels[p.From], To: g.labels[p.To]}
	}

	return out
}

// HasEdge reports whether the directed edge from → to exists.
func (g *Graph) HasEdge(from, to string) (bool, error) {
	x, y, err := g.resolve(from, to)
	if err != nil {
		return false, err
	}

	return g.adj.IsConnected(x, y)
}

// InDegree returns the number of edges entering label.
func (g *Graph) InDegree(label string) (int, error) {
	i, err := g.Index(label)
	if err != nil {
		return 0, err
	}

	return g.adj.InDegree(i)
}

// OutDegree returns the number of edges leaving label.
func (g *Graph) OutDegree(label string) (int, error) {
	i, err := g.Index(label)
	if err != nil {
		return 0, err
	}

	return g.adj.OutDegree(i)
}

// resolve translates a label pair into index space.
func (g *Graph) resolve(a, b string) (int, int, error) {
	x, err := g.Index(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := g.Index(b)
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}
