// SPDX-License-Identifier: MIT
// Package builder: incremental Graph construction.
//
// Contract:
//   - Validation happens eagerly in AddVertex / AddEdge so the offending
//     label is reported at the call that introduced it.
//   - Build hands the ordered vertex list and edge list to core.New; the
//     resulting index order is vertex registration order.

package builder

import (
	"fmt"

	"github.com/gml4tdm/linkfeatures/core"
)

// Builder collects vertices and edges for a single Graph.
type Builder struct {
	vertices []string
	known    map[string]struct{}
	edges    []core.Edge
	seen     map[core.Edge]struct{}
	consumed bool
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{
		known: make(map[string]struct{}),
		seen:  make(map[core.Edge]struct{}),
	}
}

// AddVertex registers label. Registration order becomes index order.
func (b *Builder) AddVertex(label string) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	if _, dup := b.known[label]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, label)
	}
	b.known[label] = struct{}{}
	b.vertices = append(b.vertices, label)

	return nil
}

// AddEdge records the directed edge from → to. from must already be
// registered; to may be any label.
func (b *Builder) AddEdge(from, to string) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	if _, ok := b.known[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUndefinedVertex, from)
	}
	e := core.Edge{From: from, To: to}
	if _, dup := b.seen[e]; dup {
		return fmt.Errorf("%w: %q -> %q", ErrDuplicateEdge, from, to)
	}
	b.seen[e] = struct{}{}
	b.edges = append(b.edges, e)

	return nil
}

// HasVertex reports whether label was registered with AddVertex.
func (b *Builder) HasVertex(label string) bool {
	_, ok := b.known[label]

	return ok
}

// VertexCount returns the number of registered vertices. Unregistered edge
// targets are not counted until Build.
func (b *Builder) VertexCount() int { return len(b.vertices) }

// EdgeCount returns the number of recorded edges.
func (b *Builder) EdgeCount() int { return len(b.edges) }

// Build freezes the collected data into a Graph and consumes the Builder.
// On error the Builder is still consumed.
func (b *Builder) Build(opts ...core.Option) (*core.Graph, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true
	vertices, edges := b.vertices, b.edges
	b.vertices, b.edges, b.known, b.seen = nil, nil, nil, nil

	g, err := core.New(vertices, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	return g, nil
}
