// SPDX-License-Identifier: MIT
// Package converters: core.Graph → gonum.
//
// gonum's simple graphs reject self-loops, which the dependency graphs
// routinely contain at package granularity (a package using itself); they
// are dropped and counted.

package converters

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gml4tdm/linkfeatures/core"
)

// Node is a gonum node carrying its vertex label.
type Node struct {
	id    int64
	label string
}

// ID implements graph.Node; it is the vertex index.
func (n Node) ID() int64 { return n.id }

// Label returns the vertex label.
func (n Node) Label() string { return n.label }

// DOTID implements dot.Node.
func (n Node) DOTID() string { return n.label }

// ToGonum copies g into a new simple.DirectedGraph and reports how many
// self-loops were dropped.
//
// Complexity: O(n² + m), dominated by the edge scan of the adjacency.
func ToGonum(g *core.Graph) (*simple.DirectedGraph, int) {
	dg := simple.NewDirectedGraph()
	nodes := g.Nodes()
	byLabel := make(map[string]Node, len(nodes))
	for i, label := range nodes {
		n := Node{id: int64(i), label: label}
		byLabel[label] = n
		dg.AddNode(n)
	}

	loops := 0
	for _, e := range g.Edges() {
		if e.From == e.To {
			loops++
			continue
		}
		dg.SetEdge(dg.NewEdge(byLabel[e.From], byLabel[e.To]))
	}

	return dg, loops
}
