// SPDX-License-Identifier: MIT
// Package converters: DOT rendering.

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/gml4tdm/linkfeatures/core"
)

// MarshalDOT renders g as a Graphviz digraph called name. Self-loops are
// omitted (see ToGonum).
func MarshalDOT(g *core.Graph, name string) ([]byte, error) {
	dg, _ := ToGonum(g)
	out, err := dot.Marshal(dg, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("converters: dot: %w", err)
	}

	return out, nil
}
