// SPDX-License-Identifier: MIT
package converters_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gml4tdm/linkfeatures/converters"
	"github.com/gml4tdm/linkfeatures/core"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New(
		[]string{"p.A", "p.B", "p.C"},
		[]core.Edge{
			{From: "p.A", To: "p.B"},
			{From: "p.A", To: "p.A"},
			{From: "p.C", To: "p.B"},
			{From: "p.B", To: "ext.D"},
		},
	)
	require.NoError(t, err)

	return g
}

func TestToGonum(t *testing.T) {
	t.Parallel()
	g := sample(t)
	dg, loops := converters.ToGonum(g)
	require.Equal(t, 1, loops)
	require.Equal(t, g.VertexCount(), dg.Nodes().Len())

	for i, label := range g.Nodes() {
		n := dg.Node(int64(i))
		require.NotNil(t, n)
		require.Equal(t, label, n.(converters.Node).Label())

		in, err := g.InDegree(label)
		require.NoError(t, err)
		out, err := g.OutDegree(label)
		require.NoError(t, err)
		if label == "p.A" {
			in--
			out--
		}
		require.Equal(t, in, dg.To(int64(i)).Len(), label)
		require.Equal(t, out, dg.From(int64(i)).Len(), label)
	}
	require.True(t, dg.HasEdgeFromTo(1, 3))
	require.False(t, dg.HasEdgeFromTo(3, 1))
}

func TestMarshalDOT(t *testing.T) {
	t.Parallel()
	out, err := converters.MarshalDOT(sample(t), "deps")
	require.NoError(t, err)

	s := string(out)
	require.True(t, strings.HasPrefix(s, "strict digraph deps {"), s)
	for _, label := range []string{"p.A", "p.B", "p.C", "ext.D"} {
		require.Contains(t, s, label)
	}
	require.Equal(t, 3, strings.Count(s, "->"))
}

func TestMarshalDOT_Empty(t *testing.T) {
	t.Parallel()
	g, err := core.New(nil, nil)
	require.NoError(t, err)
	out, err := converters.MarshalDOT(g, "empty")
	require.NoError(t, err)
	s := string(out)
	require.True(t, strings.HasPrefix(s, "strict digraph empty {"), s)
	require.Zero(t, strings.Count(s, "->"))
}
