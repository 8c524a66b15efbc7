// Package matrix_test covers the dense boolean adjacency and its local metrics.
package matrix_test

import (
	"math"
	"testing"

	"github.com/gml4tdm/linkfeatures/matrix"
	"github.com/stretchr/testify/require"
)

// Vertex indices shared by the fixtures below.
const (
	vX = 0
	vY = 1
	vZ = 2
	vW = 3
	vV = 4
)

// mustAdjacency builds an n×n matrix and connects every pair in edges.
func mustAdjacency(t testing.TB, n int, edges ...matrix.Pair) *matrix.AdjacencyMatrix {
	t.Helper()
	a, err := matrix.NewAdjacency(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, a.Connect(e.From, e.To))
	}

	return a
}

// sharedPredecessor is Z→X, Z→Y on three vertices.
func sharedPredecessor(t testing.TB) *matrix.AdjacencyMatrix {
	return mustAdjacency(t, 3, matrix.Pair{From: vZ, To: vX}, matrix.Pair{From: vZ, To: vY})
}

func TestNewAdjacency_Sizes(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewAdjacency(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	empty, err := matrix.NewAdjacency(0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Size())
	require.Empty(t, empty.Edges())
	require.Nil(t, empty.Float64())
}

func TestConnect_OutOfRange(t *testing.T) {
	t.Parallel()
	a := mustAdjacency(t, 2)

	require.ErrorIs(t, a.Connect(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, a.Connect(-1, 0), matrix.ErrOutOfRange)
	_, err := a.IsConnected(5, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = a.InDegree(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = a.OutDegree(-3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestConnect_IdempotentAndDirected(t *testing.T) {
	t.Parallel()
	a := mustAdjacency(t, 2, matrix.Pair{From: 0, To: 1}, matrix.Pair{From: 0, To: 1})

	require.Equal(t, 1, a.EdgeCount())
	fwd, err := a.IsConnected(0, 1)
	require.NoError(t, err)
	require.True(t, fwd)
	back, err := a.IsConnected(1, 0)
	require.NoError(t, err)
	require.False(t, back)
}

func TestDegrees(t *testing.T) {
	t.Parallel()
	// X→Y, X→Z, Y→Z, Z→Z (self-loop counts once on each side)
	a := mustAdjacency(t, 3,
		matrix.Pair{From: vX, To: vY},
		matrix.Pair{From: vX, To: vZ},
		matrix.Pair{From: vY, To: vZ},
		matrix.Pair{From: vZ, To: vZ},
	)

	cases := []struct {
		v       int
		in, out int
	}{
		{vX, 0, 2},
		{vY, 1, 1},
		{vZ, 3, 1},
	}
	for _, c := range cases {
		in, err := a.InDegree(c.v)
		require.NoError(t, err)
		require.Equal(t, c.in, in, "in-degree of %d", c.v)
		out, err := a.OutDegree(c.v)
		require.NoError(t, err)
		require.Equal(t, c.out, out, "out-degree of %d", c.v)
	}
}

func TestEdges_RoundTrip(t *testing.T) {
	t.Parallel()
	in := []matrix.Pair{{From: 2, To: 0}, {From: 0, To: 1}, {From: 1, To: 1}, {From: 0, To: 2}}
	a := mustAdjacency(t, 3, in...)

	// Row-major order: by From, then To.
	want := []matrix.Pair{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 1}, {From: 2, To: 0}}
	require.Equal(t, want, a.Edges())
	require.ElementsMatch(t, in, a.Edges())
}

func TestFloat64_Orientation(t *testing.T) {
	t.Parallel()
	a := mustAdjacency(t, 2, matrix.Pair{From: 0, To: 1})
	m := a.Float64()

	require.Equal(t, 1.0, m.At(0, 1))
	require.Equal(t, 0.0, m.At(1, 0))
}

func TestCommonNeighbourCount_SharedPredecessor(t *testing.T) {
	t.Parallel()
	a := sharedPredecessor(t)

	cn, err := a.CommonNeighbourCount(vX, vY)
	require.NoError(t, err)
	require.Equal(t, 1, cn)

	// Z has no predecessors at all, so it shares none with X.
	cn, err = a.CommonNeighbourCount(vZ, vX)
	require.NoError(t, err)
	require.Equal(t, 0, cn)
}

func TestCommonNeighbourCount_SharedSuccessorIsNotCounted(t *testing.T) {
	t.Parallel()
	// A→C, B→C: A and B share a successor, not a predecessor.
	a := mustAdjacency(t, 3, matrix.Pair{From: 0, To: 2}, matrix.Pair{From: 1, To: 2})

	cn, err := a.CommonNeighbourCount(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, cn)
}

func TestCommonNeighbourCount_SelfEqualsInDegree(t *testing.T) {
	t.Parallel()
	a := mustAdjacency(t, 3,
		matrix.Pair{From: vX, To: vZ},
		matrix.Pair{From: vY, To: vZ},
		matrix.Pair{From: vZ, To: vX},
	)
	for v := 0; v < 3; v++ {
		cn, err := a.CommonNeighbourCount(v, v)
		require.NoError(t, err)
		in, err := a.InDegree(v)
		require.NoError(t, err)
		require.Equal(t, in, cn, "vertex %d", v)
	}
}

func TestCommonNeighbourCount_Symmetric(t *testing.T) {
	t.Parallel()
	a := mustAdjacency(t, 5,
		matrix.Pair{From: vW, To: vX},
		matrix.Pair{From: vW, To: vY},
		matrix.Pair{From: vV, To: vX},
		matrix.Pair{From: vV, To: vY},
		matrix.Pair{From: vV, To: vZ},
		matrix.Pair{From: vX, To: vZ},
	)
	for x := 0; x < a.Size(); x++ {
		for y := 0; y < a.Size(); y++ {
			xy, err := a.CommonNeighbourCount(x, y)
			require.NoError(t, err)
			yx, err := a.CommonNeighbourCount(y, x)
			require.NoError(t, err)
			require.Equal(t, xy, yx, "(%d,%d)", x, y)
		}
	}
}

// TestLocalMetrics_Values pins each formula on a 5-vertex graph:
//
//	W→Z, V→Z, Z→X, Z→Y, X→W
//
// Z is the only shared predecessor of (X, Y) and has in-degree 2.
func TestLocalMetrics_Values(t *testing.T) {
	t.Parallel()
	a := mustAdjacency(t, 5,
		matrix.Pair{From: vW, To: vZ},
		matrix.Pair{From: vV, To: vZ},
		matrix.Pair{From: vZ, To: vX},
		matrix.Pair{From: vZ, To: vY},
		matrix.Pair{From: vX, To: vW},
	)

	type metric func(x, y int) (float64, error)
	cases := []struct {
		name string
		fn   metric
		want float64
	}{
		// 1 / sqrt(in(X)·in(Y)) = 1 / sqrt(1·1)
		{"Salton", a.SaltonMetric, 1},
		// 1 / (out(X) + out(Y)) = 1 / (1 + 0): out-degree on purpose
		{"Sorensen", a.SorensenMetric, 1},
		// ln(in(Z)) = ln 2, not 1/ln 2
		{"AdamicAdar", a.AdamicAdarMetric, math.Ln2},
		// 1 / n
		{"RusselRao", a.RusselRaoMetric, 0.2},
		// 1 / in(Z)
		{"ResourceAllocation", a.ResourceAllocationMetric, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got, err := c.fn(vX, vY)
			require.NoError(t, err)
			require.InDelta(t, c.want, got, 1e-12)
		})
	}
}

// TestLocalMetrics_IEEE pins the undefined cases: zero denominators are not
// special-cased.
func TestLocalMetrics_IEEE(t *testing.T) {
	t.Parallel()
	a := sharedPredecessor(t)

	// out(X) + out(Y) == 0 → 1/0
	s, err := a.SorensenMetric(vX, vY)
	require.NoError(t, err)
	require.True(t, math.IsInf(s, 1))

	// in(Z) == 0 → ln 0 and 1/0
	aa, err := a.AdamicAdarMetric(vX, vY)
	require.NoError(t, err)
	require.True(t, math.IsInf(aa, -1))
	ra, err := a.ResourceAllocationMetric(vX, vY)
	require.NoError(t, err)
	require.True(t, math.IsInf(ra, 1))

	// in(Z) == 0 and no common neighbours → 0/0
	salton, err := a.SaltonMetric(vZ, vZ)
	require.NoError(t, err)
	require.True(t, math.IsNaN(salton))
}

func TestLocalMetrics_OutOfRange(t *testing.T) {
	t.Parallel()
	a := sharedPredecessor(t)

	_, err := a.CommonNeighbourCount(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	for _, fn := range []func(x, y int) (float64, error){
		a.SaltonMetric,
		a.SorensenMetric,
		a.AdamicAdarMetric,
		a.RusselRaoMetric,
		a.ResourceAllocationMetric,
	} {
		_, err := fn(-1, 0)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}
