// SPDX-License-Identifier: MIT
package telemetry_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/gml4tdm/linkfeatures/core"
	"github.com/gml4tdm/linkfeatures/matrix"
	"github.com/gml4tdm/linkfeatures/telemetry"
)

func TestRecorder_ObservesGraphKernels(t *testing.T) {
	t.Parallel()
	rec := telemetry.NewRecorder()
	g, err := core.New(
		[]string{"a", "b", "c"},
		[]core.Edge{{From: "a", To: "b"}, {From: "a", To: "c"}},
		core.WithObserver(rec),
	)
	require.NoError(t, err)
	require.NoError(t, g.Precompute())

	// one series per (kind, status) pair that occurred, plus the iteration histogram
	n, err := testutil.GatherAndCount(rec.Registry(),
		"linkfeatures_matrix_compute_seconds", "linkfeatures_simrank_iterations")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestRecorder_Counters(t *testing.T) {
	t.Parallel()
	rec := telemetry.NewRecorder()
	rec.GraphProcessed(10, nil)
	rec.GraphProcessed(20, nil)
	rec.GraphProcessed(0, errors.New("boom"))
	rec.PairsRecorded(5, 3, 1)
	rec.PairsRecorded(1, 0, 0)

	n, err := testutil.GatherAndCount(rec.Registry(), "linkfeatures_graphs_processed_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "linkfeatures_pairs_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			values[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
		}
	}
	require.Equal(t, map[string]float64{
		telemetry.OutcomeScored:        6,
		telemetry.OutcomeNoSemantic:    3,
		telemetry.OutcomeNoTopological: 1,
	}, values)
}

func TestRecorder_FailedKernel(t *testing.T) {
	t.Parallel()
	rec := telemetry.NewRecorder()
	rec.KatzComputed(4, time.Millisecond, matrix.ErrSingular)
	rec.SimRankComputed(4, time.Second, matrix.SimRankStats{Iterations: 1000, Delta: 0.1}, matrix.ErrNonConvergence)

	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	var failed int
	for _, mf := range families {
		if mf.GetName() != "linkfeatures_matrix_compute_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "status" && l.GetValue() == telemetry.StatusFailed {
					failed++
				}
			}
		}
	}
	require.Equal(t, 2, failed)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()
	rec := telemetry.NewRecorder()
	rec.GraphProcessed(3, nil)

	path := filepath.Join(t.TempDir(), "linkfeatures.prom")
	require.NoError(t, rec.WriteTextfile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `linkfeatures_graphs_processed_total{status="ok"} 1`)

	require.Error(t, rec.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
