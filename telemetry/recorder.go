// SPDX-License-Identifier: MIT
// Package telemetry: Recorder.
//
// Metrics (namespace "linkfeatures"):
//   - matrix_compute_seconds{kind,status}  histogram
//   - simrank_iterations                   histogram
//   - graphs_processed_total{status}       counter
//   - graph_vertices                       histogram
//   - pairs_total{outcome}                 counter

package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gml4tdm/linkfeatures/core"
	"github.com/gml4tdm/linkfeatures/matrix"
)

const namespace = "linkfeatures"

// Label values.
const (
	KindKatz    = "katz"
	KindSimRank = "simrank"

	StatusOK     = "ok"
	StatusFailed = "failed"

	OutcomeScored        = "scored"
	OutcomeNoSemantic    = "no_semantic"
	OutcomeNoTopological = "no_topological"
)

// Recorder collects pipeline metrics. It implements core.Observer and is
// safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	matrixSeconds     *prometheus.HistogramVec
	simRankIterations prometheus.Histogram
	graphs            *prometheus.CounterVec
	graphVertices     prometheus.Histogram
	pairs             *prometheus.CounterVec
}

var _ core.Observer = (*Recorder)(nil)

// NewRecorder registers every metric on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		matrixSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "matrix_compute_seconds",
			Help:      "Time spent computing a derived score matrix.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"kind", "status"}),
		simRankIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simrank_iterations",
			Help:      "Matrix products performed by the SimRank iteration.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 250, 500, 1000},
		}),
		graphs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_processed_total",
			Help:      "Graphs processed, by outcome.",
		}, []string{"status"}),
		graphVertices: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Vertex count of processed graphs.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 12),
		}),
		pairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_total",
			Help:      "Ordered pairs seen while joining graphs with semantic tables, by outcome.",
		}, []string{"outcome"}),
	}
	r.registry.MustRegister(r.matrixSeconds, r.simRankIterations, r.graphs, r.graphVertices, r.pairs)

	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func status(err error) string {
	if err != nil {
		return StatusFailed
	}
	return StatusOK
}

// KatzComputed implements core.Observer.
func (r *Recorder) KatzComputed(_ int, elapsed time.Duration, err error) {
	r.matrixSeconds.WithLabelValues(KindKatz, status(err)).Observe(elapsed.Seconds())
}

// SimRankComputed implements core.Observer.
func (r *Recorder) SimRankComputed(_ int, elapsed time.Duration, stats matrix.SimRankStats, err error) {
	r.matrixSeconds.WithLabelValues(KindSimRank, status(err)).Observe(elapsed.Seconds())
	r.simRankIterations.Observe(float64(stats.Iterations))
}

// GraphProcessed counts one graph; vertices is ignored on failure.
func (r *Recorder) GraphProcessed(vertices int, err error) {
	r.graphs.WithLabelValues(status(err)).Inc()
	if err == nil {
		r.graphVertices.Observe(float64(vertices))
	}
}

// PairsRecorded adds the three pair populations of one feature table.
func (r *Recorder) PairsRecorded(scored, noSemantic, noTopological int) {
	r.pairs.WithLabelValues(OutcomeScored).Add(float64(scored))
	r.pairs.WithLabelValues(OutcomeNoSemantic).Add(float64(noSemantic))
	r.pairs.WithLabelValues(OutcomeNoTopological).Add(float64(noTopological))
}

// WriteTextfile atomically writes the registry to path in the text format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	return nil
}
