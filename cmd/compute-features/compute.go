// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gml4tdm/linkfeatures/config"
	"github.com/gml4tdm/linkfeatures/core"
	"github.com/gml4tdm/linkfeatures/dataset/odem"
	"github.com/gml4tdm/linkfeatures/dataset/semantic"
	"github.com/gml4tdm/linkfeatures/features"
	"github.com/gml4tdm/linkfeatures/sink"
	"github.com/gml4tdm/linkfeatures/telemetry"
)

// errGraphsFailed reports a run that finished with failed graphs.
var errGraphsFailed = errors.New("one or more graphs failed")

// pipeline carries the per-run state shared by every graph.
type pipeline struct {
	cfg         config.Config
	granularity odem.Granularity
	logger      *slog.Logger
	recorder    *telemetry.Recorder
	out         sink.Sink
}

func runCompute(cmd *cobra.Command, args []string) (err error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	granularity, err := odem.ParseGranularity(cfg.Granularity)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log).With("run_id", runID)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workloads, err := features.Discover(args[0], features.WithGraphPattern(cfg.GraphPattern))
	if err != nil {
		return err
	}
	logger.Info("workload discovered", "directory", args[0], "graphs", len(workloads))

	out, err := openSink(ctx, cfg.Output, runID)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	p := &pipeline{
		cfg:         cfg,
		granularity: granularity,
		logger:      logger,
		recorder:    telemetry.NewRecorder(),
		out:         out,
	}
	err = p.runAll(ctx, workloads)

	if cfg.MetricsFile != "" {
		if merr := p.recorder.WriteTextfile(cfg.MetricsFile); merr != nil {
			logger.Error("metrics not written", "path", cfg.MetricsFile, "error", merr)
			err = errors.Join(err, merr)
		}
	}

	return err
}

func openSink(ctx context.Context, cfg config.OutputConfig, runID string) (sink.Sink, error) {
	switch cfg.Format {
	case "sqlite":
		return sink.OpenSQLite(ctx, cfg.SQLite, runID)
	default:
		return &sink.JSONSink{Pretty: cfg.Pretty}, nil
	}
}

// runAll processes workloads in order. With fail_fast the first failure
// aborts the run; otherwise failures are logged and reported at the end.
func (p *pipeline) runAll(ctx context.Context, workloads []features.Workload) error {
	failed := 0
	for _, w := range workloads {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		p.logger.Info("processing graph", "graph", w.Graph, "semantic", w.Semantic)
		vertices, err := p.process(ctx, w)
		p.recorder.GraphProcessed(vertices, err)
		if err != nil {
			if p.cfg.FailFast {
				return fmt.Errorf("%s: %w", w.Graph, err)
			}
			failed++
			p.logger.Error("graph failed", "graph", w.Graph, "error", err)
			continue
		}
		p.logger.Info("graph done", "graph", w.Graph, "vertices", vertices, "elapsed", time.Since(start))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errGraphsFailed, failed, len(workloads))
	}

	return nil
}

// process handles one (graph, semantic table) pair and returns the vertex count.
func (p *pipeline) process(ctx context.Context, w features.Workload) (int, error) {
	graphOpts := append(p.cfg.CoreOptions(),
		core.WithLogger(p.logger),
		core.WithObserver(p.recorder),
	)
	g, stats, err := odem.LoadFile(w.Graph,
		odem.WithGranularity(p.granularity),
		odem.WithLogger(p.logger),
		odem.WithGraphOptions(graphOpts...),
	)
	if err != nil {
		return 0, err
	}
	p.logger.Debug("graph loaded",
		"graph", w.Graph,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"types", stats.Types,
		"skipped_dependencies", stats.Skipped,
	)

	records, err := semantic.ReadFile(w.Semantic)
	if err != nil {
		return g.VertexCount(), err
	}

	workers := p.cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	data, err := features.Extract(ctx, g, records,
		features.WithWorkers(workers),
		features.WithLogger(p.logger),
	)
	if err != nil {
		return g.VertexCount(), err
	}
	p.recorder.PairsRecorded(len(data.LinkFeatures),
		len(data.PairsWithoutSemanticFeatures), len(data.PairsWithoutTopologicalFeatures))

	if err = p.out.Write(ctx, w, data); err != nil {
		return g.VertexCount(), err
	}

	return g.VertexCount(), nil
}
