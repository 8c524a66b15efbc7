// SPDX-License-Identifier: MIT
// Package sink: SQLite store.
//
// Schema (version 1):
//
//	runs(id TEXT PK, started_at)
//	graphs(id PK, run_id → runs, graph_path, semantic_path, vertices)
//	nodes(graph_id → graphs, idx, label)
//	link_features(graph_id → graphs, from_label, to_label, common_neighbours,
//	              salton … sim_rank, cosine_1 … cosine_16)
//	unmatched_pairs(graph_id → graphs, from_label, to_label, missing)
//
// missing is "semantic" or "topological". The full visited-pair list is not
// stored; it is every ordered pair of distinct nodes.

package sink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gml4tdm/linkfeatures/dataset/semantic"
	"github.com/gml4tdm/linkfeatures/features"
)

const schemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS graphs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL REFERENCES runs(id),
	graph_path    TEXT NOT NULL,
	semantic_path TEXT NOT NULL,
	vertices      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_graphs_run ON graphs(run_id);

CREATE TABLE IF NOT EXISTS nodes (
	graph_id INTEGER NOT NULL REFERENCES graphs(id),
	idx      INTEGER NOT NULL,
	label    TEXT NOT NULL,
	PRIMARY KEY (graph_id, idx)
);

CREATE TABLE IF NOT EXISTS link_features (
	graph_id            INTEGER NOT NULL REFERENCES graphs(id),
	from_label          TEXT NOT NULL,
	to_label            TEXT NOT NULL,
	common_neighbours   INTEGER NOT NULL,
	salton              REAL,
	sorenson            REAL,
	adamic_adar         REAL,
	russel_rao          REAL,
	resource_allocation REAL,
	katz                REAL,
	sim_rank            REAL,
	%s,
	PRIMARY KEY (graph_id, from_label, to_label)
);

CREATE TABLE IF NOT EXISTS unmatched_pairs (
	graph_id   INTEGER NOT NULL REFERENCES graphs(id),
	from_label TEXT NOT NULL,
	to_label   TEXT NOT NULL,
	missing    TEXT NOT NULL CHECK (missing IN ('semantic', 'topological'))
);
CREATE INDEX IF NOT EXISTS idx_unmatched_graph ON unmatched_pairs(graph_id);
`

// cosineColumns renders "cosine_1 REAL NOT NULL, …, cosine_16 REAL NOT NULL".
func cosineColumns(withType bool) string {
	cols := make([]string, semantic.CosineCount)
	for k := range cols {
		cols[k] = fmt.Sprintf("cosine_%d", k+1)
		if withType {
			cols[k] += " REAL NOT NULL"
		}
	}

	return strings.Join(cols, ", ")
}

// SQLiteSink stores every graph of one run in a SQLite database.
type SQLiteSink struct {
	db    *sql.DB
	runID string
}

var _ Sink = (*SQLiteSink)(nil)

// OpenSQLite opens (or creates) the database at path, migrates it and
// registers runID.
func OpenSQLite(ctx context.Context, path, runID string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("sink: open %s: %w", path, err)
	}
	// single writer
	db.SetMaxOpenConns(1)
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: ping %s: %w", path, err)
	}
	s := &SQLiteSink{db: db, runID: runID}
	if err = s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: migrate %s: %w", path, err)
	}
	if _, err = db.ExecContext(ctx, `INSERT INTO runs (id, started_at) VALUES (?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339)); err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: register run: %w", err)
	}

	return s, nil
}

func (s *SQLiteSink) migrate(ctx context.Context) error {
	version, err := s.currentVersion(ctx)
	if err != nil {
		return err
	}
	if version >= schemaVersion {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(schemaV1, cosineColumns(true))); err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, schemaVersion)

	return err
}

// currentVersion returns the highest applied schema version, 0 for a fresh
// database. Any other read failure is returned as is.
func (s *SQLiteSink) currentVersion(ctx context.Context) (int, error) {
	var tables int
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'`,
	).Scan(&tables); err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}
	if tables == 0 {
		return 0, nil
	}

	var version int
	err := s.db.QueryRowContext(ctx,
		`SELECT version FROM schema_version ORDER BY version DESC LIMIT 1`,
	).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("schema version: %w", err)
	}

	return version, nil
}

// DB exposes the handle for read queries.
func (s *SQLiteSink) DB() *sql.DB { return s.db }

// RunID returns the run this sink records into.
func (s *SQLiteSink) RunID() string { return s.runID }

// Write stores one feature table in a single transaction.
func (s *SQLiteSink) Write(ctx context.Context, w features.Workload, data *features.GraphFeatureData) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sink: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO graphs (run_id, graph_path, semantic_path, vertices) VALUES (?, ?, ?, ?)`,
		s.runID, w.Graph, w.Semantic, len(data.Nodes))
	if err != nil {
		return fmt.Errorf("sink: insert graph: %w", err)
	}
	graphID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sink: graph id: %w", err)
	}

	if err = insertNodes(ctx, tx, graphID, data.Nodes); err != nil {
		return err
	}
	if err = insertFeatures(ctx, tx, graphID, data.LinkFeatures); err != nil {
		return err
	}
	if err = insertUnmatched(ctx, tx, graphID, "semantic", data.PairsWithoutSemanticFeatures); err != nil {
		return err
	}
	if err = insertUnmatched(ctx, tx, graphID, "topological", data.PairsWithoutTopologicalFeatures); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sink: commit: %w", err)
	}

	return nil
}

func insertNodes(ctx context.Context, tx *sql.Tx, graphID int64, nodes []string) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO nodes (graph_id, idx, label) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sink: prepare nodes: %w", err)
	}
	defer stmt.Close()
	for i, label := range nodes {
		if _, err = stmt.ExecContext(ctx, graphID, i, label); err != nil {
			return fmt.Errorf("sink: insert node %q: %w", label, err)
		}
	}

	return nil
}

func insertFeatures(ctx context.Context, tx *sql.Tx, graphID int64, rows []features.LinkFeature) error {
	const fixed = 11 // graph_id, labels, 8 topological
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", fixed+semantic.CosineCount), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO link_features (
		graph_id, from_label, to_label, common_neighbours,
		salton, sorenson, adamic_adar, russel_rao, resource_allocation, katz, sim_rank,
		%s) VALUES (%s)`, cosineColumns(false), placeholders))
	if err != nil {
		return fmt.Errorf("sink: prepare link_features: %w", err)
	}
	defer stmt.Close()

	args := make([]any, 0, fixed+semantic.CosineCount)
	for _, lf := range rows {
		args = append(args[:0],
			graphID, lf.Edge.From, lf.Edge.To, lf.CommonNeighbours,
			nullable(lf.Salton), nullable(lf.Sorensen), nullable(lf.AdamicAdar),
			nullable(lf.RusselRao), nullable(lf.ResourceAllocation),
			nullable(lf.Katz), nullable(lf.SimRank),
		)
		for _, c := range lf.Cosines() {
			args = append(args, c)
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("sink: insert features %q -> %q: %w", lf.Edge.From, lf.Edge.To, err)
		}
	}

	return nil
}

func insertUnmatched(ctx context.Context, tx *sql.Tx, graphID int64, missing string, pairs []features.Edge) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO unmatched_pairs (graph_id, from_label, to_label, missing) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sink: prepare unmatched_pairs: %w", err)
	}
	defer stmt.Close()
	for _, e := range pairs {
		if _, err = stmt.ExecContext(ctx, graphID, e.From, e.To, missing); err != nil {
			return fmt.Errorf("sink: insert unmatched %q -> %q: %w", e.From, e.To, err)
		}
	}

	return nil
}

// nullable maps non-finite scores to NULL.
func nullable(s features.Score) sql.NullFloat64 {
	return sql.NullFloat64{Float64: float64(s), Valid: s.Finite()}
}

// Close releases the database.
func (s *SQLiteSink) Close() error { return s.db.Close() }
