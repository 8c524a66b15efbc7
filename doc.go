// Package linkfeatures computes pairwise similarity features over software
// dependency graphs for link prediction.
//
// What is it?
//
//	An immutable, label-addressed directed graph plus eight topological
//	similarity measures between any ordered pair of vertices:
//		• Local: common neighbours, Salton, Sørensen, Adamic–Adar,
//		  Russel–Rao, resource allocation (recomputed per query)
//		• Global: Katz index and SimRank (computed once per graph, on demand)
//	and a batch pipeline that joins those scores with per-pair semantic
//	similarities into training tables.
//
// Layout:
//
//	matrix/            — dense adjacency, local metrics, Katz and SimRank kernels (gonum)
//	core/              — immutable Graph, label → index mapping, lazy derived matrices
//	builder/           — incremental Graph construction with eager validation
//	dataset/odem/      — ODEM dependency XML → Graph (package or class granularity)
//	dataset/semantic/  — semantic similarity CSV reader
//	features/          — feature-table extraction and workload discovery
//	sink/              — JSON files or SQLite store for feature tables
//	converters/        — gonum graph and Graphviz DOT export
//	config/            — YAML configuration with validation
//	telemetry/         — Prometheus metrics written as a node-exporter textfile
//	cmd/compute-features — the batch CLI
//
// Quick start:
//
//	b := builder.New()
//	_ = b.AddVertex("org.app")
//	_ = b.AddVertex("org.lib")
//	_ = b.AddEdge("org.app", "org.lib")
//	g, _ := b.Build()
//	k, _ := g.Katz("org.app", "org.lib")
//
// See examples/ for a complete program.
package linkfeatures
