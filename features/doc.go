// Package features joins the topological scores of a core.Graph with the
// semantic similarity table of the same project version into one feature
// table per graph, and discovers (graph, semantic table) file pairs on disk.
//
// Pipeline (per graph):
//   - Stage 1: force the Katz and SimRank matrices (fatal numeric errors
//     surface here, before any pair is scored).
//   - Stage 2: score every ordered pair (x, y), x ≠ y, that has a semantic
//     row; rows are processed by a bounded errgroup.
//   - Stage 3: report pairs seen on only one side.
//
// Output order is deterministic: pairs follow vertex index order, source
// first, and pairs_without_topological_features is sorted by label.
package features
