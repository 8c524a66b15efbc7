// Package matrix holds the numeric core of the link-prediction engine.
//
// The package provides:
//
//   - AdjacencyMatrix: a dense n×n boolean connectivity matrix, row-major,
//     where (i, j) is set iff the directed edge i→j exists. Row i lists the
//     outgoing connections of i, column i the incoming ones.
//   - Local similarity metrics computed on demand from one matrix dimension:
//     common neighbours (shared predecessors), Salton, Sørensen, Adamic–Adar,
//     Russel–Rao and Resource Allocation.
//   - Global similarity matrices computed over the whole graph: Katz
//     (closed-form inverse) and SimRank (fixed-point iteration with a
//     divergence guard). Both are returned as immutable ScoreMatrix values.
//
// The adjacency matrix always allocates n² cells regardless of density;
// it is intended for dependency graphs of up to a few thousand vertices.
//
// Numeric policy: local metrics follow IEEE-754 semantics. A zero degree
// in a denominator yields NaN or ±Inf and is never special-cased; filtering
// such values is the caller's responsibility.
package matrix
