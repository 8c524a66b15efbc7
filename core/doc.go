// Package core defines the immutable Graph used for link prediction and its
// label-keyed similarity queries.
//
// A Graph maps caller-supplied vertex labels (fully qualified class or
// package names) onto dense indices 0..n-1 assigned in insertion order, and
// owns a dense adjacency matrix over those indices. Queries translate labels
// to indices and delegate to package matrix:
//
//	CommonNeighbours, Salton, Sorensen, AdamicAdar, RusselRao,
//	ResourceAllocation  – recomputed per call from the adjacency
//	Katz, SimRank       – read from score matrices computed once, on demand
//
// Graphs are write-once, read-many: there is no mutation API. Build one with
// New, or incrementally with package builder. All methods are safe for
// concurrent use.
//
// Errors:
//
//	ErrUndefinedVertex  - unknown label (query) or unregistered edge source (build).
//	ErrDuplicateVertex  - label registered twice.
//	ErrDuplicateEdge    - ordered pair declared twice.
//	matrix.ErrSingular, matrix.ErrNonConvergence - fatal Katz / SimRank failures.
package core
