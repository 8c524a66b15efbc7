// SPDX-License-Identifier: MIT
// Package core: sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context (the offending label) is attached with %w, never baked into the
//     sentinel text.
//   - Numeric failures from the global kernels (matrix.ErrSingular,
//     matrix.ErrNonConvergence) pass through wrapped, so errors.Is still
//     matches the matrix sentinels.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedVertex indicates a label that is not part of the graph:
	// an edge source never registered at build time, or a query label.
	ErrUndefinedVertex = errors.New("core: undefined vertex")

	// ErrDuplicateVertex indicates the same label was registered twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrDuplicateEdge indicates the same ordered (from, to) pair was
	// declared twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// vertexErrorf attaches a label to a vertex sentinel.
func vertexErrorf(err error, label string) error {
	return fmt.Errorf("%w: %q", err, label)
}

// edgeErrorf attaches an ordered label pair to an edge sentinel.
func edgeErrorf(err error, from, to string) error {
	return fmt.Errorf("%w: %q -> %q", err, from, to)
}
