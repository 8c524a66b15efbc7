// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
//
// The vertex/edge sentinels are the core ones, so callers can branch with
// errors.Is against either package.

package builder

import (
	"errors"

	"github.com/gml4tdm/linkfeatures/core"
)

var (
	// ErrDuplicateVertex indicates AddVertex with an already registered label.
	ErrDuplicateVertex = core.ErrDuplicateVertex

	// ErrUndefinedVertex indicates AddEdge from a label never passed to AddVertex.
	ErrUndefinedVertex = core.ErrUndefinedVertex

	// ErrDuplicateEdge indicates AddEdge with an ordered pair already present.
	ErrDuplicateEdge = core.ErrDuplicateEdge

	// ErrBuilderConsumed indicates use of a Builder after Build.
	ErrBuilderConsumed = errors.New("builder: builder already consumed by Build")
)
