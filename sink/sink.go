// SPDX-License-Identifier: MIT
// Package sink: destination interface.

package sink

import (
	"context"

	"github.com/gml4tdm/linkfeatures/features"
)

// Sink receives one feature table per processed graph. Implementations
// must tolerate Write calls from a single goroutine at a time; Close is
// called once after the last Write.
type Sink interface {
	Write(ctx context.Context, w features.Workload, data *features.GraphFeatureData) error
	Close() error
}
