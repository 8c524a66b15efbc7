// SPDX-License-Identifier: MIT
// Package sink: JSON files.

package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gml4tdm/linkfeatures/features"
)

// JSONExt is the extension that replaces the graph file's own.
const JSONExt = ".json"

// JSONSink writes <graph>.json next to every graph file. The file is written
// under a temporary name and renamed, so readers never see partial output.
type JSONSink struct {
	Pretty bool
}

var _ Sink = (*JSONSink)(nil)

// Write encodes data to w.OutputPath(JSONExt).
func (s *JSONSink) Write(ctx context.Context, w features.Workload, data *features.GraphFeatureData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := w.OutputPath(JSONExt)
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	if s.Pretty {
		enc.SetIndent("", "  ")
	}
	if err = enc.Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("sink: encode %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("sink: %w", err)
	}

	return nil
}

// Close is a no-op.
func (s *JSONSink) Close() error { return nil }
