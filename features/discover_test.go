// SPDX-License-Identifier: MIT
package features_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gml4tdm/linkfeatures/features"
)

// layout creates the given files (relative paths) under a fresh directory.
func layout(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}

	return root
}

func TestDiscover_Pairs(t *testing.T) {
	t.Parallel()
	root := layout(t,
		"proj/proj-1.0.odem",
		"proj/proj-1.0-semantic.txt",
		"proj/proj-1.1.odem",
		"proj/proj-1.1.txt",
		"proj/notes.md",
		"commons-io/commons-io-2.4.odem",
		"commons-io/commons-io-2.4-similarities.txt",
		"empty/.keep",
		"top-1.0.odem",
	)

	got, err := features.Discover(root)
	require.NoError(t, err)
	require.Equal(t, []features.Workload{
		{
			Graph:    filepath.Join(root, "commons-io", "commons-io-2.4.odem"),
			Semantic: filepath.Join(root, "commons-io", "commons-io-2.4-similarities.txt"),
		},
		{
			Graph:    filepath.Join(root, "proj", "proj-1.0.odem"),
			Semantic: filepath.Join(root, "proj", "proj-1.0-semantic.txt"),
		},
		{
			Graph:    filepath.Join(root, "proj", "proj-1.1.odem"),
			Semantic: filepath.Join(root, "proj", "proj-1.1.txt"),
		},
	}, got)
	require.Equal(t, filepath.Join(root, "proj", "proj-1.0.json"), got[1].OutputPath(".json"))
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	_, err := features.Discover(layout(t, "p/p-2.0.odem"))
	require.ErrorIs(t, err, features.ErrSemanticNotFound)

	_, err = features.Discover(layout(t, "p/graph.odem", "p/graph.txt"))
	require.ErrorIs(t, err, features.ErrInvalidFilename)

	_, err = features.Discover(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	_, err = features.Discover(t.TempDir(), features.WithGraphPattern("[unclosed"))
	require.Error(t, err)
}

func TestDiscover_CustomPattern(t *testing.T) {
	t.Parallel()
	root := layout(t, "p/p-1.0.odem", "p/p-1.0.xml", "p/p-1.0.txt")

	got, err := features.Discover(root, features.WithGraphPattern("*.xml"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, filepath.Join(root, "p", "p-1.0.xml"), got[0].Graph)
}
