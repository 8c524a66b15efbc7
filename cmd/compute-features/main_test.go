// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/gml4tdm/linkfeatures/config"
	"github.com/gml4tdm/linkfeatures/dataset/semantic"
)

const odemDoc = `<?xml version="1.0" encoding="UTF-8"?>
<ODEM>
  <header><created-by><exporter version="1.16.0">exporter</exporter><provider>CDA</provider></created-by></header>
  <context name="proj-1.0">
    <container name="proj-1.0.jar" classification="jar">
      <namespace name="org.app">
        <type name="org.app.Main" classification="class" visibility="public">
          <dependencies count="3">
            <depends-on name="org.app.Service" classification="uses" />
            <depends-on name="org.lib.Util" classification="uses" />
            <depends-on name="java.lang.String" classification="uses" />
          </dependencies>
        </type>
      </namespace>
      <namespace name="org.lib">
        <type name="org.lib.Util" classification="class" visibility="public">
          <dependencies count="1">
            <depends-on name="java.lang.Object" classification="extends" />
          </dependencies>
        </type>
      </namespace>
    </container>
  </context>
</ODEM>
`

// semanticTable renders rows "from,to" with constant cosines.
func semanticTable(pairs ...[2]string) string {
	var sb strings.Builder
	sb.WriteString("class1,class2," + strings.Join(semantic.Columns[:], ",") + ",\n")
	for _, p := range pairs {
		sb.WriteString(p[0] + "," + p[1])
		for k := 0; k < semantic.CosineCount; k++ {
			fmt.Fprintf(&sb, ",0.%d", k+1)
		}
		sb.WriteString(",\n")
	}

	return sb.String()
}

// dataset lays out one good project and, optionally, one broken one that
// sorts before it.
func dataset(t *testing.T, broken bool) string {
	t.Helper()
	root := t.TempDir()
	proj := filepath.Join(root, "proj")
	require.NoError(t, os.MkdirAll(proj, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(proj, "proj-1.0.odem"), []byte(odemDoc), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(proj, "proj-1.0.txt"), []byte(semanticTable(
		[2]string{"org.app", "org.lib"},
		[2]string{"org.lib", "java.lang"},
		[2]string{"org.app", "org.unknown"},
	)), 0o600))

	if broken {
		bad := filepath.Join(root, "aaa")
		require.NoError(t, os.MkdirAll(bad, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(bad, "aaa-1.0.odem"), []byte("<ODEM><context>"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(bad, "aaa-1.0.txt"), []byte(semanticTable()), 0o600))
	}

	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

type output struct {
	Nodes                           []string         `json:"nodes"`
	Edges                           []map[string]any `json:"edges"`
	PairsWithoutSemanticFeatures    []map[string]any `json:"pairs_without_semantic_features"`
	PairsWithoutTopologicalFeatures []map[string]any `json:"pairs_without_topological_features"`
	LinkFeatures                    []map[string]any `json:"link_features"`
}

func readOutput(t *testing.T, path string) output {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var out output
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

func TestCompute_JSON(t *testing.T) {
	root := dataset(t, false)
	_, stderr, err := execute(t, root, "--log-format", "json", "--workers", "2")
	require.NoError(t, err, stderr)
	require.Contains(t, stderr, `"run_id"`)

	out := readOutput(t, filepath.Join(root, "proj", "proj-1.0.json"))
	require.Equal(t, []string{"org.app", "org.lib", "java.lang"}, out.Nodes)
	require.Len(t, out.Edges, 6)
	require.Len(t, out.LinkFeatures, 2)
	require.Len(t, out.PairsWithoutSemanticFeatures, 4)
	require.Len(t, out.PairsWithoutTopologicalFeatures, 1)
	require.Equal(t, 0.1, out.LinkFeatures[0]["cosine_1"])
}

func TestCompute_ClassGranularity(t *testing.T) {
	root := dataset(t, false)
	_, stderr, err := execute(t, root, "--granularity", "class", "--log-level", "error")
	require.NoError(t, err, stderr)

	out := readOutput(t, filepath.Join(root, "proj", "proj-1.0.json"))
	require.Equal(t, []string{"org.app.Main", "org.lib.Util", "org.app.Service", "java.lang.String", "java.lang.Object"}, out.Nodes)
	require.Empty(t, out.LinkFeatures)
}

func TestCompute_ContinuesPastFailures(t *testing.T) {
	root := dataset(t, true)
	_, stderr, err := execute(t, root, "--log-format", "json")
	require.ErrorIs(t, err, errGraphsFailed)
	require.Contains(t, stderr, "graph failed")
	require.FileExists(t, filepath.Join(root, "proj", "proj-1.0.json"))
}

func TestCompute_FailFast(t *testing.T) {
	root := dataset(t, true)
	_, _, err := execute(t, root, "--fail-fast", "--log-level", "error")
	require.Error(t, err)
	require.NotErrorIs(t, err, errGraphsFailed)
	require.NoFileExists(t, filepath.Join(root, "proj", "proj-1.0.json"))
}

func TestCompute_NonConvergenceIsAGraphFailure(t *testing.T) {
	root := dataset(t, false)
	_, _, err := execute(t, root, "--simrank-max-iterations", "1", "--log-level", "error")
	require.ErrorIs(t, err, errGraphsFailed)
	require.NoFileExists(t, filepath.Join(root, "proj", "proj-1.0.json"))
}

func TestCompute_SQLiteAndMetrics(t *testing.T) {
	root := dataset(t, false)
	dbPath := filepath.Join(t.TempDir(), "features.sqlite")
	metrics := filepath.Join(t.TempDir(), "run.prom")
	_, stderr, err := execute(t, root,
		"--output-format", "sqlite", "--sqlite", dbPath,
		"--metrics-file", metrics, "--log-level", "error")
	require.NoError(t, err, stderr)
	require.NoFileExists(t, filepath.Join(root, "proj", "proj-1.0.json"))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM link_features`).Scan(&n))
	require.Equal(t, 2, n)

	raw, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(raw), `linkfeatures_graphs_processed_total{status="ok"} 1`)
	require.Contains(t, string(raw), `linkfeatures_pairs_total{outcome="scored"} 2`)
}

func TestCompute_ConfigFileAndFlagPrecedence(t *testing.T) {
	root := dataset(t, false)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("granularity: class\nlog:\n  level: error\n"), 0o600))

	_, _, err := execute(t, root, "--config", cfgPath, "--granularity", "package")
	require.NoError(t, err)
	out := readOutput(t, filepath.Join(root, "proj", "proj-1.0.json"))
	require.Equal(t, []string{"org.app", "org.lib", "java.lang"}, out.Nodes)
}

func TestCompute_InvalidFlags(t *testing.T) {
	root := dataset(t, false)
	_, _, err := execute(t, root, "--simrank-damping", "2")
	require.ErrorContains(t, err, "damping")

	_, _, err = execute(t, root, "--granularity", "module")
	require.Error(t, err)

	_, _, err = execute(t)
	require.Error(t, err)
}

func TestShowConfig(t *testing.T) {
	stdout, _, err := execute(t, "show-config", "--granularity", "class")
	require.NoError(t, err)
	require.Contains(t, stdout, "granularity: class")
	require.Contains(t, stdout, "max_iterations: 1000")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "compute-features version "+version+"\n", stdout)
}

func TestDot(t *testing.T) {
	root := dataset(t, false)
	stdout, _, err := execute(t, "dot", filepath.Join(root, "proj", "proj-1.0.odem"), "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, stdout, "digraph")
	require.Contains(t, stdout, "org.lib")
	// org.app -> org.lib, org.app -> java.lang, org.lib -> java.lang; the
	// org.app self-dependency is not drawn.
	require.Equal(t, 3, strings.Count(stdout, "->"))
}

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, configLog("info", "auto")).Info("hello")
	require.True(t, strings.HasPrefix(buf.String(), "{"), "non-terminal writers get JSON")

	buf.Reset()
	newLogger(&buf, configLog("info", "text")).Info("hello")
	require.Contains(t, buf.String(), "msg=hello")

	buf.Reset()
	newLogger(&buf, configLog("warn", "json")).Info("hidden")
	require.Empty(t, buf.String())
}

func configLog(level, format string) config.LogConfig {
	return config.LogConfig{Level: level, Format: format}
}
