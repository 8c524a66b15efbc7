// SPDX-License-Identifier: MIT
// Package features: workload discovery.
//
// Layout expected under the data directory:
//
//	data/
//	  <project>/
//	    <project>-<version>.odem
//	    <project>-<version>...txt   semantic table of that version
//
// Only immediate subdirectories are scanned; files directly under data/ and
// deeper directories are ignored.

package features

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultGraphPattern matches graph files by base name.
const DefaultGraphPattern = "*.odem"

var (
	// ErrInvalidFilename indicates a graph file without a <project>-<version> prefix.
	ErrInvalidFilename = errors.New("features: graph filename has no <project>-<version> prefix")

	// ErrSemanticNotFound indicates a graph file without a semantic table.
	ErrSemanticNotFound = errors.New("features: semantic file not found")
)

// versionPrefix extracts "<project>-<version>" from a graph file name.
var versionPrefix = regexp.MustCompile(`[a-zA-Z_\-0-9]+-\d+(\.\d+)*`)

// Workload is one (graph, semantic table) file pair.
type Workload struct {
	Graph    string
	Semantic string
}

// OutputPath returns the graph path with its extension replaced by ext
// (".json").
func (w Workload) OutputPath(ext string) string {
	return strings.TrimSuffix(w.Graph, filepath.Ext(w.Graph)) + ext
}

// DiscoverOption configures Discover.
type DiscoverOption func(*discoverConfig)

type discoverConfig struct {
	graphPattern string
}

// WithGraphPattern replaces DefaultGraphPattern. The pattern is a glob over
// base names ("*.odem", "{*.odem,*.xml}").
func WithGraphPattern(pattern string) DiscoverOption {
	return func(c *discoverConfig) { c.graphPattern = pattern }
}

// Discover lists every workload under dir, ordered by directory then file name.
func Discover(dir string, opts ...DiscoverOption) ([]Workload, error) {
	cfg := discoverConfig{graphPattern: DefaultGraphPattern}
	for _, opt := range opts {
		opt(&cfg)
	}
	matcher, err := glob.Compile(cfg.graphPattern)
	if err != nil {
		return nil, fmt.Errorf("features: graph pattern %q: %w", cfg.graphPattern, err)
	}

	top, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}
	var out []Workload
	for _, project := range top {
		if !project.IsDir() {
			continue
		}
		projectDir := filepath.Join(dir, project.Name())
		entries, err := os.ReadDir(projectDir)
		if err != nil {
			return nil, fmt.Errorf("features: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !matcher.Match(e.Name()) {
				continue
			}
			sem, err := findSemantic(entries, e.Name())
			if err != nil {
				return nil, fmt.Errorf("%w: %s", err, filepath.Join(projectDir, e.Name()))
			}
			out = append(out, Workload{
				Graph:    filepath.Join(projectDir, e.Name()),
				Semantic: filepath.Join(projectDir, sem),
			})
		}
	}

	return out, nil
}

// findSemantic picks the first .txt file sharing the graph's version prefix.
func findSemantic(entries []os.DirEntry, graphName string) (string, error) {
	prefix := versionPrefix.FindString(graphName)
	if prefix == "" {
		return "", ErrInvalidFilename
	}
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".txt") {
			return name, nil
		}
	}

	return "", ErrSemanticNotFound
}
