// SPDX-License-Identifier: MIT
// Package odem: ODEM → Graph loading.
//
// Granularity:
//   - GranularityPackage: one vertex per namespace; every dependency of every
//     type adds namespace → (dependency name minus its last dotted part).
//   - GranularityClass:   one vertex per type; type → dependency.
//
// Policy:
//   - Duplicate namespaces/types are fatal (ErrDuplicateVertex).
//   - Repeated edges are expected at package granularity (two classes of one
//     package using the same foreign package); they are logged at Debug and
//     skipped. So are dependencies outside any namespace.
//   - Dependency targets outside the container become vertices at Build time.

package odem

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gml4tdm/linkfeatures/builder"
	"github.com/gml4tdm/linkfeatures/core"
)

// Granularity selects what a vertex stands for.
type Granularity int

const (
	// GranularityPackage maps namespaces to vertices.
	GranularityPackage Granularity = iota
	// GranularityClass maps types to vertices.
	GranularityClass
)

// String returns the canonical name ("package" or "class").
func (g Granularity) String() string {
	switch g {
	case GranularityPackage:
		return "package"
	case GranularityClass:
		return "class"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// ParseGranularity is the inverse of String.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "package", "":
		return GranularityPackage, nil
	case "class":
		return GranularityClass, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
	}
}

// Stats summarises one Populate call.
type Stats struct {
	Namespaces   int // namespaces visited
	Types        int // types visited
	Dependencies int // depends-on entries considered
	Edges        int // edges added
	Skipped      int // dependencies dropped (repeated edge or no namespace)
}

// Option configures loading.
type Option func(*loadConfig)

type loadConfig struct {
	granularity Granularity
	logger      *slog.Logger
	graphOpts   []core.Option
}

// WithGranularity selects package (default) or class vertices.
func WithGranularity(g Granularity) Option {
	if g != GranularityPackage && g != GranularityClass {
		panic("odem: WithGranularity(unknown)")
	}
	return func(c *loadConfig) { c.granularity = g }
}

// WithLogger routes skip records to l. Nil means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *loadConfig) { c.logger = l }
}

// WithGraphOptions forwards opts to builder.Build.
func WithGraphOptions(opts ...core.Option) Option {
	return func(c *loadConfig) { c.graphOpts = append(c.graphOpts, opts...) }
}

func gatherOptions(opts ...Option) loadConfig {
	cfg := loadConfig{granularity: GranularityPackage}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// Decode parses and validates one ODEM document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("odem: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Populate feeds the single container of doc into b.
func Populate(b *builder.Builder, doc *Document, opts ...Option) (Stats, error) {
	var stats Stats
	cfg := gatherOptions(opts...)
	container, err := doc.Container()
	if err != nil {
		return stats, err
	}

	for _, ns := range container.Namespaces {
		stats.Namespaces++
		if cfg.granularity == GranularityPackage {
			if err = b.AddVertex(ns.Name); err != nil {
				return stats, fmt.Errorf("odem: namespace: %w", err)
			}
		}
		for _, t := range ns.Types {
			stats.Types++
			source := ns.Name
			if cfg.granularity == GranularityClass {
				source = t.Name
				if err = b.AddVertex(t.Name); err != nil {
					return stats, fmt.Errorf("odem: type: %w", err)
				}
			}
			if t.Dependencies.Count <= 0 {
				continue
			}
			for _, dep := range t.Dependencies.DependsOn {
				stats.Dependencies++
				target := dep.Name
				if cfg.granularity == GranularityPackage {
					target = namespaceOf(dep.Name)
					if target == "" {
						stats.Skipped++
						cfg.logger.Debug("dependency outside any namespace skipped",
							"type", t.Name, "dependency", dep.Name)
						continue
					}
				}
				err = b.AddEdge(source, target)
				switch {
				case err == nil:
					stats.Edges++
				case errors.Is(err, builder.ErrDuplicateEdge):
					stats.Skipped++
					cfg.logger.Debug("repeated dependency edge skipped",
						"from", source, "to", target, "type", t.Name)
				default:
					return stats, fmt.Errorf("odem: dependency: %w", err)
				}
			}
		}
	}

	return stats, nil
}

// Load decodes r and builds its Graph.
func Load(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, Stats{}, err
	}
	cfg := gatherOptions(opts...)
	b := builder.New()
	stats, err := Populate(b, doc, opts...)
	if err != nil {
		return nil, stats, err
	}
	g, err := b.Build(cfg.graphOpts...)
	if err != nil {
		return nil, stats, fmt.Errorf("odem: %w", err)
	}
	cfg.logger.Debug("odem graph loaded",
		"granularity", cfg.granularity.String(),
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"skipped", stats.Skipped,
	)

	return g, stats, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("odem: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// namespaceOf strips the last dotted component: "a.b.C" → "a.b".
func namespaceOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}

	return name[:i]
}
