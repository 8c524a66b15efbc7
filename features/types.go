// SPDX-License-Identifier: MIT
// Package features: output schema.
//
// JSON field names are consumed by the downstream training scripts and must
// not change.

package features

import (
	"encoding/json"
	"math"

	"github.com/gml4tdm/linkfeatures/core"
	"github.com/gml4tdm/linkfeatures/dataset/semantic"
)

// Score is a similarity value whose non-finite values encode as JSON null.
type Score float64

// MarshalJSON writes NaN and ±Inf as null.
func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(f)
}

// UnmarshalJSON reads null back as NaN.
func (s *Score) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = Score(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*s = Score(f)

	return nil
}

// Finite reports whether s is neither NaN nor infinite.
func (s Score) Finite() bool {
	f := float64(s)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Edge is an ordered vertex pair.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// LinkFeature is one training row: eight topological scores and sixteen
// semantic similarities of an ordered pair.
type LinkFeature struct {
	Edge               Edge  `json:"edge"`
	CommonNeighbours   int   `json:"common_neighbours"`
	Salton             Score `json:"salton"`
	Sorensen           Score `json:"sorenson"`
	AdamicAdar         Score `json:"adamic_adar"`
	RusselRao          Score `json:"russel_rao"`
	ResourceAllocation Score `json:"resource_allocation"`
	Katz               Score `json:"katz"`
	SimRank            Score `json:"sim_rank"`

	Cosine1  float64 `json:"cosine_1"`
	Cosine2  float64 `json:"cosine_2"`
	Cosine3  float64 `json:"cosine_3"`
	Cosine4  float64 `json:"cosine_4"`
	Cosine5  float64 `json:"cosine_5"`
	Cosine6  float64 `json:"cosine_6"`
	Cosine7  float64 `json:"cosine_7"`
	Cosine8  float64 `json:"cosine_8"`
	Cosine9  float64 `json:"cosine_9"`
	Cosine10 float64 `json:"cosine_10"`
	Cosine11 float64 `json:"cosine_11"`
	Cosine12 float64 `json:"cosine_12"`
	Cosine13 float64 `json:"cosine_13"`
	Cosine14 float64 `json:"cosine_14"`
	Cosine15 float64 `json:"cosine_15"`
	Cosine16 float64 `json:"cosine_16"`
}

// newLinkFeature merges both sides of one pair.
func newLinkFeature(e Edge, s core.LinkScores, c [semantic.CosineCount]float64) LinkFeature {
	return LinkFeature{
		Edge:               e,
		CommonNeighbours:   s.CommonNeighbours,
		Salton:             Score(s.Salton),
		Sorensen:           Score(s.Sorensen),
		AdamicAdar:         Score(s.AdamicAdar),
		RusselRao:          Score(s.RusselRao),
		ResourceAllocation: Score(s.ResourceAllocation),
		Katz:               Score(s.Katz),
		SimRank:            Score(s.SimRank),
		Cosine1:            c[0],
		Cosine2:            c[1],
		Cosine3:            c[2],
		Cosine4:            c[3],
		Cosine5:            c[4],
		Cosine6:            c[5],
		Cosine7:            c[6],
		Cosine8:            c[7],
		Cosine9:            c[8],
		Cosine10:           c[9],
		Cosine11:           c[10],
		Cosine12:           c[11],
		Cosine13:           c[12],
		Cosine14:           c[13],
		Cosine15:           c[14],
		Cosine16:           c[15],
	}
}

// Topological returns the eight graph scores in JSON column order,
// common_neighbours first.
func (lf LinkFeature) Topological() [8]float64 {
	return [8]float64{
		float64(lf.CommonNeighbours),
		float64(lf.Salton),
		float64(lf.Sorensen),
		float64(lf.AdamicAdar),
		float64(lf.RusselRao),
		float64(lf.ResourceAllocation),
		float64(lf.Katz),
		float64(lf.SimRank),
	}
}

// Cosines returns the sixteen semantic similarities in semantic.Columns order.
func (lf LinkFeature) Cosines() [semantic.CosineCount]float64 {
	return [semantic.CosineCount]float64{
		lf.Cosine1, lf.Cosine2, lf.Cosine3, lf.Cosine4,
		lf.Cosine5, lf.Cosine6, lf.Cosine7, lf.Cosine8,
		lf.Cosine9, lf.Cosine10, lf.Cosine11, lf.Cosine12,
		lf.Cosine13, lf.Cosine14, lf.Cosine15, lf.Cosine16,
	}
}

// GraphFeatureData is the complete feature table of one graph.
type GraphFeatureData struct {
	Nodes                           []string      `json:"nodes"`
	Edges                           []Edge        `json:"edges"`
	PairsWithoutSemanticFeatures    []Edge        `json:"pairs_without_semantic_features"`
	PairsWithoutTopologicalFeatures []Edge        `json:"pairs_without_topological_features"`
	LinkFeatures                    []LinkFeature `json:"link_features"`
}
