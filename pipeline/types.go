// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/katalvlaran/startupseg/elbow"
	"github.com/katalvlaran/startupseg/funding"
	"github.com/katalvlaran/startupseg/interpret"
	"github.com/katalvlaran/startupseg/matrix"
	"github.com/katalvlaran/startupseg/scale"
)

// Assignment maps every entity id to its cluster index.
type Assignment map[string]int

// Model is a fitted partition: centroids live in standardized space and are
// only meaningful together with the Scaling that produced it.
type Model struct {
	K            int
	FeatureNames []string
	Centroids    *matrix.Dense
	Scaling      scale.Parameters
	Inertia      float64
	Iterations   int
	Converged    bool
}

// CentroidRows returns the centroids as owned rows.
func (m Model) CentroidRows() [][]float64 {
	if m.Centroids == nil {
		return nil
	}
	out := make([][]float64, m.Centroids.Rows())
	for c := range out {
		out[c], _ = m.Centroids.Row(c)
	}

	return out
}

// Report is everything one Run produced.
type Report struct {
	RunID      string
	Dataset    funding.DatasetSummary
	Vectors    []funding.FeatureVector
	Assignment Assignment
	Model      Model
	// Selection is nil when the cluster count was fixed.
	Selection  *elbow.Selection
	Thresholds interpret.Thresholds
	Summaries  []interpret.Summary
	// Imputed counts feature cells replaced with 0 before scaling.
	Imputed  int
	Warnings []string
}

// LabelOf returns the label of the cluster entity was assigned to.
func (r *Report) LabelOf(entity string) (string, bool) {
	c, ok := r.Assignment[entity]
	if !ok {
		return "", false
	}
	for _, s := range r.Summaries {
		if s.ClusterID == c {
			return s.Label, true
		}
	}

	return "", false
}
