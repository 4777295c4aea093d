// SPDX-License-Identifier: MIT

// Package report exports a pipeline.Report as a YAML document and as a
// per-entity CSV, and the dataset tables of analysis.Report as YAML.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/startupseg/analysis"
	"github.com/katalvlaran/startupseg/config"
	"github.com/katalvlaran/startupseg/elbow"
	"github.com/katalvlaran/startupseg/funding"
	"github.com/katalvlaran/startupseg/interpret"
	"github.com/katalvlaran/startupseg/pipeline"
)

// Model is the serializable form of pipeline.Model.
type Model struct {
	K            int         `yaml:"k"`
	FeatureNames []string    `yaml:"feature_names"`
	Centroids    [][]float64 `yaml:"centroids"`
	Means        []float64   `yaml:"means"`
	Stds         []float64   `yaml:"stds"`
	Degenerate   []int       `yaml:"degenerate,omitempty"`
	Inertia      float64     `yaml:"inertia"`
	Iterations   int         `yaml:"iterations"`
	Converged    bool        `yaml:"converged"`
}

// Document is the YAML report.
type Document struct {
	RunID      string                 `yaml:"run_id"`
	Config     *config.Config         `yaml:"config,omitempty"`
	Dataset    funding.DatasetSummary `yaml:"dataset"`
	Model      Model                  `yaml:"model"`
	Selection  *elbow.Selection       `yaml:"selection,omitempty"`
	Thresholds interpret.Thresholds   `yaml:"thresholds"`
	Clusters   []interpret.Summary    `yaml:"clusters"`
	Imputed    int                    `yaml:"imputed"`
	Warnings   []string               `yaml:"warnings,omitempty"`
}

// FromReport builds the Document for rep. cfg is optional.
func FromReport(rep *pipeline.Report, cfg *config.Config) Document {
	return Document{
		RunID:   rep.RunID,
		Config:  cfg,
		Dataset: rep.Dataset,
		Model: Model{
			K:            rep.Model.K,
			FeatureNames: rep.Model.FeatureNames,
			Centroids:    rep.Model.CentroidRows(),
			Means:        rep.Model.Scaling.Means,
			Stds:         rep.Model.Scaling.Stds,
			Degenerate:   rep.Model.Scaling.Degenerate,
			Inertia:      rep.Model.Inertia,
			Iterations:   rep.Model.Iterations,
			Converged:    rep.Model.Converged,
		},
		Selection:  rep.Selection,
		Thresholds: rep.Thresholds,
		Clusters:   rep.Summaries,
		Imputed:    rep.Imputed,
		Warnings:   rep.Warnings,
	}
}

// WriteYAML encodes doc with two-space indentation.
func WriteYAML(w io.Writer, doc Document) error {
	return encodeYAML(w, doc)
}

// WriteAnalysisYAML encodes the dataset tables the same way as WriteYAML.
func WriteAnalysisYAML(w io.Writer, rep *analysis.Report) error {
	return encodeYAML(w, rep)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

// ReadYAML decodes a Document written by WriteYAML.
func ReadYAML(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("report: decode yaml: %w", err)
	}

	return doc, nil
}

// ClustersHeader is the header row of WriteClustersCSV.
var ClustersHeader = []string{
	"entity", "category", "location",
	"total_funding", "avg_funding_per_round", "num_funding_rounds", "years_active",
	"funding_per_year", "log_total_funding", "log_avg_funding",
	"cluster", "label",
}

// WriteClustersCSV writes one row per entity in input order.
func WriteClustersCSV(w io.Writer, rep *pipeline.Report) error {
	labels := make(map[int]string, len(rep.Summaries))
	for _, s := range rep.Summaries {
		labels[s.ClusterID] = s.Label
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ClustersHeader); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	for _, v := range rep.Vectors {
		c := rep.Assignment[v.EntityID]
		row := []string{
			v.EntityID, v.CategoryFirst, v.LocationFirst,
			formatFloat(v.TotalFunding), formatFloat(v.AvgFundingPerRound),
			strconv.Itoa(v.NumFundingRounds), strconv.Itoa(v.YearsActive),
			formatFloat(v.FundingPerYear), formatFloat(v.LogTotalFunding), formatFloat(v.LogAvgFunding),
			strconv.Itoa(c), labels[c],
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write csv row %s: %w", v.EntityID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush csv: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
