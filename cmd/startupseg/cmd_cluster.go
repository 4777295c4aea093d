// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/startupseg/metrics"
	"github.com/katalvlaran/startupseg/pipeline"
	"github.com/katalvlaran/startupseg/report"
)

func newClusterCmd(a *app) *cobra.Command {
	var output, clustersCSV, metricsFile string

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster startups and write the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recs, err := a.records()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			m, err := metrics.New(reg)
			if err != nil {
				return fmt.Errorf("register metrics: %w", err)
			}
			p, err := pipeline.New(a.cfg, pipeline.WithLogger(a.log), pipeline.WithMetrics(m))
			if err != nil {
				return err
			}

			rep, runErr := p.Run(cmd.Context(), recs)
			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			if runErr != nil {
				return runErr
			}

			if output != "" {
				cfg := a.cfg
				if err := writeFile(output, func(w io.Writer) error {
					return report.WriteYAML(w, report.FromReport(rep, &cfg))
				}); err != nil {
					return err
				}
			}
			if clustersCSV != "" {
				if err := writeFile(clustersCSV, func(w io.Writer) error {
					return report.WriteClustersCSV(w, rep)
				}); err != nil {
					return err
				}
			}

			return printClusters(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the YAML report here")
	cmd.Flags().StringVar(&clustersCSV, "clusters-csv", "", "write per-entity assignments here")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics in text format here")

	return cmd
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return write(f)
}

func printClusters(w io.Writer, rep *pipeline.Report) error {
	fmt.Fprintf(w, "run %s: %d entities in %d clusters (inertia %.4f)\n",
		rep.RunID, len(rep.Vectors), rep.Model.K, rep.Model.Inertia)
	for _, warn := range rep.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLUSTER\tLABEL\tSIZE\tSHARE\tMEAN FUNDING\tMEAN ROUNDS\tTOP CATEGORIES\tTOP ENTITIES")
	for _, s := range rep.Summaries {
		cats := make([]string, len(s.TopCategories))
		for i, c := range s.TopCategories {
			cats[i] = c.Category
		}
		ents := make([]string, len(s.TopEntities))
		for i, e := range s.TopEntities {
			ents[i] = e.EntityID
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.1f%%\t%.0f\t%.2f\t%s\t%s\n",
			s.ClusterID, s.Label, s.Size, s.SharePercent,
			s.TotalFunding.Mean, s.NumFundingRounds.Mean,
			strings.Join(cats, ", "), strings.Join(ents, ", "))
	}

	return tw.Flush()
}
