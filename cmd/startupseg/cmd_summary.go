// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/startupseg/analysis"
	"github.com/katalvlaran/startupseg/funding"
	"github.com/katalvlaran/startupseg/ingest"
	"github.com/katalvlaran/startupseg/report"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		top    int
		output string
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print dataset totals and exploratory tables after cleaning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if top < 1 {
				return fmt.Errorf("--top must be at least 1, got %d", top)
			}
			rows, err := a.rows()
			if err != nil {
				return err
			}
			rep, err := analysis.Analyze(rows, analysis.WithTopN(top), analysis.WithLogger(a.log))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTotals(w, funding.Summarize(ingest.Records(rows)))
			if err := printAnalysis(w, rep); err != nil {
				return err
			}
			if output != "" {
				if err := writeFile(output, func(f io.Writer) error {
					return report.WriteAnalysisYAML(f, rep)
				}); err != nil {
					return err
				}
				a.log.Info("analysis written", "path", output)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", analysis.DefaultTopN, "entries kept in each ranked table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the tables as YAML to this path")

	return cmd
}

func printTotals(w io.Writer, s funding.DatasetSummary) {
	fmt.Fprintf(w, "Total Records: %d\n", s.TotalRecords)
	fmt.Fprintf(w, "Total Startups: %d\n", s.TotalEntities)
	fmt.Fprintf(w, "Total Funding: %.0f\n", s.TotalFunding)
	fmt.Fprintf(w, "Avg Funding: %.0f\n", s.AvgFunding)
	fmt.Fprintf(w, "Total Industries: %d\n", s.TotalCategories)
	fmt.Fprintf(w, "Total Cities: %d\n", s.TotalLocations)
	fmt.Fprintf(w, "Years: %d to %d\n", s.FirstYear, s.LastYear)
}

func printAnalysis(w io.Writer, rep *analysis.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	d := rep.Funding
	fmt.Fprintln(tw, "\nFUNDING\tMEAN\tMEDIAN\tSTD\tMIN\tP25\tP75\tP95\tMAX")
	fmt.Fprintf(tw, "amount\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\n",
		d.Mean, d.Median, d.Std, d.Min, d.P25, d.P75, d.P95, d.Max)

	printGroups(tw, "TOP STARTUPS", rep.TopStartups)
	printGroups(tw, "INDUSTRY", rep.Industries)
	printGroups(tw, "CITY", rep.Cities)
	printGroups(tw, "STATE", rep.States)
	printGroups(tw, "ROUND", rep.Rounds)

	fmt.Fprintln(tw, "\nYEAR\tSUM\tCOUNT\tMEAN")
	for _, y := range rep.Years {
		fmt.Fprintf(tw, "%d\t%.0f\t%d\t%.0f\n", y.Year, y.Sum, y.Count, y.Mean)
	}

	fmt.Fprintln(tw, "\nINVESTOR\tDEALS")
	for _, inv := range rep.Investors {
		fmt.Fprintf(tw, "%s\t%d\n", inv.Name, inv.Deals)
	}

	c := rep.Correlation
	fmt.Fprintf(tw, "\nCORRELATION\t%s\n", strings.Join(c.Names, "\t"))
	for i, name := range c.Names {
		cells := make([]string, len(c.Values[i]))
		for j, v := range c.Values[i] {
			if math.IsNaN(v) {
				cells[j] = "-"
				continue
			}
			cells[j] = fmt.Sprintf("%.3f", v)
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	o := rep.Outliers
	fmt.Fprintf(w, "\nOutliers: %d (%.2f%%) outside [%.0f, %.0f]\n", o.Count, o.SharePercent, o.Lower, o.Upper)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(o.Top) > 0 {
		fmt.Fprintln(tw, "STARTUP\tINDUSTRY\tCITY\tYEAR\tAMOUNT")
	}
	for _, r := range o.Top {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.0f\n", r.EntityID, r.Category, r.Location, r.Year, r.Amount)
	}

	return tw.Flush()
}

func printGroups(w io.Writer, title string, groups []analysis.Group) {
	fmt.Fprintf(w, "\n%s\tSUM\tCOUNT\tMEAN\n", title)
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%.0f\t%d\t%.0f\n", g.Key, g.Sum, g.Count, g.Mean)
	}
}
