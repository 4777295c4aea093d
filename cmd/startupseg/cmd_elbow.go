// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/startupseg/pipeline"
)

func newElbowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "elbow",
		Short: "Print the inertia curve and the k the elbow rule picks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recs, err := a.records()
			if err != nil {
				return err
			}
			p, err := pipeline.New(a.cfg, pipeline.WithLogger(a.log))
			if err != nil {
				return err
			}
			sel, err := p.SelectK(cmd.Context(), recs)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "K\tINERTIA\tDROP %")
			for j, pt := range sel.Curve {
				drop := "-"
				if j > 0 {
					drop = fmt.Sprintf("%.2f", sel.Rates[j-1])
				}
				fmt.Fprintf(tw, "%d\t%.4f\t%s\n", pt.K, pt.Inertia, drop)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			suffix := ""
			if sel.Defaulted {
				suffix = " (no elbow found, default)"
			}
			fmt.Fprintf(w, "threshold %.2f%%, chosen k=%d%s\n", sel.Threshold, sel.K, suffix)

			return nil
		},
	}
}
