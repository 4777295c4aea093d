// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/startupseg/synth"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		output      string
		records     int
		entities    int
		duplicates  int
		missingRate float64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a seeded sample funding CSV",
		Long: `generate writes a synthetic funding dataset with skewed amounts, a few
blank fields and exact duplicate rows. The same --seed always yields the
same file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := synth.Generate(
				synth.WithSeed(a.cfg.Seed),
				synth.WithRecords(records),
				synth.WithEntities(entities),
				synth.WithDuplicates(duplicates),
				synth.WithMissingRate(missingRate),
			)
			a.log.Info("sample generated", "rows", len(rows), "seed", a.cfg.Seed)
			if output == "" {
				return synth.WriteCSV(cmd.OutOrStdout(), rows)
			}

			return writeFile(output, func(w io.Writer) error {
				return synth.WriteCSV(w, rows)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the CSV here instead of stdout")
	cmd.Flags().IntVar(&records, "records", synth.DefaultRecords, "funding rounds to generate")
	cmd.Flags().IntVar(&entities, "entities", synth.DefaultEntities, "size of the startup pool")
	cmd.Flags().IntVar(&duplicates, "duplicates", synth.DefaultDuplicates, "rows repeated verbatim")
	cmd.Flags().Float64Var(&missingRate, "missing-rate", synth.DefaultMissingRate, "share of rows with a blank text field")

	return cmd
}
