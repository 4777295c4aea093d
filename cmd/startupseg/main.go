// SPDX-License-Identifier: MIT

// Command startupseg clusters startups by funding behaviour.
//
//	startupseg cluster --input funding.csv --output report.yaml
//	startupseg elbow   --input funding.csv --k-max 8
//	startupseg summary --input funding.csv
//	startupseg generate --records 5000 --output sample.csv
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/startupseg/config"
	"github.com/katalvlaran/startupseg/funding"
	"github.com/katalvlaran/startupseg/ingest"
	"github.com/katalvlaran/startupseg/logging"
)

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	// flags
	input      string
	configPath string
	verbose    bool
	delimiter  string

	cfg    config.Config
	log    logr.Logger
	sync   func() error
	stdout io.Writer
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	a := &app{stdout: stdout, log: logr.Discard()}

	root := &cobra.Command{
		Use:   "startupseg",
		Short: "Segment startups into funding-behaviour clusters",
		Long: `startupseg aggregates funding rounds per startup, standardizes five
funding features, picks the number of clusters with the elbow rule (or takes
--k), runs k-means with seeded restarts and labels each cluster from
population-wide funding and round-count percentiles.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), a.configPath)
			if err != nil {
				return err
			}
			if a.verbose && cfg.LogLevel == logging.LevelInfo {
				cfg.LogLevel = logging.LevelDebug
			}
			log, sync, err := logging.NewLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg, a.log, a.sync = cfg, log, sync
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.sync != nil {
				_ = a.sync()
			}
		},
	}
	root.SetOut(stdout)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.input, "input", "i", "", "funding CSV to read")
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.delimiter, "delimiter", ",", "CSV field delimiter")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	config.RegisterFlags(pf)

	root.AddCommand(newClusterCmd(a), newElbowCmd(a), newSummaryCmd(a), newGenerateCmd(a))

	return root
}

// records reads --input.
func (a *app) records() ([]funding.Record, error) {
	rows, err := a.rows()
	if err != nil {
		return nil, err
	}

	return ingest.Records(rows), nil
}

// rows reads --input keeping the descriptive columns.
func (a *app) rows() ([]ingest.Row, error) {
	if a.input == "" {
		return nil, fmt.Errorf("--input is required")
	}
	delim := []rune(a.delimiter)
	if len(delim) != 1 {
		return nil, fmt.Errorf("--delimiter must be a single character, got %q", a.delimiter)
	}
	rows, st, err := ingest.ReadRowsFile(a.input, ingest.WithComma(delim[0]), ingest.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.log.Info("input loaded", "path", a.input, "rows", st.Rows, "kept", st.Kept,
		"duplicates", st.Duplicates, "missingEntity", st.MissingEntity, "badYear", st.BadYear)

	return rows, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
