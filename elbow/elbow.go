// SPDX-License-Identifier: MIT

package elbow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/startupseg/kmeans"
	"github.com/katalvlaran/startupseg/logging"
	"github.com/katalvlaran/startupseg/matrix"
)

const methodSelectK = "SelectK"

// Point is one sample of the inertia curve.
type Point struct {
	K       int     `yaml:"k" json:"k"`
	Inertia float64 `yaml:"inertia" json:"inertia"`
}

// Selection is the chosen K together with the diagnostics that produced it.
// Curve holds one point per k in increasing order; Rates[j] is the percentage
// drop in inertia from Curve[j] to Curve[j+1]; Threshold is half the mean rate.
// Defaulted is true when no rate fell below Threshold and K is DefaultK.
type Selection struct {
	K         int       `yaml:"k" json:"k"`
	Curve     []Point   `yaml:"curve" json:"curve"`
	Rates     []float64 `yaml:"rates" json:"rates"`
	Threshold float64   `yaml:"threshold" json:"threshold"`
	Defaulted bool      `yaml:"defaulted" json:"defaulted"`
}

// SelectK trains one model per k in [kMin, kMax] and picks K with Choose.
//
// Contract:
//   - kMin ≥ 1 and kMax ≥ kMin, otherwise ErrInvalidRange.
//   - kMax ≤ X.Rows(), otherwise kmeans.ErrInvalidClusterCount; both are checked before any training.
//   - The curve is assembled in increasing k whatever WithParallelism is.
//
// Complexity: (kMax-kMin+1) kmeans.Train calls.
func SelectK(ctx context.Context, X *matrix.Dense, opts ...Option) (*Selection, error) {
	cfg := newConfig(opts...)
	if cfg.kMin < 1 || cfg.kMax < cfg.kMin {
		return nil, fmt.Errorf("%s: [%d, %d]: %w", methodSelectK, cfg.kMin, cfg.kMax, ErrInvalidRange)
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSelectK, err)
	}
	if cfg.kMax > X.Rows() {
		return nil, fmt.Errorf("%s: kMax=%d with %d entities: %w",
			methodSelectK, cfg.kMax, X.Rows(), kmeans.ErrInvalidClusterCount)
	}

	inertias := make([]float64, cfg.kMax-cfg.kMin+1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)
	for j := range inertias {
		j := j
		k := cfg.kMin + j
		g.Go(func() error {
			res, err := kmeans.Train(gctx, X, k, cfg.train...)
			if err != nil {
				return fmt.Errorf("k=%d: %w", k, err)
			}
			inertias[j] = res.Inertia
			cfg.log.V(logging.DEBUG).Info("elbow point", "k", k, "inertia", res.Inertia, "restart", res.Restart)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSelectK, err)
	}

	sel := Choose(cfg.kMin, inertias)
	cfg.log.V(logging.DEBUG).Info("elbow chosen", "k", sel.K, "threshold", sel.Threshold, "defaulted", sel.Defaulted)

	return &sel, nil
}

// Choose applies the elbow rule to an inertia curve whose first point is k = kMin.
//
// The rule: rates[j] = (inertia[j] − inertia[j+1]) / inertia[j] · 100, threshold =
// mean(rates) · 0.5; the first j ≥ 1 with rates[j] < threshold gives K = kMin + j + 1.
// Index j = 0 is never a candidate. With no such j, K = DefaultK and Defaulted is set.
// A zero inertia[j] yields rates[j] = 0.
func Choose(kMin int, inertias []float64) Selection {
	sel := Selection{
		Curve: make([]Point, len(inertias)),
		K:     DefaultK,
	}
	for j, v := range inertias {
		sel.Curve[j] = Point{K: kMin + j, Inertia: v}
	}
	if len(inertias) < 2 {
		sel.Rates = []float64{}
		sel.Defaulted = true
		return sel
	}

	sel.Rates = make([]float64, len(inertias)-1)
	for j := range sel.Rates {
		if inertias[j] != 0 {
			sel.Rates[j] = (inertias[j] - inertias[j+1]) / inertias[j] * 100
		}
	}
	sel.Threshold = stat.Mean(sel.Rates, nil) * 0.5

	for j := 1; j < len(sel.Rates); j++ {
		if sel.Rates[j] < sel.Threshold {
			sel.K = kMin + j + 1
			return sel
		}
	}
	sel.Defaulted = true

	return sel
}
