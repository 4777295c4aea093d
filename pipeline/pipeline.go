// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/katalvlaran/startupseg/config"
	"github.com/katalvlaran/startupseg/elbow"
	"github.com/katalvlaran/startupseg/funding"
	"github.com/katalvlaran/startupseg/interpret"
	"github.com/katalvlaran/startupseg/kmeans"
	"github.com/katalvlaran/startupseg/logging"
	"github.com/katalvlaran/startupseg/matrix"
	"github.com/katalvlaran/startupseg/metrics"
	"github.com/katalvlaran/startupseg/scale"
)

// Pipeline runs feature building, scaling, k selection, training and
// interpretation as one stateless batch. A Pipeline is safe for concurrent Runs.
type Pipeline struct {
	cfg     config.Config
	log     logr.Logger
	metrics *metrics.Metrics
	newID   func() string
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger; the default discards.
func WithLogger(log logr.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithMetrics records run metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithRunID overrides the run id generator.
func WithRunID(fn func() string) Option {
	if fn == nil {
		panic("pipeline: WithRunID(nil)")
	}
	return func(p *Pipeline) { p.newID = fn }
}

// New validates cfg and returns a Pipeline.
func New(cfg config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{cfg: cfg, log: logr.Discard(), newID: uuid.NewString}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p, nil
}

func (p *Pipeline) trainOptions() []kmeans.Option {
	init := kmeans.InitKMeansPlusPlus
	if p.cfg.Init == config.InitRandom {
		init = kmeans.InitRandom
	}

	return []kmeans.Option{
		kmeans.WithSeed(p.cfg.Seed),
		kmeans.WithRestarts(p.cfg.Restarts),
		kmeans.WithMaxIterations(p.cfg.MaxIterations),
		kmeans.WithInit(init),
		kmeans.WithParallelism(p.cfg.Parallelism),
		kmeans.WithLogger(p.log),
	}
}

// prepared is the standardized input shared by Run and SelectK.
type prepared struct {
	vectors  []funding.FeatureVector
	scaled   *matrix.Dense
	params   scale.Parameters
	imputed  int
	warnings []string
}

func (p *Pipeline) prepare(records []funding.Record) (*prepared, error) {
	vectors, err := funding.Build(records)
	if err != nil {
		return nil, err
	}
	X, imputed, err := funding.FeatureMatrix(vectors)
	if err != nil {
		return nil, err
	}
	p.metrics.ObserveImputed(imputed)
	Z, params, err := scale.FitTransform(X)
	if err != nil {
		return nil, err
	}

	out := &prepared{vectors: vectors, scaled: Z, params: params, imputed: imputed}
	if imputed > 0 {
		out.warnings = append(out.warnings, fmt.Sprintf("%d non-finite feature values imputed as 0", imputed))
	}
	names := funding.FeatureNames()
	for _, w := range params.Warnings() {
		p.log.Info("feature has zero variance and is scaled to 0", "feature", names[w.Column])
		out.warnings = append(out.warnings, fmt.Sprintf("%s (%s)", w, names[w.Column]))
	}
	p.log.V(logging.DEBUG).Info("features prepared", "entities", len(vectors), "imputed", imputed)

	return out, nil
}

func (p *Pipeline) selectK(ctx context.Context, Z *matrix.Dense) (*elbow.Selection, error) {
	sel, err := elbow.SelectK(ctx, Z,
		elbow.WithRange(p.cfg.KMin, p.cfg.KMax),
		elbow.WithTrainOptions(p.trainOptions()...),
		elbow.WithParallelism(p.cfg.Parallelism),
		elbow.WithLogger(p.log),
	)
	if err != nil {
		return nil, err
	}
	p.metrics.ObserveTrainings(p.cfg.KMax - p.cfg.KMin + 1)

	return sel, nil
}

// SelectK runs only the elbow sweep over records.
func (p *Pipeline) SelectK(ctx context.Context, records []funding.Record) (*elbow.Selection, error) {
	in, err := p.prepare(records)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	sel, err := p.selectK(ctx, in.scaled)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return sel, nil
}

// Run clusters records end to end. On any error no partial report is returned.
func (p *Pipeline) Run(ctx context.Context, records []funding.Record) (rep *Report, err error) {
	start := time.Now()
	runID := p.newID()
	log := p.log.WithValues("run", runID)
	defer func() {
		p.metrics.ObserveRun(err, time.Since(start))
		if err != nil {
			log.Error(err, "clustering run failed")
		}
	}()

	in, err := p.prepare(records)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	var sel *elbow.Selection
	k := p.cfg.K
	if k == 0 {
		if sel, err = p.selectK(ctx, in.scaled); err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		k = sel.K
		if sel.Defaulted {
			in.warnings = append(in.warnings, fmt.Sprintf("no elbow found in [%d, %d]; using k=%d", p.cfg.KMin, p.cfg.KMax, k))
		}
	}

	res, err := kmeans.Train(ctx, in.scaled, k, p.trainOptions()...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	p.metrics.ObserveTrainings(1)

	assignment := make(Assignment, len(in.vectors))
	for i, v := range in.vectors {
		assignment[v.EntityID] = res.Assignments[i]
	}

	th, err := interpret.ComputeThresholds(in.vectors)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	summaries, err := interpret.Interpret(in.vectors, assignment, th)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	p.metrics.ObserveModel(k, len(in.vectors), res.Inertia)
	log.Info("clustering run finished", "entities", len(in.vectors), "k", k,
		"inertia", res.Inertia, "converged", res.Converged, "elapsed", time.Since(start).String())

	return &Report{
		RunID:      runID,
		Dataset:    funding.Summarize(records),
		Vectors:    in.vectors,
		Assignment: assignment,
		Model: Model{
			K:            k,
			FeatureNames: funding.FeatureNames(),
			Centroids:    res.Centroids,
			Scaling:      in.params,
			Inertia:      res.Inertia,
			Iterations:   res.Iterations,
			Converged:    res.Converged,
		},
		Selection:  sel,
		Thresholds: th,
		Summaries:  summaries,
		Imputed:    in.imputed,
		Warnings:   in.warnings,
	}, nil
}
