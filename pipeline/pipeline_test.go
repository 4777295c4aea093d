// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"context"
	"fmt"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/katalvlaran/startupseg/config"
	"github.com/katalvlaran/startupseg/elbow"
	"github.com/katalvlaran/startupseg/funding"
	"github.com/katalvlaran/startupseg/interpret"
	"github.com/katalvlaran/startupseg/kmeans"
	"github.com/katalvlaran/startupseg/matrix"
	"github.com/katalvlaran/startupseg/metrics"
	"github.com/katalvlaran/startupseg/pipeline"
)

// portfolio builds three well separated behaviours:
// big-N raise 50M in each of 2015..2018, small-N raise 100k once in 2021,
// mid-N raise 5M in 2018 and 2019.
func portfolio() []funding.Record {
	var recs []funding.Record
	for i := 0; i < 5; i++ {
		for y := 2015; y <= 2018; y++ {
			recs = append(recs, funding.Record{EntityID: fmt.Sprintf("big-%d", i), Amount: 50e6, Year: y, Category: "Fintech", Location: "Bangalore"})
		}
	}
	for i := 0; i < 10; i++ {
		recs = append(recs, funding.Record{EntityID: fmt.Sprintf("small-%d", i), Amount: 100e3, Year: 2021, Category: "Edtech", Location: "Pune"})
	}
	for i := 0; i < 6; i++ {
		for y := 2018; y <= 2019; y++ {
			recs = append(recs, funding.Record{EntityID: fmt.Sprintf("mid-%d", i), Amount: 5e6, Year: y, Category: "Saas", Location: "Delhi"})
		}
	}

	return recs
}

func fixedID() string { return "run-test" }

var denseEqual = cmp.Comparer(func(a, b *matrix.Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Rows() == b.Rows() && a.Cols() == b.Cols() && cmp.Equal(a.RawData(), b.RawData())
})

var _ = Describe("Pipeline", func() {
	var (
		ctx context.Context
		cfg config.Config
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.Default()
	})

	Context("with a fixed cluster count", func() {
		BeforeEach(func() {
			cfg.K = 3
		})

		It("should separate the three behaviours", func() {
			p, err := pipeline.New(cfg, pipeline.WithRunID(fixedID))
			Expect(err).NotTo(HaveOccurred())

			rep, err := p.Run(ctx, portfolio())
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Selection).To(BeNil())
			Expect(rep.Model.K).To(Equal(3))
			Expect(rep.Assignment).To(HaveLen(21))
			Expect(rep.Vectors).To(HaveLen(21))
			Expect(rep.Summaries).To(HaveLen(3))

			for _, group := range []string{"big", "small", "mid"} {
				first := rep.Assignment[group+"-0"]
				for id, c := range rep.Assignment {
					if len(id) > len(group) && id[:len(group)+1] == group+"-" {
						Expect(c).To(Equal(first), "entity %s", id)
					} else {
						Expect(c).NotTo(Equal(first), "entity %s", id)
					}
				}
			}

			label, ok := rep.LabelOf("big-3")
			Expect(ok).To(BeTrue())
			Expect(label).To(Equal(interpret.LabelHighGrowthUnicorns))
		})

		It("should report dataset totals and model shape", func() {
			p, err := pipeline.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			rep, err := p.Run(ctx, portfolio())
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.RunID).NotTo(BeEmpty())
			Expect(rep.Dataset.TotalRecords).To(Equal(42))
			Expect(rep.Dataset.TotalEntities).To(Equal(21))
			Expect(rep.Dataset.FirstYear).To(Equal(2015))
			Expect(rep.Dataset.LastYear).To(Equal(2021))
			Expect(rep.Model.FeatureNames).To(Equal(funding.FeatureNames()))
			Expect(rep.Model.CentroidRows()).To(HaveLen(3))
			Expect(rep.Model.Scaling.Means).To(HaveLen(funding.NumFeatures))

			sizes := 0
			for _, s := range rep.Summaries {
				sizes += s.Size
			}
			Expect(sizes).To(Equal(21))
		})

		It("should be deterministic across runs and parallelism", func() {
			a, err := pipeline.New(cfg, pipeline.WithRunID(fixedID))
			Expect(err).NotTo(HaveOccurred())
			par := cfg
			par.Parallelism = 4
			b, err := pipeline.New(par, pipeline.WithRunID(fixedID))
			Expect(err).NotTo(HaveOccurred())

			ra, err := a.Run(ctx, portfolio())
			Expect(err).NotTo(HaveOccurred())
			rb, err := b.Run(ctx, portfolio())
			Expect(err).NotTo(HaveOccurred())
			Expect(cmp.Diff(ra, rb, denseEqual)).To(BeEmpty())
		})

		It("should fail without partial output when K exceeds the entity count", func() {
			cfg.K = 22
			p, err := pipeline.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			rep, err := p.Run(ctx, portfolio())
			Expect(err).To(MatchError(kmeans.ErrInvalidClusterCount))
			Expect(rep).To(BeNil())
		})
	})

	Context("with elbow selection", func() {
		It("should choose K from the sweep and train with it", func() {
			p, err := pipeline.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			rep, err := p.Run(ctx, portfolio())
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Selection).NotTo(BeNil())
			Expect(rep.Selection.Curve).To(HaveLen(cfg.KMax - cfg.KMin + 1))
			Expect(rep.Model.K).To(Equal(rep.Selection.K))
			for _, c := range rep.Assignment {
				Expect(c).To(BeNumerically(">=", 0))
				Expect(c).To(BeNumerically("<", rep.Model.K))
			}

			sel, err := p.SelectK(ctx, portfolio())
			Expect(err).NotTo(HaveOccurred())
			Expect(sel).To(Equal(rep.Selection))
		})

		It("should reject a sweep wider than the population", func() {
			p, err := pipeline.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			_, err = p.Run(ctx, portfolio()[:4])
			Expect(err).To(MatchError(kmeans.ErrInvalidClusterCount))
		})

		It("should fail when the fallback K exceeds the population", func() {
			cfg.KMin, cfg.KMax = 2, 3
			p, err := pipeline.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			trio := []funding.Record{
				{EntityID: "a", Amount: 1e6, Year: 2019, Category: "Fintech", Location: "Pune"},
				{EntityID: "b", Amount: 5e6, Year: 2020, Category: "Edtech", Location: "Delhi"},
				{EntityID: "b", Amount: 5e6, Year: 2021, Category: "Edtech", Location: "Delhi"},
				{EntityID: "c", Amount: 9e7, Year: 2016, Category: "Saas", Location: "Mumbai"},
			}

			sel, err := p.SelectK(ctx, trio)
			Expect(err).NotTo(HaveOccurred())
			Expect(sel.Defaulted).To(BeTrue())
			Expect(sel.K).To(Equal(elbow.DefaultK))
			Expect(sel.Curve).To(HaveLen(2))

			rep, err := p.Run(ctx, trio)
			Expect(err).To(MatchError(kmeans.ErrInvalidClusterCount))
			Expect(rep).To(BeNil())
		})
	})

	Context("with bad input", func() {
		It("should surface empty input", func() {
			p, err := pipeline.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			rep, err := p.Run(ctx, nil)
			Expect(err).To(MatchError(funding.ErrEmptyInput))
			Expect(rep).To(BeNil())
		})

		It("should reject an invalid configuration", func() {
			cfg.Restarts = 0
			_, err := pipeline.New(cfg)
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})

		It("should stop on a cancelled context", func() {
			p, err := pipeline.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err = p.Run(cctx, portfolio())
			Expect(err).To(MatchError(context.Canceled))
		})

		It("should warn about a zero-variance feature", func() {
			recs := []funding.Record{
				{EntityID: "a", Amount: 1e6, Year: 2020},
				{EntityID: "b", Amount: 2e6, Year: 2020},
				{EntityID: "c", Amount: 9e6, Year: 2020},
			}
			cfg.K = 2
			p, err := pipeline.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			rep, err := p.Run(ctx, recs)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Model.Scaling.Degenerate).To(Equal([]int{int(funding.NumFundingRounds), int(funding.YearsActive)}))
			Expect(rep.Warnings).To(HaveLen(2))
			Expect(rep.Assignment["a"]).To(Equal(rep.Assignment["b"]))
			Expect(rep.Assignment["c"]).NotTo(Equal(rep.Assignment["a"]))
		})
	})

	Context("with metrics", func() {
		It("should record successful and failed runs", func() {
			reg := prometheus.NewRegistry()
			m, err := metrics.New(reg)
			Expect(err).NotTo(HaveOccurred())
			cfg.K = 3
			p, err := pipeline.New(cfg, pipeline.WithMetrics(m))
			Expect(err).NotTo(HaveOccurred())

			_, err = p.Run(ctx, portfolio())
			Expect(err).NotTo(HaveOccurred())
			_, err = p.Run(ctx, nil)
			Expect(err).To(HaveOccurred())

			Expect(testutil.ToFloat64(m.Runs.WithLabelValues(metrics.OutcomeSuccess))).To(Equal(1.0))
			Expect(testutil.ToFloat64(m.Runs.WithLabelValues(metrics.OutcomeFailure))).To(Equal(1.0))
			Expect(testutil.ToFloat64(m.ChosenK)).To(Equal(3.0))
			Expect(testutil.ToFloat64(m.Entities)).To(Equal(21.0))
			Expect(testutil.ToFloat64(m.TrainingRuns)).To(Equal(1.0))
		})
	})
})
