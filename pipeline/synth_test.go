// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/startupseg/config"
	"github.com/katalvlaran/startupseg/funding"
	"github.com/katalvlaran/startupseg/ingest"
	"github.com/katalvlaran/startupseg/pipeline"
	"github.com/katalvlaran/startupseg/synth"
)

func sampleRecords(opts ...synth.Option) []funding.Record {
	var buf bytes.Buffer
	Expect(synth.WriteCSV(&buf, synth.Generate(opts...))).To(Succeed())
	recs, _, err := ingest.Read(&buf)
	Expect(err).NotTo(HaveOccurred())

	return recs
}

var _ = Describe("Pipeline on a generated dataset", func() {
	It("should cluster every cleaned entity", func() {
		recs := sampleRecords(synth.WithSeed(11), synth.WithRecords(600), synth.WithEntities(60))

		p, err := pipeline.New(config.Default())
		Expect(err).NotTo(HaveOccurred())
		rep, err := p.Run(context.Background(), recs)
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.Dataset.TotalRecords).To(Equal(600))
		Expect(rep.Assignment).To(HaveLen(rep.Dataset.TotalEntities))
		Expect(rep.Selection).NotTo(BeNil())
		Expect(rep.Model.K).To(BeNumerically(">=", 2))

		total := 0
		for _, s := range rep.Summaries {
			total += s.Size
			Expect(s.Label).NotTo(BeEmpty())
		}
		Expect(total).To(Equal(rep.Dataset.TotalEntities))
	})
})
