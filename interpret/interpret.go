// SPDX-License-Identifier: MIT

package interpret

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/startupseg/funding"
)

// Cluster labels, in decision-list order.
const (
	LabelHighGrowthUnicorns      = "High-Growth Unicorns"
	LabelLargeSingleRoundPlayers = "Large Single-Round Players"
	LabelMidTierGrowth           = "Mid-Tier Growth Startups"
	LabelFrequentSmallRound      = "Frequent Small-Round Startups"
	LabelEarlyStage              = "Early-Stage Ventures"
)

// TopN is how many categories and entities a Summary lists.
const TopN = 3

// Thresholds are population-wide percentiles used by Label.
type Thresholds struct {
	Funding50 float64 `yaml:"funding_p50" json:"funding_p50"`
	Funding75 float64 `yaml:"funding_p75" json:"funding_p75"`
	Rounds60  float64 `yaml:"rounds_p60" json:"rounds_p60"`
	Rounds75  float64 `yaml:"rounds_p75" json:"rounds_p75"`
}

// Stat is the mean and median of one feature within a cluster.
type Stat struct {
	Mean   float64 `yaml:"mean" json:"mean"`
	Median float64 `yaml:"median" json:"median"`
}

// CategoryCount is a category and how many cluster members list it first.
type CategoryCount struct {
	Category string `yaml:"category" json:"category"`
	Count    int    `yaml:"count" json:"count"`
}

// EntityFunding is a member and its total funding.
type EntityFunding struct {
	EntityID     string  `yaml:"entity_id" json:"entity_id"`
	TotalFunding float64 `yaml:"total_funding" json:"total_funding"`
}

// Summary describes one non-empty cluster. SharePercent is Size as a
// percentage of all entities; Members are entity ids in input order.
type Summary struct {
	ClusterID    int     `yaml:"cluster_id" json:"cluster_id"`
	Label        string  `yaml:"label" json:"label"`
	Size         int     `yaml:"size" json:"size"`
	SharePercent float64 `yaml:"share_percent" json:"share_percent"`

	TotalFunding       Stat    `yaml:"total_funding" json:"total_funding"`
	TotalFundingSum    float64 `yaml:"total_funding_sum" json:"total_funding_sum"`
	NumFundingRounds   Stat    `yaml:"num_funding_rounds" json:"num_funding_rounds"`
	YearsActive        Stat    `yaml:"years_active" json:"years_active"`
	AvgFundingPerRound Stat    `yaml:"avg_funding_per_round" json:"avg_funding_per_round"`
	FundingPerYear     Stat    `yaml:"funding_per_year" json:"funding_per_year"`

	Members       []string        `yaml:"members" json:"members"`
	TopCategories []CategoryCount `yaml:"top_categories" json:"top_categories"`
	TopEntities   []EntityFunding `yaml:"top_entities" json:"top_entities"`
}

// ComputeThresholds returns the 50th/75th percentiles of total funding and the
// 60th/75th percentiles of round counts across all vectors.
func ComputeThresholds(vectors []funding.FeatureVector) (Thresholds, error) {
	if len(vectors) == 0 {
		return Thresholds{}, fmt.Errorf("ComputeThresholds: %w", ErrEmptyInput)
	}
	fund := make([]float64, len(vectors))
	rounds := make([]float64, len(vectors))
	for i, v := range vectors {
		fund[i] = v.TotalFunding
		rounds[i] = float64(v.NumFundingRounds)
	}
	sort.Float64s(fund)
	sort.Float64s(rounds)

	return Thresholds{
		Funding50: quantileSorted(fund, 0.50),
		Funding75: quantileSorted(fund, 0.75),
		Rounds60:  quantileSorted(rounds, 0.60),
		Rounds75:  quantileSorted(rounds, 0.75),
	}, nil
}

// Label applies the ordered decision list; the first matching rule wins.
// All comparisons are strict.
func Label(meanFunding, meanRounds float64, t Thresholds) string {
	switch {
	case meanFunding > t.Funding75 && meanRounds > t.Rounds75:
		return LabelHighGrowthUnicorns
	case meanFunding > t.Funding75:
		return LabelLargeSingleRoundPlayers
	case meanFunding > t.Funding50:
		return LabelMidTierGrowth
	case meanRounds > t.Rounds60:
		return LabelFrequentSmallRound
	default:
		return LabelEarlyStage
	}
}

// Interpret summarizes and labels every non-empty cluster, ordered by cluster id.
//
// Every vector must have a non-negative entry in assignment; ids in assignment
// with no matching vector are ignored. Two clusters may share a label.
func Interpret(vectors []funding.FeatureVector, assignment map[string]int, t Thresholds) ([]Summary, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("Interpret: %w", ErrEmptyInput)
	}

	members := make(map[int][]funding.FeatureVector)
	for _, v := range vectors {
		c, ok := assignment[v.EntityID]
		if !ok || c < 0 {
			return nil, fmt.Errorf("Interpret: entity %q: %w", v.EntityID, ErrMissingAssignment)
		}
		members[c] = append(members[c], v)
	}

	ids := make([]int, 0, len(members))
	for c := range members {
		ids = append(ids, c)
	}
	sort.Ints(ids)

	out := make([]Summary, 0, len(ids))
	for _, c := range ids {
		out = append(out, summarize(c, members[c], len(vectors), t))
	}

	return out, nil
}

func summarize(id int, vs []funding.FeatureVector, population int, t Thresholds) Summary {
	col := func(get func(funding.FeatureVector) float64) []float64 {
		xs := make([]float64, len(vs))
		for i, v := range vs {
			xs[i] = get(v)
		}
		return xs
	}
	describe := func(xs []float64) Stat {
		return Stat{Mean: stat.Mean(xs, nil), Median: Quantile(xs, 0.5)}
	}

	total := col(func(v funding.FeatureVector) float64 { return v.TotalFunding })
	rounds := col(func(v funding.FeatureVector) float64 { return float64(v.NumFundingRounds) })

	s := Summary{
		ClusterID:          id,
		Size:               len(vs),
		SharePercent:       float64(len(vs)) / float64(population) * 100,
		TotalFunding:       describe(total),
		TotalFundingSum:    floats.Sum(total),
		NumFundingRounds:   describe(rounds),
		YearsActive:        describe(col(func(v funding.FeatureVector) float64 { return float64(v.YearsActive) })),
		AvgFundingPerRound: describe(col(func(v funding.FeatureVector) float64 { return v.AvgFundingPerRound })),
		FundingPerYear:     describe(col(func(v funding.FeatureVector) float64 { return v.FundingPerYear })),
		Members:            make([]string, len(vs)),
		TopCategories:      topCategories(vs),
		TopEntities:        topEntities(vs),
	}
	for i, v := range vs {
		s.Members[i] = v.EntityID
	}
	s.Label = Label(s.TotalFunding.Mean, s.NumFundingRounds.Mean, t)

	return s
}

// topCategories ranks CategoryFirst by frequency, ties broken by name.
func topCategories(vs []funding.FeatureVector) []CategoryCount {
	counts := make(map[string]int)
	for _, v := range vs {
		counts[v.CategoryFirst]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryCount{Category: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > TopN {
		out = out[:TopN]
	}

	return out
}

// topEntities ranks members by total funding; equal amounts keep input order.
func topEntities(vs []funding.FeatureVector) []EntityFunding {
	out := make([]EntityFunding, len(vs))
	for i, v := range vs {
		out[i] = EntityFunding{EntityID: v.EntityID, TotalFunding: v.TotalFunding}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalFunding > out[j].TotalFunding })
	if len(out) > TopN {
		out = out[:TopN]
	}

	return out
}
