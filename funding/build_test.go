// SPDX-License-Identifier: MIT

package funding_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/startupseg/funding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_EmptyInput verifies that Build refuses an empty record set.
func TestBuild_EmptyInput(t *testing.T) {
	_, err := funding.Build(nil)
	assert.ErrorIs(t, err, funding.ErrEmptyInput)

	_, err = funding.Build([]funding.Record{})
	assert.ErrorIs(t, err, funding.ErrEmptyInput)
}

// TestBuild_TwoRoundScenario checks every derived field on a hand-computed entity.
func TestBuild_TwoRoundScenario(t *testing.T) {
	records := []funding.Record{
		{EntityID: "A", Amount: 1_000_000, Year: 2019, Category: "Fintech", Location: "Bengaluru"},
		{EntityID: "A", Amount: 3_000_000, Year: 2021, Category: "Edtech", Location: "Mumbai"},
	}

	vectors, err := funding.Build(records)
	require.NoError(t, err)
	require.Len(t, vectors, 1)

	v := vectors[0]
	assert.Equal(t, "A", v.EntityID)
	assert.Equal(t, 4_000_000.0, v.TotalFunding)
	assert.Equal(t, 2_000_000.0, v.AvgFundingPerRound)
	assert.Equal(t, 2, v.NumFundingRounds)
	assert.Equal(t, 3, v.YearsActive)
	assert.InDelta(t, 1_333_333.33, v.FundingPerYear, 0.01)
	assert.InDelta(t, 6.60206, v.LogTotalFunding, 1e-5)
	assert.InDelta(t, math.Log10(2_000_001), v.LogAvgFunding, 1e-12)
	assert.Equal(t, "Fintech", v.CategoryFirst, "first record wins")
	assert.Equal(t, "Bengaluru", v.LocationFirst, "first record wins")
}

// TestBuild_OneVectorPerEntity verifies the cardinality and first-appearance order.
func TestBuild_OneVectorPerEntity(t *testing.T) {
	records := []funding.Record{
		{EntityID: "zeta", Amount: 10, Year: 2020},
		{EntityID: "alpha", Amount: 5, Year: 2018},
		{EntityID: "zeta", Amount: 30, Year: 2017},
		{EntityID: "mid", Amount: 0, Year: 2022},
		{EntityID: "alpha", Amount: 7, Year: 2018},
	}

	vectors, err := funding.Build(records)
	require.NoError(t, err)

	ids := make([]string, len(vectors))
	for i, v := range vectors {
		ids[i] = v.EntityID
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, ids)

	for _, v := range vectors {
		assert.GreaterOrEqual(t, v.YearsActive, 1)
		assert.GreaterOrEqual(t, v.NumFundingRounds, 1)
		assert.False(t, math.IsInf(v.FundingPerYear, 0) || math.IsNaN(v.FundingPerYear))
	}

	// Years out of order still give max-min+1.
	assert.Equal(t, 4, vectors[0].YearsActive)
	// Same-year rounds give a single active year.
	assert.Equal(t, 1, vectors[1].YearsActive)
	// Zero funding is finite on the log scale.
	assert.Equal(t, 0.0, vectors[2].LogTotalFunding)
}

// TestBuild_Deterministic checks that identical input gives identical output.
func TestBuild_Deterministic(t *testing.T) {
	records := []funding.Record{
		{EntityID: "a", Amount: 1, Year: 2020},
		{EntityID: "b", Amount: 2, Year: 2021},
		{EntityID: "a", Amount: 3, Year: 2022},
	}
	first, err := funding.Build(records)
	require.NoError(t, err)
	second, err := funding.Build(records)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestFeatureMatrix_LayoutAndImputation verifies column order and the non-finite → 0 policy.
func TestFeatureMatrix_LayoutAndImputation(t *testing.T) {
	vectors := []funding.FeatureVector{
		{EntityID: "a", LogTotalFunding: 1, LogAvgFunding: 2, NumFundingRounds: 3, YearsActive: 4, FundingPerYear: 5},
		{EntityID: "b", LogTotalFunding: math.NaN(), LogAvgFunding: 2, NumFundingRounds: 1, YearsActive: 1, FundingPerYear: math.Inf(1)},
	}

	X, imputed, err := funding.FeatureMatrix(vectors)
	require.NoError(t, err)
	assert.Equal(t, 2, imputed)
	assert.Equal(t, funding.NumFeatures, X.Cols())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 0, 2, 1, 1, 0}, X.RawData())
}

func TestFeatureNames(t *testing.T) {
	assert.Equal(t, []string{
		"log_total_funding", "log_avg_funding", "num_funding_rounds", "years_active", "funding_per_year",
	}, funding.FeatureNames())
	assert.Equal(t, "years_active", funding.YearsActive.String())
	assert.Equal(t, "unknown", funding.Feature(42).String())
}

func TestSummarize(t *testing.T) {
	s := funding.Summarize([]funding.Record{
		{EntityID: "a", Amount: 10, Year: 2016, Category: "Fintech", Location: "Pune"},
		{EntityID: "b", Amount: 20, Year: 2020, Category: "Fintech", Location: "Delhi"},
		{EntityID: "a", Amount: 30, Year: 2018, Category: "Saas", Location: "Pune"},
	})
	assert.Equal(t, funding.DatasetSummary{
		TotalRecords:    3,
		TotalEntities:   2,
		TotalFunding:    60,
		AvgFunding:      20,
		TotalCategories: 2,
		TotalLocations:  2,
		FirstYear:       2016,
		LastYear:        2020,
	}, s)

	assert.Equal(t, funding.DatasetSummary{}, funding.Summarize(nil))
}
