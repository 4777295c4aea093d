// SPDX-License-Identifier: MIT

package funding

// Record is one funding event as supplied by the ingestion collaborator.
// Amount is already normalized to a single currency and is non-negative;
// the core does not re-verify it.
type Record struct {
	EntityID string  `yaml:"entity_id" json:"entity_id"`
	Amount   float64 `yaml:"amount" json:"amount"`
	Year     int     `yaml:"year" json:"year"`
	Category string  `yaml:"category" json:"category"`
	Location string  `yaml:"location" json:"location"`
}

// FeatureVector is the per-entity summary of its funding history.
//
// Invariants (enforced by Build):
//   - NumFundingRounds ≥ 1 and YearsActive ≥ 1.
//   - Amount-derived fields are non-negative.
//   - CategoryFirst/LocationFirst come from the first record of the entity in input order.
type FeatureVector struct {
	EntityID           string  `yaml:"entity_id" json:"entity_id"`
	TotalFunding       float64 `yaml:"total_funding" json:"total_funding"`
	AvgFundingPerRound float64 `yaml:"avg_funding_per_round" json:"avg_funding_per_round"`
	NumFundingRounds   int     `yaml:"num_funding_rounds" json:"num_funding_rounds"`
	YearsActive        int     `yaml:"years_active" json:"years_active"`
	FundingPerYear     float64 `yaml:"funding_per_year" json:"funding_per_year"`
	LogTotalFunding    float64 `yaml:"log_total_funding" json:"log_total_funding"`
	LogAvgFunding      float64 `yaml:"log_avg_funding" json:"log_avg_funding"`
	CategoryFirst      string  `yaml:"category_first" json:"category_first"`
	LocationFirst      string  `yaml:"location_first" json:"location_first"`
}

// Feature names the numeric columns fed to the clustering stages.
type Feature int

// Column order of the clustering matrix. It is fixed and never derived at runtime.
const (
	LogTotalFunding Feature = iota
	LogAvgFunding
	NumFundingRounds
	YearsActive
	FundingPerYear

	// NumFeatures is the width of the clustering matrix.
	NumFeatures = int(FundingPerYear) + 1
)

var featureNames = [NumFeatures]string{
	"log_total_funding",
	"log_avg_funding",
	"num_funding_rounds",
	"years_active",
	"funding_per_year",
}

// String returns the snake_case column name.
func (f Feature) String() string {
	if f < 0 || int(f) >= NumFeatures {
		return "unknown"
	}

	return featureNames[f]
}

// FeatureNames returns the clustering column names in matrix order.
func FeatureNames() []string {
	out := make([]string, NumFeatures)
	copy(out, featureNames[:])

	return out
}

// Values returns the clustering columns of v in matrix order.
func (v FeatureVector) Values() []float64 {
	return []float64{
		v.LogTotalFunding,
		v.LogAvgFunding,
		float64(v.NumFundingRounds),
		float64(v.YearsActive),
		v.FundingPerYear,
	}
}
