// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/startupseg/ingest"
	"github.com/katalvlaran/startupseg/interpret"
	"github.com/katalvlaran/startupseg/logging"
)

const methodAnalyze = "Analyze"

// iqrFactor widens [Q1, Q3] into the outlier fences.
const iqrFactor = 1.5

// Distribution summarizes funding amounts.
// Std is the sample standard deviation and is 0 for fewer than two values.
type Distribution struct {
	Count  int     `yaml:"count" json:"count"`
	Mean   float64 `yaml:"mean" json:"mean"`
	Std    float64 `yaml:"std" json:"std"`
	Min    float64 `yaml:"min" json:"min"`
	P25    float64 `yaml:"p25" json:"p25"`
	Median float64 `yaml:"median" json:"median"`
	P75    float64 `yaml:"p75" json:"p75"`
	P95    float64 `yaml:"p95" json:"p95"`
	Max    float64 `yaml:"max" json:"max"`
}

// Group aggregates the rounds that share one key.
type Group struct {
	Key   string  `yaml:"key" json:"key"`
	Sum   float64 `yaml:"sum" json:"sum"`
	Count int     `yaml:"count" json:"count"`
	Mean  float64 `yaml:"mean" json:"mean"`
}

// YearGroup aggregates the rounds of one calendar year.
type YearGroup struct {
	Year  int     `yaml:"year" json:"year"`
	Sum   float64 `yaml:"sum" json:"sum"`
	Count int     `yaml:"count" json:"count"`
	Mean  float64 `yaml:"mean" json:"mean"`
}

// InvestorCount is how many rounds an investor took part in.
type InvestorCount struct {
	Name  string `yaml:"name" json:"name"`
	Deals int    `yaml:"deals" json:"deals"`
}

// Correlation is a symmetric Pearson matrix over Names.
// A constant column correlates as NaN.
type Correlation struct {
	Names  []string    `yaml:"names" json:"names"`
	Values [][]float64 `yaml:"values" json:"-"`
}

// Outliers lists rounds outside [Lower, Upper] = [Q1 − 1.5·IQR, Q3 + 1.5·IQR].
// Top holds the largest of them, highest amount first.
type Outliers struct {
	Q1           float64      `yaml:"q1" json:"q1"`
	Q3           float64      `yaml:"q3" json:"q3"`
	IQR          float64      `yaml:"iqr" json:"iqr"`
	Lower        float64      `yaml:"lower" json:"lower"`
	Upper        float64      `yaml:"upper" json:"upper"`
	Count        int          `yaml:"count" json:"count"`
	SharePercent float64      `yaml:"share_percent" json:"share_percent"`
	Top          []ingest.Row `yaml:"top" json:"top"`
}

// Report bundles every table. Ranked tables hold at most the configured top N.
type Report struct {
	Records     int             `yaml:"records" json:"records"`
	Funding     Distribution    `yaml:"funding" json:"funding"`
	TopStartups []Group         `yaml:"top_startups" json:"top_startups"`
	Industries  []Group         `yaml:"industries" json:"industries"`
	Cities      []Group         `yaml:"cities" json:"cities"`
	States      []Group         `yaml:"states" json:"states"`
	Years       []YearGroup     `yaml:"years" json:"years"`
	Rounds      []Group         `yaml:"rounds" json:"rounds"`
	Investors   []InvestorCount `yaml:"investors" json:"investors"`
	Correlation Correlation     `yaml:"correlation" json:"correlation"`
	Outliers    Outliers        `yaml:"outliers" json:"outliers"`
}

// KeyFunc extracts the grouping key of a row.
type KeyFunc func(ingest.Row) string

// Grouping keys.
var (
	ByEntity   KeyFunc = func(r ingest.Row) string { return r.EntityID }
	ByCategory KeyFunc = func(r ingest.Row) string { return r.Category }
	ByLocation KeyFunc = func(r ingest.Row) string { return r.Location }
	ByState    KeyFunc = func(r ingest.Row) string { return r.State }
	ByRound    KeyFunc = func(r ingest.Row) string { return r.Round }
)

// Analyze computes every table over rows.
func Analyze(rows []ingest.Row, opts ...Option) (*Report, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", methodAnalyze, ErrEmptyInput)
	}
	cfg := newConfig(opts...)

	rep := &Report{
		Records:     len(rows),
		Funding:     Describe(amounts(rows)),
		TopStartups: GroupBy(rows, ByEntity, cfg.topN),
		Industries:  GroupBy(rows, ByCategory, cfg.topN),
		Cities:      GroupBy(rows, ByLocation, cfg.topN),
		States:      GroupBy(rows, ByState, cfg.topN),
		Years:       ByYear(rows),
		Rounds:      GroupBy(rows, ByRound, cfg.topN),
		Investors:   TopInvestors(rows, cfg.topN),
		Correlation: Correlate(rows),
		Outliers:    DetectOutliers(rows, cfg.topN),
	}
	cfg.log.V(logging.DEBUG).Info("dataset analyzed", "rows", len(rows),
		"years", len(rep.Years), "outliers", rep.Outliers.Count)

	return rep, nil
}

// Describe summarizes xs. Percentiles interpolate linearly between closest ranks.
// An empty xs yields the zero Distribution.
func Describe(xs []float64) Distribution {
	if len(xs) == 0 {
		return Distribution{}
	}
	d := Distribution{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Min:    floats.Min(xs),
		P25:    interpret.Quantile(xs, 0.25),
		Median: interpret.Quantile(xs, 0.50),
		P75:    interpret.Quantile(xs, 0.75),
		P95:    interpret.Quantile(xs, 0.95),
		Max:    floats.Max(xs),
	}
	if len(xs) > 1 {
		d.Std = stat.StdDev(xs, nil)
	}

	return d
}

// GroupBy sums amounts per key, ordered by sum descending then key ascending.
// n > 0 keeps the first n groups.
func GroupBy(rows []ingest.Row, key KeyFunc, n int) []Group {
	idx := make(map[string]int)
	var out []Group
	for _, r := range rows {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, Group{Key: k})
		}
		out[i].Sum += r.Amount
		out[i].Count++
	}
	for i := range out {
		out[i].Mean = out[i].Sum / float64(out[i].Count)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sum != out[j].Sum {
			return out[i].Sum > out[j].Sum
		}
		return out[i].Key < out[j].Key
	})

	return truncate(out, n)
}

// ByYear aggregates rounds per year, oldest first.
func ByYear(rows []ingest.Row) []YearGroup {
	idx := make(map[int]int)
	var out []YearGroup
	for _, r := range rows {
		i, ok := idx[r.Year]
		if !ok {
			i = len(out)
			idx[r.Year] = i
			out = append(out, YearGroup{Year: r.Year})
		}
		out[i].Sum += r.Amount
		out[i].Count++
	}
	for i := range out {
		out[i].Mean = out[i].Sum / float64(out[i].Count)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	return out
}

// TopInvestors counts rounds per investor, most active first, ties by name.
// n > 0 keeps the first n investors.
func TopInvestors(rows []ingest.Row, n int) []InvestorCount {
	counts := make(map[string]int)
	for _, r := range rows {
		for _, name := range r.Investors {
			counts[name]++
		}
	}
	out := make([]InvestorCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, InvestorCount{Name: name, Deals: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Deals != out[j].Deals {
			return out[i].Deals > out[j].Deals
		}
		return out[i].Name < out[j].Name
	})

	return truncate(out, n)
}

// Correlate returns the Pearson matrix of amount, log10(amount+1) and year.
func Correlate(rows []ingest.Row) Correlation {
	cols := [][]float64{
		make([]float64, len(rows)),
		make([]float64, len(rows)),
		make([]float64, len(rows)),
	}
	for i, r := range rows {
		cols[0][i] = r.Amount
		cols[1][i] = math.Log10(r.Amount + 1)
		cols[2][i] = float64(r.Year)
	}

	c := Correlation{
		Names:  []string{"funding_amount", "funding_log", "year"},
		Values: make([][]float64, len(cols)),
	}
	for i := range cols {
		c.Values[i] = make([]float64, len(cols))
		for j := range cols {
			if j < i {
				c.Values[i][j] = c.Values[j][i]
				continue
			}
			c.Values[i][j] = stat.Correlation(cols[i], cols[j], nil)
		}
	}

	return c
}

// DetectOutliers applies the 1.5·IQR rule to amounts. n > 0 bounds Top.
func DetectOutliers(rows []ingest.Row, n int) Outliers {
	if len(rows) == 0 {
		return Outliers{}
	}
	xs := amounts(rows)
	q1, q3 := interpret.Quantile(xs, 0.25), interpret.Quantile(xs, 0.75)
	iqr := q3 - q1
	o := Outliers{
		Q1:    q1,
		Q3:    q3,
		IQR:   iqr,
		Lower: q1 - iqrFactor*iqr,
		Upper: q3 + iqrFactor*iqr,
	}

	var hits []ingest.Row
	for _, r := range rows {
		if r.Amount < o.Lower || r.Amount > o.Upper {
			hits = append(hits, r)
		}
	}
	o.Count = len(hits)
	o.SharePercent = float64(len(hits)) / float64(len(rows)) * 100
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Amount > hits[j].Amount })
	o.Top = truncate(hits, n)

	return o
}

func amounts(rows []ingest.Row) []float64 {
	xs := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = r.Amount
	}

	return xs
}

func truncate[T any](xs []T, n int) []T {
	if n > 0 && len(xs) > n {
		return xs[:n]
	}

	return xs
}
