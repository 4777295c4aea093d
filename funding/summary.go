// SPDX-License-Identifier: MIT

package funding

// DatasetSummary describes the record set before aggregation.
type DatasetSummary struct {
	TotalRecords    int     `yaml:"total_records" json:"total_records"`
	TotalEntities   int     `yaml:"total_entities" json:"total_entities"`
	TotalFunding    float64 `yaml:"total_funding" json:"total_funding"`
	AvgFunding      float64 `yaml:"avg_funding" json:"avg_funding"`
	TotalCategories int     `yaml:"total_categories" json:"total_categories"`
	TotalLocations  int     `yaml:"total_locations" json:"total_locations"`
	FirstYear       int     `yaml:"first_year" json:"first_year"`
	LastYear        int     `yaml:"last_year" json:"last_year"`
}

// Summarize computes dataset-level counts and totals. An empty input yields
// the zero summary.
func Summarize(records []Record) DatasetSummary {
	var s DatasetSummary
	if len(records) == 0 {
		return s
	}

	entities := make(map[string]struct{})
	categories := make(map[string]struct{})
	locations := make(map[string]struct{})
	s.FirstYear, s.LastYear = records[0].Year, records[0].Year
	for _, r := range records {
		s.TotalFunding += r.Amount
		entities[r.EntityID] = struct{}{}
		categories[r.Category] = struct{}{}
		locations[r.Location] = struct{}{}
		if r.Year < s.FirstYear {
			s.FirstYear = r.Year
		}
		if r.Year > s.LastYear {
			s.LastYear = r.Year
		}
	}
	s.TotalRecords = len(records)
	s.TotalEntities = len(entities)
	s.TotalCategories = len(categories)
	s.TotalLocations = len(locations)
	s.AvgFunding = s.TotalFunding / float64(len(records))

	return s
}
