// SPDX-License-Identifier: MIT

package ingest

import "strings"

// Canonical column names.
const (
	ColEntity    = "entity"
	ColCategory  = "category"
	ColLocation  = "location"
	ColState     = "state"
	ColAmount    = "amount"
	ColRound     = "round"
	ColInvestors = "investors"
	ColYear      = "year"
	ColDate      = "date"
)

// headerRules are tried in order; the first rule whose predicate matches a
// lower-cased header claims it, and each canonical name is claimed at most once.
var headerRules = []struct {
	canonical string
	match     func(h string) bool
}{
	{ColEntity, func(h string) bool {
		return strings.Contains(h, "startup") || strings.Contains(h, "company") || h == "entity" || h == "name"
	}},
	{ColCategory, func(h string) bool {
		return strings.Contains(h, "industry") || strings.Contains(h, "sector") ||
			strings.Contains(h, "vertical") || h == "category"
	}},
	{ColLocation, func(h string) bool {
		return (strings.Contains(h, "city") && !strings.Contains(h, "location")) || h == "location"
	}},
	{ColState, func(h string) bool { return strings.Contains(h, "state") }},
	{ColAmount, func(h string) bool {
		return strings.Contains(h, "amount") || (strings.Contains(h, "funding") && strings.Contains(h, "usd"))
	}},
	{ColRound, func(h string) bool { return strings.Contains(h, "round") || strings.Contains(h, "stage") }},
	{ColInvestors, func(h string) bool { return strings.Contains(h, "investor") }},
	{ColYear, func(h string) bool { return h == "year" }},
	{ColDate, func(h string) bool { return strings.Contains(h, "date") }},
}

// NormalizeHeader maps canonical column names to their index in header.
// Unrecognized columns are ignored; duplicates keep the first match.
func NormalizeHeader(header []string) map[string]int {
	out := make(map[string]int, len(headerRules))
	for i, raw := range header {
		h := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff")))
		for _, rule := range headerRules {
			if rule.match(h) {
				if _, taken := out[rule.canonical]; !taken {
					out[rule.canonical] = i
				}
				break
			}
		}
	}

	return out
}
