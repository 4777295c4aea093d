// SPDX-License-Identifier: MIT

package ingest

import (
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"01/02/2006 15:04",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Jan 2006",
}

// ParseYear extracts a calendar year from a bare year ("2019") or a date in
// one of the common layouts. Ambiguous day/month orders resolve to the same year.
func ParseYear(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if len(s) == 4 {
		if y, err := strconv.Atoi(s); err == nil {
			return y, true
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), true
		}
	}
	// 13/31/2019 style: the year is the trailing four digits whatever the order.
	if i := strings.LastIndexAny(s, "/-."); i >= 0 && len(s)-i-1 == 4 {
		if y, err := strconv.Atoi(s[i+1:]); err == nil {
			return y, true
		}
	}

	return 0, false
}
