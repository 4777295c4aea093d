// SPDX-License-Identifier: MIT

package ingest

import (
	"strconv"
	"strings"
)

// magnitude suffixes, longest first so that "LAKH" is not read as "K".
var magnitudes = []struct {
	suffix string
	factor float64
}{
	{"THOUSAND", 1e3},
	{"BILLION", 1e9},
	{"MILLION", 1e6},
	{"CRORE", 1e7},
	{"LAKH", 1e5},
	{"CR", 1e7},
	{"B", 1e9},
	{"M", 1e6},
	{"K", 1e3},
	{"L", 1e5},
}

var amountCleaner = strings.NewReplacer("$", "", "₹", "", ",", "", "USD", "", "INR", "", "RS.", "", " ", "")

// ParseAmount converts a raw funding amount such as "$1,200,000", "₹5 Cr",
// "2.5M" or "40 lakh" into a plain number.
//
// An empty value yields (0, true). Anything unparsable or negative yields (0, false);
// callers record the value as 0, which is how missing amounts are treated.
func ParseAmount(raw string) (float64, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return 0, true
	}
	s = amountCleaner.Replace(s)

	factor := 1.0
	for _, m := range magnitudes {
		if strings.HasSuffix(s, m.suffix) {
			factor = m.factor
			s = strings.TrimSuffix(s, m.suffix)
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}

	return v * factor, true
}
