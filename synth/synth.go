// SPDX-License-Identifier: MIT

package synth

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Header is the column order written by WriteCSV.
var Header = []string{
	"startup_name", "industry", "city", "state",
	"funding_amount_usd", "funding_round", "investors", "date",
}

const (
	dateLayout = "2006-01-02"
	// amountCap bounds the common case; the remaining draws are scaled up.
	amountCap = 10_000_000
)

// Row is one generated funding round. Empty text fields model missing values.
type Row struct {
	Startup   string
	Industry  string
	City      string
	State     string
	AmountUSD float64
	Round     string
	Investors string
	Date      time.Time
}

// Generate returns a shuffled dataset of records+duplicates rows.
//
// Amounts are exp(N(15, 1.5)) dollars: 70% are capped at 10M, 20% of the
// rest scaled by U(1,5) and the remainder by U(5,50). Duplicates are
// verbatim copies of distinct generated rows.
func Generate(opts ...Option) []Row {
	cfg := newConfig(opts...)
	rng := cfg.rng

	from := time.Date(cfg.fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(cfg.toYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)

	rows := make([]Row, 0, cfg.records+cfg.duplicates)
	for i := 0; i < cfg.records; i++ {
		loc := cities[rng.Intn(len(cities))]
		rows = append(rows, Row{
			Startup:   cfg.nameFn(rng.Intn(cfg.entities)),
			Industry:  industries[rng.Intn(len(industries))],
			City:      loc.city,
			State:     loc.state,
			AmountUSD: amount(cfg),
			Round:     fundingRounds[rng.Intn(len(fundingRounds))],
			Investors: pickInvestors(cfg),
			Date:      from.AddDate(0, 0, rng.Intn(days+1)),
		})
	}

	missing := int(float64(cfg.records) * cfg.missingRate)
	for _, i := range rng.Perm(cfg.records)[:missing] {
		switch rng.Intn(3) {
		case 0:
			rows[i].Industry = ""
		case 1:
			rows[i].City = ""
		default:
			rows[i].Investors = ""
		}
	}

	for _, i := range rng.Perm(cfg.records)[:cfg.duplicates] {
		rows = append(rows, rows[i])
	}
	rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })

	return rows
}

func amount(cfg config) float64 {
	rng := cfg.rng
	v := math.Exp(15 + 1.5*rng.NormFloat64())
	switch {
	case rng.Float64() < 0.7:
		v = math.Min(v, amountCap)
	case rng.Float64() < 0.2:
		v *= 1 + 4*rng.Float64()
	default:
		v *= 5 + 45*rng.Float64()
	}

	return math.Round(v*100) / 100
}

// pickInvestors joins 1..3 distinct investors.
func pickInvestors(cfg config) string {
	n := 1 + cfg.rng.Intn(3)
	perm := cfg.rng.Perm(len(investors))[:n]
	names := make([]string, n)
	for i, p := range perm {
		names[i] = investors[p]
	}

	return strings.Join(names, ", ")
}

// WriteCSV writes rows with Header as the first line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("synth: write header: %w", err)
	}
	for i, r := range rows {
		rec := []string{
			r.Startup, r.Industry, r.City, r.State,
			strconv.FormatFloat(r.AmountUSD, 'f', 2, 64),
			r.Round, r.Investors, r.Date.Format(dateLayout),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("synth: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("synth: flush: %w", err)
	}

	return nil
}
