// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/startupseg/funding"
	"github.com/katalvlaran/startupseg/logging"
)

// Stats counts what cleaning did to the input rows.
type Stats struct {
	Rows             int `yaml:"rows" json:"rows"`
	Kept             int `yaml:"kept" json:"kept"`
	MissingEntity    int `yaml:"missing_entity" json:"missing_entity"`
	BadYear          int `yaml:"bad_year" json:"bad_year"`
	Duplicates       int `yaml:"duplicates" json:"duplicates"`
	UnparsedAmount   int `yaml:"unparsed_amount" json:"unparsed_amount"`
	DefaultedText    int `yaml:"defaulted_text" json:"defaulted_text"`
	MalformedRecords int `yaml:"malformed_records" json:"malformed_records"`
}

// Row is one cleaned funding round: the record the clustering core consumes
// plus the descriptive columns used only by dataset analysis.
type Row struct {
	funding.Record `yaml:",inline"`

	State     string   `yaml:"state" json:"state"`
	Round     string   `yaml:"round" json:"round"`
	Investors []string `yaml:"investors,omitempty" json:"investors,omitempty"`
}

// Records projects rows onto the records fed to clustering.
func Records(rows []Row) []funding.Record {
	out := make([]funding.Record, len(rows))
	for i, r := range rows {
		out[i] = r.Record
	}

	return out
}

// ReadFile opens path and calls Read.
func ReadFile(path string, opts ...Option) ([]funding.Record, Stats, error) {
	rows, st, err := ReadRowsFile(path, opts...)
	if err != nil {
		return nil, st, err
	}

	return Records(rows), st, nil
}

// ReadRowsFile opens path and calls ReadRows.
func ReadRowsFile(path string, opts ...Option) ([]Row, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadRows(f, opts...)
}

// Read parses a funding CSV into records. It is ReadRows without the
// descriptive columns.
func Read(r io.Reader, opts ...Option) ([]funding.Record, Stats, error) {
	rows, st, err := ReadRows(r, opts...)
	if err != nil {
		return nil, st, err
	}

	return Records(rows), st, nil
}

// ReadRows parses a funding CSV into rows.
//
// Cleaning, in order:
//   - header names are normalized (see NormalizeHeader); entity, amount and
//     year or date are required;
//   - rows with a blank entity are dropped;
//   - rows whose year cannot be read are dropped;
//   - exact duplicate rows are dropped;
//   - amounts go through ParseAmount, unreadable ones become 0;
//   - blank category/location/state/round become Unknown; text fields are trimmed and title-cased;
//   - investors are split on commas and trimmed; a blank list stays empty.
func ReadRows(r io.Reader, opts ...Option) ([]Row, Stats, error) {
	cfg := newConfig(opts...)
	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var st Stats
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, st, fmt.Errorf("ingest: empty input: %w", ErrNoRecords)
		}
		return nil, st, fmt.Errorf("ingest: read header: %w", err)
	}
	cols := NormalizeHeader(header)
	yearCol, ok := cols[ColYear]
	if !ok {
		yearCol, ok = cols[ColDate]
	}
	for _, need := range []string{ColEntity, ColAmount} {
		if _, found := cols[need]; !found {
			return nil, st, fmt.Errorf("ingest: %q in header %v: %w", need, header, ErrMissingColumn)
		}
	}
	if !ok {
		return nil, st, fmt.Errorf("ingest: %q or %q in header %v: %w", ColYear, ColDate, header, ErrMissingColumn)
	}

	title := cases.Title(language.Und)
	seen := make(map[string]struct{})
	var out []Row
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			st.MalformedRecords++
			cfg.log.V(logging.DEBUG).Info("skipping malformed csv row", "line", perr.Line, "err", perr.Err.Error())
			continue
		}
		if err != nil {
			return nil, st, fmt.Errorf("ingest: read row: %w", err)
		}
		st.Rows++

		entity := field(row, cols[ColEntity])
		if entity == "" {
			st.MissingEntity++
			continue
		}
		year, ok := ParseYear(field(row, yearCol))
		if !ok {
			st.BadYear++
			continue
		}
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			st.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		amount, ok := ParseAmount(field(row, cols[ColAmount]))
		if !ok {
			st.UnparsedAmount++
			cfg.log.V(logging.TRACE).Info("unreadable amount recorded as 0", "entity", entity, "raw", field(row, cols[ColAmount]))
		}

		rec := Row{
			Record: funding.Record{
				EntityID: title.String(entity),
				Amount:   amount,
				Year:     year,
				Category: textOr(title, row, cols, ColCategory, &st),
				Location: textOr(title, row, cols, ColLocation, &st),
			},
			State:     optionalText(title, row, cols, ColState),
			Round:     optionalText(title, row, cols, ColRound),
			Investors: splitInvestors(row, cols),
		}
		out = append(out, rec)
	}
	st.Kept = len(out)

	if len(out) == 0 {
		return nil, st, fmt.Errorf("ingest: %d rows read: %w", st.Rows, ErrNoRecords)
	}
	cfg.log.V(logging.DEBUG).Info("csv ingested", "rows", st.Rows, "kept", st.Kept,
		"duplicates", st.Duplicates, "missingEntity", st.MissingEntity, "badYear", st.BadYear)

	return out, st, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func text(title cases.Caser, row []string, cols map[string]int, name string) (string, bool) {
	i, ok := cols[name]
	if !ok {
		return Unknown, false
	}
	v := field(row, i)
	if v == "" || strings.EqualFold(v, "nan") {
		return Unknown, false
	}

	return title.String(v), true
}

// textOr counts every fallback to Unknown in st.
func textOr(title cases.Caser, row []string, cols map[string]int, name string, st *Stats) string {
	v, ok := text(title, row, cols, name)
	if !ok {
		st.DefaultedText++
	}

	return v
}

// optionalText is text for descriptive columns that many exports lack; fallbacks are not counted.
func optionalText(title cases.Caser, row []string, cols map[string]int, name string) string {
	v, _ := text(title, row, cols, name)
	return v
}

func splitInvestors(row []string, cols map[string]int) []string {
	i, ok := cols[ColInvestors]
	if !ok {
		return nil
	}
	var out []string
	for _, name := range strings.Split(field(row, i), ",") {
		if name = strings.TrimSpace(name); name != "" && !strings.EqualFold(name, "nan") {
			out = append(out, name)
		}
	}

	return out
}
