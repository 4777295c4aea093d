// SPDX-License-Identifier: MIT

package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/startupseg/funding"
	"github.com/katalvlaran/startupseg/ingest"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"", 0, true},
		{"1200", 1200, true},
		{"$1,200,000", 1.2e6, true},
		{"2.5M", 2.5e6, true},
		{"3 million", 3e6, true},
		{"1.1B", 1.1e9, true},
		{"750k", 750e3, true},
		{"₹5 Cr", 5e7, true},
		{"2 crore", 2e7, true},
		{"40 lakh", 4e6, true},
		{"12L", 12e5, true},
		{"undisclosed", 0, false},
		{"-5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ingest.ParseAmount(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestParseYear(t *testing.T) {
	for raw, want := range map[string]int{
		"2019":                 2019,
		"2019-03-14":           2019,
		"14/03/2019":           2019,
		"03/31/2019":           2019,
		"2021-07-01T10:00:00Z": 2021,
		"Jan 2018":             2018,
	} {
		got, ok := ingest.ParseYear(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "not a date", "19"} {
		_, ok := ingest.ParseYear(raw)
		assert.False(t, ok, raw)
	}
}

func TestNormalizeHeader(t *testing.T) {
	cols := ingest.NormalizeHeader([]string{
		"\ufeffSr No", "Date dd/mm/yyyy", "Startup Name", "Industry Vertical", "SubVertical",
		"City  Location", "Investors Name", "InvestmentnType", "Amount in USD",
	})

	assert.Equal(t, map[string]int{
		ingest.ColDate:      1,
		ingest.ColEntity:    2,
		ingest.ColCategory:  3,
		ingest.ColInvestors: 6,
		ingest.ColAmount:    8,
	}, cols)

	cols = ingest.NormalizeHeader([]string{"startup_name", "state", "funding_round", "investors", "funding_amount_usd", "date"})
	assert.Equal(t, map[string]int{
		ingest.ColEntity:    0,
		ingest.ColState:     1,
		ingest.ColRound:     2,
		ingest.ColInvestors: 3,
		ingest.ColAmount:    4,
		ingest.ColDate:      5,
	}, cols)
}

func TestReadFile(t *testing.T) {
	recs, st, err := ingest.ReadFile("testdata/funding.csv")
	require.NoError(t, err)

	assert.Equal(t, []funding.Record{
		{EntityID: "Paytech Solutions", Amount: 1e6, Year: 2019, Category: "Fintech", Location: "Bangalore"},
		{EntityID: "Paytech Solutions", Amount: 2.5e6, Year: 2021, Category: "Fintech", Location: "Bangalore"},
		{EntityID: "Edulearn", Amount: 5e7, Year: 2020, Category: "Edtech", Location: ingest.Unknown},
		{EntityID: "Gamezone", Amount: 0, Year: 2018, Category: ingest.Unknown, Location: "Pune"},
	}, recs)

	assert.Equal(t, ingest.Stats{
		Rows:           7,
		Kept:           4,
		MissingEntity:  1,
		BadYear:        1,
		Duplicates:     1,
		UnparsedAmount: 1,
		DefaultedText:  2,
	}, st)
}

func TestRead_Errors(t *testing.T) {
	_, _, err := ingest.Read(strings.NewReader(""))
	require.ErrorIs(t, err, ingest.ErrNoRecords)

	_, _, err = ingest.Read(strings.NewReader("startup,date\nA,2020\n"))
	require.ErrorIs(t, err, ingest.ErrMissingColumn)
	assert.Contains(t, err.Error(), `"amount"`)

	_, _, err = ingest.Read(strings.NewReader("startup,amount\nA,5\n"))
	require.ErrorIs(t, err, ingest.ErrMissingColumn)

	_, _, err = ingest.Read(strings.NewReader("startup,amount,year\n,5,2020\n"))
	require.ErrorIs(t, err, ingest.ErrNoRecords)

	_, _, err = ingest.ReadFile("testdata/does-not-exist.csv")
	require.Error(t, err)
}

func TestRead_SemicolonDelimiter(t *testing.T) {
	recs, _, err := ingest.Read(strings.NewReader("company;amount;year;sector\nacme;1k;2022;saas\n"), ingest.WithComma(';'))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, funding.Record{EntityID: "Acme", Amount: 1000, Year: 2022, Category: "Saas", Location: ingest.Unknown}, recs[0])

	assert.Panics(t, func() { ingest.WithComma('\n') })
}

func TestReadRowsFile_DescriptiveColumns(t *testing.T) {
	rows, st, err := ingest.ReadRowsFile("testdata/funding.csv")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, 2, st.DefaultedText)

	assert.Equal(t, ingest.Row{
		Record:    funding.Record{EntityID: "Paytech Solutions", Amount: 2.5e6, Year: 2021, Category: "Fintech", Location: "Bangalore"},
		State:     "Karnataka",
		Round:     "Series A",
		Investors: []string{"Fund B"},
	}, rows[1])
	assert.Equal(t, "Maharashtra", rows[3].State)

	recs, _, err := ingest.ReadFile("testdata/funding.csv")
	require.NoError(t, err)
	assert.Equal(t, recs, ingest.Records(rows))
}

func TestReadRows_InvestorsAndMissingColumns(t *testing.T) {
	in := "startup,amount,year,investors\n" +
		"acme,1k,2022,\"Sequoia Capital, Accel Partners,, nan\"\n" +
		"beta,2k,2023,\n"
	rows, st, err := ingest.ReadRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Sequoia Capital", "Accel Partners"}, rows[0].Investors)
	assert.Nil(t, rows[1].Investors)
	assert.Equal(t, ingest.Unknown, rows[0].State)
	assert.Equal(t, ingest.Unknown, rows[0].Round)
	// Only category and location fallbacks are counted.
	assert.Equal(t, 4, st.DefaultedText)
}
