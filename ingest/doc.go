// SPDX-License-Identifier: MIT

// Package ingest reads startup funding CSV exports into funding.Record values.
//
// Real-world exports disagree on column names ("Startup Name", "Industry
// Vertical", "Amount in USD", "Date dd/mm/yyyy"), currency notation and
// magnitude words ("₹5 Cr", "40 lakh", "$2.5M"). Read normalizes all of that
// so the clustering core sees clean, non-negative amounts and integer years.
package ingest
