// Package startupseg segments startups into funding-behaviour clusters.
//
// 🚀 What does it do?
//
//	Given per-round funding records, it:
//		• Aggregates one feature vector per startup (totals, averages, rounds, years active)
//		• Standardizes five numeric features to zero mean and unit variance
//		• Picks the cluster count with the elbow rule, or takes a fixed K
//		• Runs k-means (Lloyd) with seeded, reproducible restarts
//		• Labels clusters from population-wide funding and round-count percentiles
//
// ✨ Guarantees
//
//   - Deterministic – the same records, seed and options give the same report,
//     whatever the parallelism.
//   - Strict – NaN/±Inf never reach the clustering stages silently; every
//     failure is a sentinel error matched with errors.Is.
//   - Library first – every stage accepts a logr.Logger and a context.Context;
//     only the CLI picks a logging backend.
//
// Packages, in pipeline order:
//
//	ingest/    CSV cleaning: header mapping, amount/date parsing, de-duplication
//	funding/   Record, FeatureVector, feature aggregation and dataset totals
//	matrix/    Dense row-major storage, validators, column statistics
//	scale/     Standardizer (fit/transform with zero-variance handling)
//	kmeans/    ClusterEngine: k-means++/random seeding, Lloyd iterations, restarts
//	elbow/     KSelector: inertia sweep and elbow rule
//	interpret/ ClusterInterpreter: quantile thresholds, labels, per-cluster summaries
//	pipeline/  end-to-end orchestration producing a Report
//	report/    YAML report and per-entity CSV writers
//	analysis/  exploratory tables: distribution, rankings, yearly trend, investors, outliers
//	synth/     seeded sample dataset generator
//	config/    viper-backed configuration (defaults, file, env, flags)
//	metrics/   Prometheus collectors for pipeline runs
//	logging/   zap-backed logr construction
//
// Quick start:
//
//	startupseg generate --records 5000 --output sample.csv
//	startupseg cluster --input sample.csv --output report.yaml
//
//	go install github.com/katalvlaran/startupseg/cmd/startupseg@latest
package startupseg
