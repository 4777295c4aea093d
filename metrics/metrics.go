// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors describing clustering runs.
//
// A nil *Metrics is valid and records nothing, so library code can call it
// unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "startupseg"

// Run outcomes used as the "outcome" label.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups the collectors of one registry.
type Metrics struct {
	Runs          *prometheus.CounterVec
	RunDuration   prometheus.Histogram
	TrainingRuns  prometheus.Counter
	ChosenK       prometheus.Gauge
	Inertia       prometheus.Gauge
	Entities      prometheus.Gauge
	ImputedValues prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Clustering pipeline runs by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_run_duration_seconds",
			Help:      "Wall time of a clustering pipeline run.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		TrainingRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kmeans_trainings_total",
			Help:      "kmeans.Train calls, one per k in the elbow sweep plus the final fit.",
		}),
		ChosenK: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chosen_k",
			Help:      "Cluster count of the last successful run.",
		}),
		Inertia: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_inertia",
			Help:      "Inertia of the last fitted model.",
		}),
		Entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Entities clustered by the last successful run.",
		}),
		ImputedValues: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imputed_values_total",
			Help:      "Non-finite feature cells replaced with 0 before scaling.",
		}),
	}
	for _, c := range []prometheus.Collector{
		m.Runs, m.RunDuration, m.TrainingRuns, m.ChosenK, m.Inertia, m.Entities, m.ImputedValues,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveRun records the outcome and duration of one run.
func (m *Metrics) ObserveRun(err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.Runs.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(elapsed.Seconds())
}

// ObserveTrainings adds n kmeans.Train calls.
func (m *Metrics) ObserveTrainings(n int) {
	if m == nil {
		return
	}
	m.TrainingRuns.Add(float64(n))
}

// ObserveImputed adds n imputed cells.
func (m *Metrics) ObserveImputed(n int) {
	if m == nil {
		return
	}
	m.ImputedValues.Add(float64(n))
}

// ObserveModel records the shape of a fitted model.
func (m *Metrics) ObserveModel(k, entities int, inertia float64) {
	if m == nil {
		return
	}
	m.ChosenK.Set(float64(k))
	m.Entities.Set(float64(entities))
	m.Inertia.Set(inertia)
}
