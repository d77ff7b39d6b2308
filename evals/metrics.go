/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	observationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eval_metric_observations_total",
			Help: "Total number of metric results observed",
		},
		[]string{"namespace"},
	)

	failureCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eval_metric_failures_total",
			Help: "Total number of metric results that did not pass",
		},
		[]string{"namespace"},
	)

	scoreGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "eval_metric_score",
			Help: "Most recently observed metric score",
		},
		[]string{"namespace"},
	)
)

// MetricsObserver implements Observer by exporting Prometheus metrics labelled
// with its namespace. It is typically used as the factory of a NamespacedObserver.
type MetricsObserver struct {
	namespace string
	count     atomic.Int64

	observations prometheus.Counter
	failures     prometheus.Counter
	score        prometheus.Gauge
}

var _ Observer = (*MetricsObserver)(nil)

// NewMetricsObserver creates a metrics observer for the given namespace.
func NewMetricsObserver(namespace string) *MetricsObserver {
	labels := prometheus.Labels{"namespace": namespace}
	return &MetricsObserver{
		namespace:    namespace,
		observations: observationCounter.With(labels),
		failures:     failureCounter.With(labels),
		score:        scoreGauge.With(labels),
	}
}

// Increment implements Observer.
func (m *MetricsObserver) Increment() {
	m.count.Add(1)
	m.observations.Inc()
}

// Fail implements Observer.
func (m *MetricsObserver) Fail(string) {
	m.failures.Inc()
}

// Grade implements Observer.
func (m *MetricsObserver) Grade(score float64, _ string) {
	m.score.Set(score)
}

// Log implements Observer. Messages are not exported.
func (m *MetricsObserver) Log(string) {}

// Total implements Observer.
func (m *MetricsObserver) Total() int64 {
	return m.count.Load()
}
