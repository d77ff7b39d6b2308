/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Metric is the read-only view of a scored evaluation criterion.
//
// Score, Threshold and Reason report whether the value is present. A metric that
// has not been measured has no score; that is not the same as a score of zero.
type Metric interface {
	// Name returns the display name of the metric. It may be empty, see NameOf.
	Name() string
	// Score returns the measured score, if any.
	Score() (float64, bool)
	// Threshold returns the minimum passing score, if any.
	Threshold() (float64, bool)
	// Reason returns the explanation attached to the score, if any.
	Reason() (string, bool)
}

// MetricResult is a Metric whose values were computed elsewhere.
// The zero value has no name and no values; use NewMetric and the With methods.
type MetricResult struct {
	name      string
	score     *float64
	threshold *float64
	reason    *string
}

var _ Metric = MetricResult{}

// NewMetric returns an unscored MetricResult with the given name.
func NewMetric(name string) MetricResult {
	return MetricResult{name: name}
}

// WithScore returns a copy of m with the score set.
func (m MetricResult) WithScore(score float64) MetricResult {
	m.score = &score
	return m
}

// WithThreshold returns a copy of m with the threshold set.
func (m MetricResult) WithThreshold(threshold float64) MetricResult {
	m.threshold = &threshold
	return m
}

// WithReason returns a copy of m with the reason set.
func (m MetricResult) WithReason(reason string) MetricResult {
	m.reason = &reason
	return m
}

// Name implements Metric.
func (m MetricResult) Name() string { return m.name }

// Score implements Metric.
func (m MetricResult) Score() (float64, bool) { return deref(m.score) }

// Threshold implements Metric.
func (m MetricResult) Threshold() (float64, bool) { return deref(m.threshold) }

// Reason implements Metric.
func (m MetricResult) Reason() (string, bool) { return deref(m.reason) }

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// NameOf returns the metric's name, falling back to its type name when Name is empty.
func NameOf(m Metric) string {
	if m == nil {
		return ""
	}
	if name := m.Name(); name != "" {
		return name
	}
	t := reflect.TypeOf(m)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Passed reports whether the metric meets its threshold.
// A metric without a score never passes; a missing threshold counts as 0.
func Passed(m Metric) bool {
	score, ok := m.Score()
	if !ok {
		return false
	}
	threshold, _ := m.Threshold()
	return score >= threshold
}

// FormatScore renders a score or threshold for human-readable output.
// Values use the shortest decimal form that round-trips, always with a fractional
// part (0.9, 1.0); absent values render as "n/a".
func FormatScore(v float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
