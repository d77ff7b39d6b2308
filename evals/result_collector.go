/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import "sync"

// Grade is a recorded score with its reasoning.
type Grade struct {
	Score     float64
	Reasoning string
}

// ResultCollector wraps an Observer and keeps every failure and grade it sees.
// Failures are logged to the wrapped Observer rather than failing it, so a
// collector can sit in front of a *testing.T without failing the test.
type ResultCollector struct {
	inner    Observer
	failures []string
	grades   []Grade
	count    int64
	mu       sync.Mutex
}

var _ Observer = (*ResultCollector)(nil)

// NewResultCollector returns a collector in front of inner. inner may be nil.
func NewResultCollector(inner Observer) *ResultCollector {
	return &ResultCollector{inner: inner}
}

// Fail stores msg and logs it to the wrapped Observer.
func (r *ResultCollector) Fail(msg string) {
	r.Log(msg)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, msg)
}

// Log passes msg through.
func (r *ResultCollector) Log(msg string) {
	if r.inner != nil {
		r.inner.Log(msg)
	}
}

// Grade stores the grade and passes it through.
func (r *ResultCollector) Grade(score float64, reasoning string) {
	if r.inner != nil {
		r.inner.Grade(score, reasoning)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.grades = append(r.grades, Grade{Score: score, Reasoning: reasoning})
}

// Increment counts an evaluation and passes it through.
func (r *ResultCollector) Increment() {
	if r.inner != nil {
		r.inner.Increment()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
}

// Total returns the number of evaluations counted by this collector.
func (r *ResultCollector) Total() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Failures returns a copy of the collected failure messages.
func (r *ResultCollector) Failures() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.failures...)
}

// Grades returns a copy of the collected grades.
func (r *ResultCollector) Grades() []Grade {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Grade(nil), r.grades...)
}

// AverageGrade returns the mean collected score, and false when nothing was graded.
func (r *ResultCollector) AverageGrade() (float64, bool) {
	grades := r.Grades()
	if len(grades) == 0 {
		return 0, false
	}
	var sum float64
	for _, g := range grades {
		sum += g.Score
	}
	return sum / float64(len(grades)), true
}
