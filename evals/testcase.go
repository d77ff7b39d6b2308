/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import "time"

// TestCase is the input/output triple an evaluation is performed on.
// An empty ExpectedOutput means no reference answer was supplied.
type TestCase struct {
	Input          string `json:"input" yaml:"input"`
	ActualOutput   string `json:"actual_output" yaml:"actual_output"`
	ExpectedOutput string `json:"expected_output,omitempty" yaml:"expected_output,omitempty"`
}

// Run is the outcome of a single evaluation, as handed to report writers.
type Run struct {
	// TestName identifies the test in the written report.
	TestName string
	// Duration is the wall-clock time the assertion took.
	Duration time.Duration
	// TestCase is the evaluated input/output triple.
	TestCase TestCase
	// Metrics are the measured metrics, in the order they were supplied.
	Metrics []Metric
	// Failure is the error returned by the assertion, or nil if it passed.
	Failure error
}

// Failed reports whether the assertion behind this run failed.
func (r Run) Failed() bool {
	return r.Failure != nil
}
