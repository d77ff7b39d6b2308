/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package jsonreport writes evaluation runs as JSON documents.
//
// It is the machine-readable counterpart of package junit: the document carries the
// full test case (no truncation), every metric with its pass/fail verdict, an overall
// verdict and the assertion error, if any. Schema returns the JSON Schema of the
// document for consumers that validate their inputs.
package jsonreport

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"chainguard.dev/evalreport/evals"
	"chainguard.dev/evalreport/evals/internal/reportfile"
)

// Format names the report format produced by this package.
const Format = "json"

// Document is the JSON report of a single run.
type Document struct {
	RunAt           string        `json:"run_at" jsonschema:"required,format=date-time,description=UTC time the report was written"`
	TestName        string        `json:"test_name" jsonschema:"required,description=Name of the evaluated test"`
	DurationSeconds float64       `json:"duration_seconds" jsonschema:"required,minimum=0,description=Assertion wall-clock time in seconds"`
	TestCase        TestCase      `json:"test_case" jsonschema:"required"`
	Metrics         []MetricEntry `json:"metrics" jsonschema:"required"`
	OverallPass     bool          `json:"overall_pass" jsonschema:"required,description=True when every metric meets its threshold"`
	AssertionError  string        `json:"assertion_error,omitempty" jsonschema:"description=Error returned by the assertion"`
}

// TestCase mirrors evals.TestCase.
type TestCase struct {
	Input          string `json:"input" jsonschema:"required"`
	ActualOutput   string `json:"actual_output" jsonschema:"required"`
	ExpectedOutput string `json:"expected_output" jsonschema:"required"`
}

// MetricEntry is one measured metric. Score and Threshold are null when absent.
type MetricEntry struct {
	Name      string   `json:"name" jsonschema:"required"`
	Score     *float64 `json:"score" jsonschema:"required,nullable"`
	Threshold *float64 `json:"threshold" jsonschema:"required,nullable"`
	Success   bool     `json:"success" jsonschema:"required"`
	Reason    string   `json:"reason,omitempty"`
}

// Writer renders runs as JSON.
type Writer struct {
	// Now returns the report timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Write renders run with a default Writer. See Writer.Write.
func Write(path string, run evals.Run) (string, error) {
	return Writer{}.Write(path, run)
}

// Format returns "json".
func (Writer) Format() string { return Format }

// Write renders run to path, creating parent directories and replacing any existing
// file, and returns the absolute path written.
func (w Writer) Write(path string, run evals.Run) (string, error) {
	data, err := w.Marshal(run)
	if err != nil {
		return "", err
	}
	return reportfile.Write(path, data)
}

// Marshal renders run as indented JSON.
func (w Writer) Marshal(run evals.Run) ([]byte, error) {
	data, err := json.MarshalIndent(w.Build(run), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json report: %w", err)
	}
	return append(data, '\n'), nil
}

// Build returns the document for run.
func (w Writer) Build(run evals.Run) *Document {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	doc := &Document{
		RunAt:           now().UTC().Format(time.RFC3339),
		TestName:        run.TestName,
		DurationSeconds: math.Round(run.Duration.Seconds()*1000) / 1000,
		TestCase: TestCase{
			Input:          run.TestCase.Input,
			ActualOutput:   run.TestCase.ActualOutput,
			ExpectedOutput: run.TestCase.ExpectedOutput,
		},
		Metrics:     make([]MetricEntry, 0, len(run.Metrics)),
		OverallPass: true,
	}
	for _, m := range run.Metrics {
		entry := MetricEntry{
			Name:    evals.NameOf(m),
			Success: evals.Passed(m),
		}
		if v, ok := m.Score(); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			entry.Score = &v
		}
		if v, ok := m.Threshold(); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			entry.Threshold = &v
		}
		entry.Reason, _ = m.Reason()
		doc.OverallPass = doc.OverallPass && entry.Success
		doc.Metrics = append(doc.Metrics, entry)
	}
	if run.Failed() {
		doc.AssertionError = run.Failure.Error()
	}
	return doc
}

// Parse decodes a report written by this package.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding json report: %w", err)
	}
	return &doc, nil
}

// ParseFile decodes the report at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
