/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package junit

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"chainguard.dev/evalreport/evals"
	"chainguard.dev/evalreport/evals/internal/reportfile"
)

// Format names the report format produced by this package.
const Format = "junit"

const (
	timestampLayout = "2006-01-02T15:04:05"
	metricSeparator = "\n---\n"
)

// Writer renders runs as JUnit XML.
type Writer struct {
	// Now returns the report timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Write renders run with a default Writer. See Writer.Write.
func Write(path string, run evals.Run) (string, error) {
	return Writer{}.Write(path, run)
}

// Format returns "junit".
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

// Marshal renders run as an indented XML document with declaration.
func (w Writer) Marshal(run evals.Run) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(w.Build(run)); err != nil {
		return nil, fmt.Errorf("encoding junit report: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Build returns the document for run.
func (w Writer) Build(run evals.Run) *Testsuites {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	elapsed := fmt.Sprintf("%.3f", run.Duration.Seconds())

	suite := Testsuite{
		Name:      run.TestName,
		Tests:     1,
		Time:      elapsed,
		Timestamp: now().UTC().Format(timestampLayout),
		Properties: []Property{
			property("input", run.TestCase.Input),
			property("actual_output", run.TestCase.ActualOutput),
			property("expected_output", run.TestCase.ExpectedOutput),
		},
	}

	tc := Testcase{
		Name:      run.TestName,
		Classname: run.TestName,
		Time:      elapsed,
	}
	if len(run.Metrics) > 0 {
		tc.SystemOut = &Output{Data: sanitize(metricsText(run.Metrics))}
	}
	if run.Failed() {
		suite.Failures = 1
		msg := run.Failure.Error()
		tc.Failure = &Result{
			Message: reportfile.Truncate(msg, reportfile.MaxFieldLength),
			Data:    sanitize(msg),
		}
	}
	suite.Testcases = []Testcase{tc}

	return &Testsuites{Suites: []Testsuite{suite}}
}

func property(name, value string) Property {
	return Property{Name: name, Value: reportfile.Truncate(value, reportfile.MaxFieldLength)}
}

// metricsText renders one block per metric:
//
//	[name] score=S threshold=T
//	reason
func metricsText(metrics []evals.Metric) string {
	blocks := make([]string, 0, len(metrics))
	for _, m := range metrics {
		score, hasScore := m.Score()
		threshold, hasThreshold := m.Threshold()
		reason, _ := m.Reason()
		blocks = append(blocks, fmt.Sprintf("[%s] score=%s threshold=%s\n%s",
			evals.NameOf(m), evals.FormatScore(score, hasScore), evals.FormatScore(threshold, hasThreshold), reason))
	}
	return strings.Join(blocks, metricSeparator)
}

// sanitize replaces characters that XML 1.0 does not allow. Attribute values get
// the same treatment from encoding/xml; CDATA sections are written verbatim.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return unicode.ReplacementChar
	}, s)
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// Parse decodes a report written by this package.
func Parse(r io.Reader) (*Testsuites, error) {
	var doc Testsuites
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding junit report: %w", err)
	}
	return &doc, nil
}

// ParseFile decodes the report at path.
func ParseFile(path string) (*Testsuites, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
