/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package testevals

import (
	"testing"

	"chainguard.dev/evalreport/evals"
	"chainguard.dev/evalreport/evals/report"
	"chainguard.dev/evalreport/reporter"
)

// AssertTest runs r on tc and metrics as the test tb, writing the report to path.
// The report is named after tb.Name() unless opts set another name.
// An assertion or write failure fails tb without stopping it.
// It returns the absolute report path, or "" when nothing was written.
func AssertTest(tb testing.TB, r *reporter.Reporter, tc evals.TestCase, metrics []evals.Metric, path string, opts ...reporter.RunOption) string {
	tb.Helper()

	opts = append([]reporter.RunOption{reporter.WithTestName(tb.Name())}, opts...)
	written, err := r.RunAndReport(tb.Context(), tc, metrics, path, opts...)
	switch {
	case written == "":
		tb.Errorf("RunAndReport() = %v", err)
	case err != nil:
		tb.Errorf("%v\n%s\nreport: %s", err, report.Table(metrics), written)
	default:
		tb.Logf("evaluation report: %s", written)
	}
	return written
}
