/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package reporter runs an evaluation assertion and always writes a report of the outcome.

# Overview

A Reporter wraps an evals.Asserter. RunAndReport measures how long the assertion
takes, writes a JUnit XML (or JSON) report whether it passed or not, and then
returns the assertion's error unchanged:

	r, err := reporter.New(evals.ThresholdAsserter{})
	if err != nil {
		return err
	}
	path, err := r.RunAndReport(ctx, tc, metrics, "test-results/answer.xml",
		reporter.WithTestName("TestAnswer"))
	// path is set whenever the report was written, even if err != nil.

When WithTestName is omitted the name of the calling function is used, and
"test" when it cannot be determined. In tests prefer testevals.AssertTest,
which uses t.Name().

# Guarantees

  - The report is written after the assertion returns, panics or exits the goroutine
    (t.FailNow). A panic is re-raised after the write.
  - An assertion error is returned as-is, so errors.Is and errors.As keep working.
  - A write failure is returned; when the assertion failed too, both are joined.

# Configuration

LoadConfig reads an optional YAML file and applies environment overrides:

	EVAL_REPORT_DIR     directory relative output paths are resolved against
	EVAL_REPORT_FORMAT  "junit" (default) or "json"
	EVAL_REPORT_QUIET   log the written path at debug instead of info level

# Callbacks

Callbacks run in parallel after each successful write. Observe records every
metric into a NamespacedObserver so report.Tree can summarize a whole test run;
LogSummary logs a metric table at debug level.
*/
package reporter
