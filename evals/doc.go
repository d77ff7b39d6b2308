/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package evals holds the core types for evaluating LLM output against scored metrics.

# Overview

A TestCase is the input, actual output and expected output of one evaluation. Each
Metric scores some aspect of it against a threshold; an Asserter decides whether
the case passes as a whole:

	metrics := []evals.Metric{
		evals.NewMetric("Correctness").WithScore(0.9).WithThreshold(0.7),
		evals.NewMetric("Relevancy").WithScore(0.4).WithThreshold(0.5).WithReason("off topic"),
	}
	err := evals.ThresholdAsserter{}.Assert(ctx, tc, metrics)
	// err is an *AssertionError naming Relevancy.

Scores, thresholds and reasons are optional. Passed defines the rule used
throughout: a metric without a score fails, a missing threshold counts as 0.

Reports of a Run are written by the junit and jsonreport subpackages; the
reporter package ties assertion and report writing together.

# Observers

Observer receives per-metric outcomes. Record feeds one metric to an Observer, and
NamespacedObserver arranges Observers in a tree keyed by path, typically
"/<test>/<metric>". Implementations provided here:

  - ResultCollector keeps failures and grades for summaries (see report.Tree)
  - MetricsObserver exports Prometheus counters and gauges per namespace

testevals adds an Observer that reports through a testing.TB.

# Thread Safety

NamespacedObserver, ResultCollector and MetricsObserver may be used from
multiple goroutines. MetricResult values are immutable.
*/
package evals
