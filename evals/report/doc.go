/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package report renders human-readable summaries of evaluation results.

Two views are provided:

  - Table: a markdown table of the metrics of a single run, suitable for logs and
    test output.
  - Tree: a tree of everything collected in a NamespacedObserver of ResultCollectors,
    typically populated by reporter.Observe across a whole test binary.

# Usage

	fmt.Println(report.Table(metrics))

	obs := evals.NewNamespacedObserver(func(string) *evals.ResultCollector {
		return evals.NewResultCollector(nil)
	})
	r := reporter.New(evals.ThresholdAsserter{}, reporter.WithCallbacks(reporter.Observe(obs)))
	// ... run evaluations
	summary, failed := report.Tree(obs)

Both functions are pure with respect to their inputs and safe for concurrent use.
*/
package report
