/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package testevals adapts the evals framework to Go tests.
//
// AssertTest is the usual entry point. It runs a reporter.Reporter under the
// current test's name, so every go test run leaves a JUnit report behind for
// CI while failures still show up as ordinary test errors:
//
//	func TestCapital(t *testing.T) {
//		r, err := reporter.New(evals.ThresholdAsserter{})
//		if err != nil {
//			t.Fatal(err)
//		}
//		tc := evals.TestCase{Input: "Capital of France?", ActualOutput: answer(t)}
//		testevals.AssertTest(t, r, tc, []evals.Metric{judge(t, tc)}, "test-results/capital.xml")
//	}
//
// New and NewPrefix turn a testing.TB into an evals.Observer, which fits the
// factory of evals.NewNamespacedObserver:
//
//	obs := evals.NewNamespacedObserver(func(name string) evals.Observer {
//		return testevals.NewPrefix(t, name)
//	})
//	r, _ := reporter.New(evals.ThresholdAsserter{}, reporter.WithCallbacks(reporter.Observe(obs)))
package testevals
