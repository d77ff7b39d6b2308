/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals_test

import (
	"context"
	"errors"
	"testing"

	"chainguard.dev/evalreport/evals"
	"github.com/google/go-cmp/cmp"
)

func failedNames(t *testing.T, err error) []string {
	t.Helper()
	var ae *evals.AssertionError
	if !errors.As(err, &ae) {
		t.Fatalf("error: got = %v, wanted *evals.AssertionError", err)
	}
	names := make([]string, 0, len(ae.Failed))
	for _, m := range ae.Failed {
		names = append(names, evals.NameOf(m))
	}
	return names
}

func TestThresholdAsserter(t *testing.T) {
	tc := evals.TestCase{Input: "q", ActualOutput: "a"}
	metrics := []evals.Metric{
		evals.NewMetric("Correctness").WithScore(0.9).WithThreshold(0.7),
		evals.NewMetric("Relevancy").WithScore(0.4).WithThreshold(0.5),
		evals.NewMetric("Toxicity"),
		evals.NewMetric("Faithfulness").WithScore(0.6),
	}

	for _, async := range []bool{false, true} {
		for _, concurrency := range []int{0, 1, 3} {
			a := evals.ThresholdAsserter{Concurrency: concurrency}
			err := a.Assert(context.Background(), tc, metrics, evals.WithAsync(async))
			if diff := cmp.Diff([]string{"Relevancy", "Toxicity"}, failedNames(t, err)); diff != "" {
				t.Errorf("async=%v concurrency=%d failed mismatch (-want +got):\n%s", async, concurrency, diff)
			}
		}
	}
}

func TestThresholdAsserterPasses(t *testing.T) {
	metrics := []evals.Metric{
		evals.NewMetric("Correctness").WithScore(1).WithThreshold(1),
	}
	if err := (evals.ThresholdAsserter{}).Assert(context.Background(), evals.TestCase{}, metrics); err != nil {
		t.Errorf("Assert: got = %v, wanted = nil", err)
	}
	if err := (evals.ThresholdAsserter{}).Assert(context.Background(), evals.TestCase{}, nil); err != nil {
		t.Errorf("Assert(no metrics): got = %v, wanted = nil", err)
	}
}

func TestThresholdAsserterCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	metrics := []evals.Metric{evals.NewMetric("Correctness").WithScore(1)}
	for _, async := range []bool{false, true} {
		err := evals.ThresholdAsserter{}.Assert(ctx, evals.TestCase{}, metrics, evals.WithAsync(async))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("async=%v: got = %v, wanted = %v", async, err, context.Canceled)
		}
	}
}

func TestNewAssertConfig(t *testing.T) {
	cfg := evals.NewAssertConfig(
		evals.WithAsync(true),
		nil,
		evals.WithOption("model", "judge-1"),
		evals.WithOption("retries", 2),
	)
	want := evals.AssertConfig{
		Async:   true,
		Options: map[string]any{"model": "judge-1", "retries": 2},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestAssertFunc(t *testing.T) {
	var got []evals.Metric
	f := evals.AssertFunc(func(_ context.Context, _ evals.TestCase, metrics []evals.Metric, _ ...evals.AssertOption) error {
		got = metrics
		return nil
	})
	metrics := []evals.Metric{evals.NewMetric("m")}
	if err := f.Assert(context.Background(), evals.TestCase{}, metrics); err != nil {
		t.Fatalf("Assert: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("metrics: got = %d, wanted = 1", len(got))
	}
}

func TestAssertionError(t *testing.T) {
	err := &evals.AssertionError{Failed: []evals.Metric{
		evals.NewMetric("Relevancy").WithScore(0.4).WithThreshold(0.5),
		evals.NewMetric("Toxicity"),
	}}
	want := "metrics below threshold: Relevancy (score=0.4 threshold=0.5), Toxicity (score=n/a threshold=n/a)"
	if got := err.Error(); got != want {
		t.Errorf("Error: got = %q, wanted = %q", got, want)
	}

	wrapped := errors.Join(errors.New("write failed"), err)
	if !evals.IsAssertionError(wrapped) {
		t.Error("IsAssertionError(joined): got = false, wanted = true")
	}
	if evals.IsAssertionError(errors.New("other")) {
		t.Error("IsAssertionError(other): got = true, wanted = false")
	}
	if evals.IsAssertionError(nil) {
		t.Error("IsAssertionError(nil): got = true, wanted = false")
	}
}
