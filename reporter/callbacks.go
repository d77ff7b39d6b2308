/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reporter

import (
	"context"

	"chainguard.dev/evalreport/evals"
	"chainguard.dev/evalreport/evals/report"
	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
)

// Callback is invoked with every run whose report was written to path.
// Callbacks of one run execute concurrently and must not block for long.
type Callback func(ctx context.Context, run evals.Run, path string)

func (r *Reporter) runCallbacks(ctx context.Context, run evals.Run, path string) {
	if len(r.callbacks) == 0 {
		return
	}
	var eg errgroup.Group
	for _, cb := range r.callbacks {
		eg.Go(func() error {
			cb(ctx, run, path)
			return nil
		})
	}
	_ = eg.Wait()
}

// Observe counts each run in the child of obs named after the test, failing it
// when the assertion failed, and records every metric one level below.
func Observe[T evals.Observer](obs *evals.NamespacedObserver[T]) Callback {
	return func(_ context.Context, run evals.Run, _ string) {
		child := obs.Child(run.TestName)
		child.Increment()
		if run.Failed() {
			child.Fail(run.Failure.Error())
		}
		for _, m := range run.Metrics {
			evals.Record(child.Child(evals.NameOf(m)), m)
		}
	}
}

// LogSummary logs a table of the run's metrics at debug level.
func LogSummary() Callback {
	return func(ctx context.Context, run evals.Run, path string) {
		clog.FromContext(ctx).Debugf("%s (%s):\n%s", run.TestName, path, report.Table(run.Metrics))
	}
}
