/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"errors"
	"fmt"
	"strings"
)

// AssertionError is returned by ThresholdAsserter when one or more metrics do not pass.
type AssertionError struct {
	// Failed lists the metrics that did not pass, in input order.
	Failed []Metric
}

// Error lists every failing metric with its score and threshold.
func (e *AssertionError) Error() string {
	parts := make([]string, 0, len(e.Failed))
	for _, m := range e.Failed {
		score, hasScore := m.Score()
		threshold, hasThreshold := m.Threshold()
		parts = append(parts, fmt.Sprintf("%s (score=%s threshold=%s)",
			NameOf(m), FormatScore(score, hasScore), FormatScore(threshold, hasThreshold)))
	}
	return "metrics below threshold: " + strings.Join(parts, ", ")
}

// IsAssertionError reports whether err (or any error it wraps) is an *AssertionError.
func IsAssertionError(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}
