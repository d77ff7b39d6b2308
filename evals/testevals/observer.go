/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package testevals

import (
	"fmt"
	"sync/atomic"
	"testing"

	"chainguard.dev/evalreport/evals"
)

// observer reports through a testing.TB.
type observer struct {
	tb     testing.TB
	prefix string
	count  atomic.Int64
}

// New returns an Observer whose failures fail tb.
func New(tb testing.TB) evals.Observer {
	return &observer{tb: tb}
}

// NewPrefix is New with every message prefixed, typically by the observer path.
func NewPrefix(tb testing.TB, prefix string) evals.Observer {
	return &observer{tb: tb, prefix: prefix}
}

func (o *observer) format(msg string) string {
	if o.prefix == "" {
		return msg
	}
	return o.prefix + ": " + msg
}

func (o *observer) Fail(msg string) {
	o.tb.Helper()
	o.tb.Error(o.format(msg))
}

func (o *observer) Log(msg string) {
	o.tb.Helper()
	o.tb.Log(o.format(msg))
}

func (o *observer) Grade(score float64, reasoning string) {
	o.tb.Helper()
	o.tb.Log(o.format(fmt.Sprintf("Grade: %.2f - %s", score, reasoning)))
}

func (o *observer) Increment() { o.count.Add(1) }

func (o *observer) Total() int64 { return o.count.Load() }
