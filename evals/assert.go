/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Asserter decides whether a measured test case passes.
// Implementations return a non-nil error when it does not.
type Asserter interface {
	Assert(ctx context.Context, tc TestCase, metrics []Metric, opts ...AssertOption) error
}

// AssertFunc adapts an ordinary function to the Asserter interface.
type AssertFunc func(ctx context.Context, tc TestCase, metrics []Metric, opts ...AssertOption) error

// Assert calls f.
func (f AssertFunc) Assert(ctx context.Context, tc TestCase, metrics []Metric, opts ...AssertOption) error {
	return f(ctx, tc, metrics, opts...)
}

// AssertConfig holds the options an Asserter was called with.
// Callers of an Asserter pass options through without interpreting them.
type AssertConfig struct {
	// Async asks the asserter to evaluate metrics concurrently.
	Async bool
	// Options carries implementation specific settings.
	Options map[string]any
}

// AssertOption configures a single Assert call.
type AssertOption func(*AssertConfig)

// WithAsync toggles concurrent metric evaluation.
func WithAsync(async bool) AssertOption {
	return func(c *AssertConfig) {
		c.Async = async
	}
}

// WithOption sets an implementation specific option.
func WithOption(key string, value any) AssertOption {
	return func(c *AssertConfig) {
		if c.Options == nil {
			c.Options = make(map[string]any)
		}
		c.Options[key] = value
	}
}

// NewAssertConfig applies opts to an empty AssertConfig.
func NewAssertConfig(opts ...AssertOption) AssertConfig {
	var cfg AssertConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ThresholdAsserter passes a test case when every metric passes (see Passed).
type ThresholdAsserter struct {
	// Concurrency bounds the number of metrics checked at once in async mode.
	// Zero means unbounded.
	Concurrency int
}

var _ Asserter = ThresholdAsserter{}

// Assert returns an *AssertionError naming every metric that did not pass.
func (a ThresholdAsserter) Assert(ctx context.Context, _ TestCase, metrics []Metric, opts ...AssertOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := NewAssertConfig(opts...)

	passed := make([]bool, len(metrics))
	if cfg.Async {
		g, ctx := errgroup.WithContext(ctx)
		if a.Concurrency > 0 {
			g.SetLimit(a.Concurrency)
		}
		for i, m := range metrics {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				passed[i] = Passed(m)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for i, m := range metrics {
			passed[i] = Passed(m)
		}
	}

	var failed []Metric
	for i, ok := range passed {
		if !ok {
			failed = append(failed, metrics[i])
		}
	}
	if len(failed) > 0 {
		return &AssertionError{Failed: failed}
	}
	return nil
}
