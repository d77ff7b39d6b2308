/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reporter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"chainguard.dev/evalreport/evals"
	"chainguard.dev/evalreport/metrics"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "chainguard.dev/evalreport/reporter"

// errAborted is recorded when the assertion exits its goroutine without returning.
var errAborted = errors.New("assertion aborted before returning")

// Writer persists a finished run and returns the absolute path it wrote.
// junit.Writer and jsonreport.Writer implement it.
type Writer interface {
	Format() string
	Write(path string, run evals.Run) (string, error)
}

// Reporter runs assertions and writes a report for every run.
// It is safe for concurrent use once constructed.
type Reporter struct {
	asserter  evals.Asserter
	cfg       Config
	writer    Writer
	callbacks []Callback
	metrics   *metrics.Reports
	tracer    trace.Tracer
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(r *Reporter) { r.cfg = cfg }
}

// WithWriter overrides the writer selected by Config.Format.
func WithWriter(w Writer) Option {
	return func(r *Reporter) { r.writer = w }
}

// WithCallbacks adds callbacks run after every written report.
func WithCallbacks(callbacks ...Callback) Option {
	return func(r *Reporter) { r.callbacks = append(r.callbacks, callbacks...) }
}

// WithMetrics sets the instruments runs are recorded on.
func WithMetrics(m *metrics.Reports) Option {
	return func(r *Reporter) { r.metrics = m }
}

// WithTracerProvider sets the provider of the per-run span.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Reporter) { r.tracer = tp.Tracer(tracerName) }
}

// New creates a Reporter around asserter.
func New(asserter evals.Asserter, opts ...Option) (*Reporter, error) {
	if asserter == nil {
		return nil, errors.New("asserter is required")
	}
	r := &Reporter{
		asserter: asserter,
		cfg:      DefaultConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.writer == nil {
		w, err := writerFor(r.cfg.Format)
		if err != nil {
			return nil, err
		}
		r.writer = w
	}
	if r.metrics == nil {
		r.metrics = metrics.NewReports("")
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	return r, nil
}

// Format returns the format of the reports r writes.
func (r *Reporter) Format() string { return r.writer.Format() }

// RunOption configures a single RunAndReport call.
type RunOption func(*runOptions)

type runOptions struct {
	testName   string
	assertOpts []evals.AssertOption
}

// WithTestName sets the test name recorded in the report.
func WithTestName(name string) RunOption {
	return func(o *runOptions) { o.testName = name }
}

// WithAssertOptions passes options through to the asserter unchanged.
func WithAssertOptions(opts ...evals.AssertOption) RunOption {
	return func(o *runOptions) { o.assertOpts = append(o.assertOpts, opts...) }
}

// RunAndReport asserts metrics against tc and writes a report to outputPath
// no matter the outcome. A relative outputPath is resolved against
// Config.OutputDir when it is set.
//
// It returns the absolute path of the report and the assertion's own error.
// If the report cannot be written the path is empty and the write error is
// returned, joined with the assertion error when there is one.
func (r *Reporter) RunAndReport(ctx context.Context, tc evals.TestCase, metrics []evals.Metric, outputPath string, opts ...RunOption) (string, error) {
	var ro runOptions
	for _, opt := range opts {
		opt(&ro)
	}
	name := ro.testName
	if name == "" {
		name = callerName(1)
	}

	ctx, span := r.tracer.Start(ctx, "evalreport.run", trace.WithAttributes(
		attribute.String("test.name", name),
		attribute.String("report.format", r.writer.Format()),
		attribute.Int("metrics.count", len(metrics)),
	))
	defer span.End()
	ctx = clog.WithLogger(ctx, clog.FromContext(ctx).With("test", name))

	run := evals.Run{
		TestName: name,
		TestCase: tc,
		Metrics:  metrics,
	}
	path := r.resolve(outputPath)

	start := time.Now()
	returned := false
	defer func() {
		if returned {
			return
		}
		// The assertion panicked or called runtime.Goexit.
		p := recover()
		run.Duration = time.Since(start)
		run.Failure = errAborted
		if p != nil {
			run.Failure = fmt.Errorf("assertion panicked: %v", p)
		}
		_, _ = r.finish(ctx, span, run, path)
		if p != nil {
			panic(p)
		}
	}()
	run.Failure = r.asserter.Assert(ctx, tc, metrics, ro.assertOpts...)
	run.Duration = time.Since(start)
	returned = true

	return r.finish(ctx, span, run, path)
}

func (r *Reporter) resolve(path string) string {
	if r.cfg.OutputDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.cfg.OutputDir, path)
}

// finish writes the report for run and settles logging, metrics, callbacks and span status.
func (r *Reporter) finish(ctx context.Context, span trace.Span, run evals.Run, path string) (string, error) {
	log := clog.FromContext(ctx)
	format := r.writer.Format()

	written, err := r.writer.Write(path, run)
	r.metrics.RecordRun(ctx, format, run.Duration, run.Failed(), err == nil)
	if err != nil {
		log.Errorf("Failed to write %s report to %s: %v", format, path, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "writing report")
		if run.Failed() {
			return "", errors.Join(run.Failure, err)
		}
		return "", err
	}

	span.SetAttributes(attribute.String("report.path", written))
	if r.cfg.Quiet {
		log.Debugf("evaluation report written to: %s", written)
	} else {
		log.Infof("evaluation report written to: %s", written)
	}

	r.runCallbacks(ctx, run, written)

	if run.Failed() {
		span.RecordError(run.Failure)
		span.SetStatus(codes.Error, "assertion failed")
		return written, run.Failure
	}
	span.SetStatus(codes.Ok, "")
	return written, nil
}
