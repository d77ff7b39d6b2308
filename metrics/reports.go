/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics records OpenTelemetry metrics about written evaluation reports.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultMeterName is the meter used by NewReports when no name is given.
const DefaultMeterName = "chainguard.dev/evalreport"

// Reports records report writes, assertion failures and assertion durations.
// Instruments that fail to initialize degrade to no-ops with a warning.
type Reports struct {
	written      metric.Int64Counter
	failures     metric.Int64Counter
	duration     metric.Float64Histogram
	attrEnricher AttributeEnricher
}

// NewReports creates the instruments on the global meter provider.
func NewReports(meterName string) *Reports {
	if meterName == "" {
		meterName = DefaultMeterName
	}
	return NewReportsWithMeter(otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0")))
}

// NewReportsWithMeter creates the instruments on meter.
func NewReportsWithMeter(meter metric.Meter) *Reports {
	written, err := meter.Int64Counter("evalreport.reports.written",
		metric.WithDescription("The number of evaluation reports written"),
		metric.WithUnit("{reports}"))
	if err != nil {
		slog.Warn("Failed to create reports written counter, metrics will be disabled", "error", err)
		written = noop.Int64Counter{}
	}

	failures, err := meter.Int64Counter("evalreport.assertion.failures",
		metric.WithDescription("The number of evaluations whose assertion failed"),
		metric.WithUnit("{evaluations}"))
	if err != nil {
		slog.Warn("Failed to create assertion failures counter, metrics will be disabled", "error", err)
		failures = noop.Int64Counter{}
	}

	duration, err := meter.Float64Histogram("evalreport.assertion.duration",
		metric.WithDescription("Wall-clock duration of the evaluation assertion"),
		metric.WithUnit("s"))
	if err != nil {
		slog.Warn("Failed to create assertion duration histogram, metrics will be disabled", "error", err)
		duration = noop.Float64Histogram{}
	}

	return &Reports{
		written:  written,
		failures: failures,
		duration: duration,
	}
}

// SetAttributeEnricher sets the enricher applied before every measurement.
func (r *Reports) SetAttributeEnricher(enricher AttributeEnricher) {
	r.attrEnricher = enricher
}

// RecordRun records a single evaluation: its duration, whether the assertion failed
// and, when written is true, the report write.
func (r *Reports) RecordRun(ctx context.Context, format string, d time.Duration, failed, written bool, attrs ...attribute.KeyValue) {
	baseAttrs := []attribute.KeyValue{
		attribute.String("format", format),
	}
	if r.attrEnricher != nil {
		baseAttrs = r.attrEnricher(ctx, baseAttrs)
	}
	baseAttrs = append(baseAttrs, attrs...)
	opt := metric.WithAttributes(baseAttrs...)

	r.duration.Record(ctx, d.Seconds(), opt)
	if failed {
		r.failures.Add(ctx, 1, opt)
	}
	if written {
		r.written.Add(ctx, 1, opt)
	}
}
