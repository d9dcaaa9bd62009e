// SPDX-License-Identifier: MIT
// Package: lvtree/batch
//
// metrics.go — tracer and metric instruments.

package batch

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("lvtree.batch")
	meter  = otel.Meter("lvtree.batch")
)

var (
	tasksTotal metric.Int64Counter
	duration   metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		tasksTotal, err = meter.Int64Counter(
			"lvtree_batch_tasks_total",
			metric.WithDescription("Engine calls executed by batch operations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		duration, err = meter.Float64Histogram(
			"lvtree_batch_duration_seconds",
			metric.WithDescription("Duration of batch operations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordRun records one finished operation.
func recordRun(ctx context.Context, op string, tasks int, took time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("op", op),
		attribute.Bool("success", success),
	)
	tasksTotal.Add(ctx, int64(tasks), attrs)
	duration.Record(ctx, took.Seconds(), attrs)
}
