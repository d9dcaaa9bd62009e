// SPDX-License-Identifier: MIT
// Package: lvtree/batch
//
// run.go — bounded fan-out shared by every operation.

package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// run executes task(ctx, i) for i in [0, n) on at most o.Workers goroutines.
//
// Implementation:
//   - Stage 1: Open the span and log the start.
//   - Stage 2: Schedule tasks in index order, stopping once the group
//     context is done; each task rechecks the context before running and
//     logs its own start and finish.
//   - Stage 3: Wait, then record status, metrics and the finish log.
func run(ctx context.Context, op string, n int, o Options, task func(ctx context.Context, i int) error) (err error) {
	ctx, span := tracer.Start(ctx, "batch."+op,
		trace.WithAttributes(
			attribute.String("op", op),
			attribute.Int("tasks", n),
			attribute.Int("workers", o.Workers),
		),
	)
	defer span.End()

	start := time.Now()
	log := o.Logger.With(slog.String("op", op))
	log.DebugContext(ctx, "batch: start", slog.Int("tasks", n), slog.Int("workers", o.Workers))

	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log.DebugContext(gctx, "batch: task start", slog.Int("task", i))
			began := time.Now()
			if err := task(gctx, i); err != nil {
				log.DebugContext(gctx, "batch: task failed", slog.Int("task", i), slog.Any("error", err))
				return err
			}
			log.DebugContext(gctx, "batch: task done", slog.Int("task", i), slog.Duration("took", time.Since(began)))
			if o.OnProgress != nil {
				mu.Lock()
				done++
				o.OnProgress(done, n)
				mu.Unlock()
			}
			return nil
		})
	}
	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	took := time.Since(start)
	recordRun(ctx, op, n, took, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.DebugContext(ctx, "batch: failed", slog.Duration("took", took), slog.Any("error", err))
		return err
	}
	log.DebugContext(ctx, "batch: done", slog.Duration("took", took))
	return nil
}
