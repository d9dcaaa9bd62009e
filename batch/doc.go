// SPDX-License-Identifier: MIT

// Package batch runs the tree engines over whole corpora concurrently.
//
// Operations:
//   - PairwiseDistances: symmetric edit-distance matrix (ted).
//   - IsomorphismClasses: groups of mutually isomorphic unrooted trees (canon).
//   - Search: targets that contain a pattern (subiso).
//
// Every engine call is an independent task. Tasks fan out over an errgroup
// bounded by WithWorkers; the first failing task or a cancelled context stops
// scheduling and is returned. Engines themselves are not interruptible, so
// cancellation takes effect between tasks.
//
// Each operation opens an OpenTelemetry span (tracer "lvtree.batch") and
// records lvtree_batch_tasks_total and lvtree_batch_duration_seconds through
// the global meter. Without an SDK installed both are no-ops. Progress is
// logged at debug level through the configured *slog.Logger.
package batch
