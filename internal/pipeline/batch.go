package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// DefaultConcurrency is the number of requests processed in parallel when
// WithConcurrency is not given.
const DefaultConcurrency = 4

// BatchProcessor handles concurrent processing of multiple requests.
// It uses errgroup to manage goroutines and respect concurrency limits.
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each request so that
	// no step state is shared between requests.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent requests.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent requests.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
// pipelineFactory is called once per request.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch runs every request through its own pipeline.
// Results keep the order of requests. A failing request is recorded on its
// result and does not stop the others; the returned error is only set when
// the batch was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, requests []model.Request) ([]*model.Result, error) {
	bp.logger.Debug("starting batch processing",
		"total", len(requests),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Each goroutine writes only its own slot, so no lock is needed.
	results := make([]*model.Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, req := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := model.NewResult(req)
			if err := bp.pipelineFactory().Execute(ctx, result); err != nil {
				bp.logger.Warn("request failed",
					"index", i,
					"type", string(req.Type),
					"error", err,
				)
			}
			results[i] = result
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Debug("batch processing complete",
		"total", len(requests),
		"elapsed", time.Since(startTime),
	)

	return results, err
}
