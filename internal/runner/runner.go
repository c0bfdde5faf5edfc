// Package runner drives periodic analysis cycles for services that
// embed the engine on a timer. It guarantees at most one Analyze call
// in flight at a time and uses context cancellation as the ONLY stop
// mechanism.
package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"trendwatch/internal/logging"
	"trendwatch/internal/trend"
)

// ArticleProvider supplies the article batch for each analysis cycle.
// Fetching articles is the provider's concern, not the engine's.
type ArticleProvider interface {
	Articles(ctx context.Context) ([]trend.Article, error)
}

// Sink receives each completed analysis result.
type Sink func(*trend.AnalysisResult)

// Runner runs one analysis cycle immediately on Start, then one per
// interval. A cycle that is still running when the ticker fires causes
// the new tick to be skipped, never queued.
type Runner struct {
	engine   *trend.Engine
	provider ArticleProvider
	interval time.Duration
	sink     Sink

	wg     sync.WaitGroup
	inWork atomic.Bool
}

// New creates a Runner. The sink may be nil to discard results.
func New(engine *trend.Engine, provider ArticleProvider, interval time.Duration, sink Sink) *Runner {
	return &Runner{
		engine:   engine,
		provider: provider,
		interval: interval,
		sink:     sink,
	}
}

// Start begins periodic analysis. Call with a cancellable context.
func (r *Runner) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		r.runCycle(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.runCycle(ctx)
			}
		}
	}()
}

// Wait blocks until the background goroutine exits. Call after
// canceling the context passed to Start.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// runCycle fetches articles and runs one analysis, enforcing the
// single-flight guarantee.
func (r *Runner) runCycle(ctx context.Context) {
	if !r.inWork.CompareAndSwap(false, true) {
		logging.Warn("runner: previous cycle still running, skipping tick")
		return
	}
	defer r.inWork.Store(false)

	articles, err := r.provider.Articles(ctx)
	if err != nil {
		logging.Error("runner: article provider failed", "error", err)
		return
	}

	result, err := r.engine.Analyze(ctx, articles)
	if err != nil {
		logging.Error("runner: analysis failed", "error", err)
		return
	}

	if r.sink != nil {
		r.sink(result)
	}
}
