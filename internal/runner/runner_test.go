package runner

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"trendwatch/internal/config"
	"trendwatch/internal/trend"
)

type fakeProvider struct {
	calls atomic.Int64
	fail  bool
}

func (p *fakeProvider) Articles(ctx context.Context) ([]trend.Article, error) {
	p.calls.Add(1)
	if p.fail {
		return nil, errors.New("feed unavailable")
	}
	return []trend.Article{{
		ID:                "a1",
		PublishedAt:       time.Now(),
		Text:              "wildfire spreads rapidly",
		SourceCredibility: 0.8,
	}}, nil
}

func newTestRunnerEngine(t *testing.T) *trend.Engine {
	t.Helper()
	e, err := trend.New(config.Default(), nil)
	if err != nil {
		t.Fatalf("trend.New: %v", err)
	}
	return e
}

func TestRunnerImmediateCycle(t *testing.T) {
	engine := newTestRunnerEngine(t)
	provider := &fakeProvider{}
	results := make(chan *trend.AnalysisResult, 1)

	r := New(engine, provider, time.Hour, func(res *trend.AnalysisResult) {
		select {
		case results <- res:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	select {
	case res := <-results:
		if res.ArticlesSeen != 1 {
			t.Errorf("articles seen = %d, want 1", res.ArticlesSeen)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result before the first tick; Start must run a cycle immediately")
	}

	cancel()
	r.Wait()
}

func TestRunnerPeriodicCycles(t *testing.T) {
	engine := newTestRunnerEngine(t)
	provider := &fakeProvider{}
	done := make(chan struct{})
	var count atomic.Int64

	r := New(engine, provider, 10*time.Millisecond, func(*trend.AnalysisResult) {
		if count.Add(1) == 3 {
			close(done)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("only %d cycles completed, want 3", count.Load())
	}

	cancel()
	r.Wait()

	if engine.GetStats().Cycles < 3 {
		t.Errorf("engine cycles = %d, want >= 3", engine.GetStats().Cycles)
	}
}

func TestRunnerProviderErrorSkipsCycle(t *testing.T) {
	engine := newTestRunnerEngine(t)
	provider := &fakeProvider{fail: true}
	var delivered atomic.Int64

	r := New(engine, provider, 10*time.Millisecond, func(*trend.AnalysisResult) {
		delivered.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	// Give it a few ticks to (not) produce results
	time.Sleep(100 * time.Millisecond)
	cancel()
	r.Wait()

	if provider.calls.Load() == 0 {
		t.Fatal("provider was never invoked")
	}
	if delivered.Load() != 0 {
		t.Errorf("sink delivered %d results despite provider failures", delivered.Load())
	}
	if engine.GetStats().Cycles != 0 {
		t.Errorf("engine ran %d cycles despite provider failures", engine.GetStats().Cycles)
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	engine := newTestRunnerEngine(t)
	provider := &fakeProvider{}

	r := New(engine, provider, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
	r.Wait()

	after := provider.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if provider.calls.Load() != after {
		t.Error("cycles continued after context cancellation")
	}
}

func TestRunnerNilSink(t *testing.T) {
	engine := newTestRunnerEngine(t)
	provider := &fakeProvider{}

	r := New(engine, provider, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
	r.Wait()

	if provider.calls.Load() != 1 {
		t.Errorf("provider calls = %d, want exactly the immediate cycle", provider.calls.Load())
	}
}
