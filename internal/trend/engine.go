package trend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"trendwatch/internal/config"
	"trendwatch/internal/logging"
)

// maxExtractWorkers limits parallel keyword extraction.
const maxExtractWorkers = 4

// maxRecentCycles bounds the recent-cycle ring.
const maxRecentCycles = 50

// Stats holds engine lifetime counters.
type Stats struct {
	Cycles          int
	ArticlesSeen    int
	ArticlesSkipped int
	TopicsPurged    int
	StartTime       time.Time
}

// CycleSummary is one entry in the recent-cycle ring.
type CycleSummary struct {
	At       time.Time
	Articles int
	Skipped  int
	Topics   int
	Trending int
}

// Engine runs the full analysis cycle over an injected topic store.
// A mutex serializes cycles: two overlapping Analyze calls can never
// interleave mention appends and score recomputes for the same keyword.
// Completed results are immutable snapshots, readable without locks.
type Engine struct {
	mu    sync.Mutex
	cfg   *config.Config
	store *TopicStore

	extractor *Extractor
	velocity  *VelocityScorer
	scorer    *TrendScorer
	clusterer *Clusterer

	stats        Stats
	recentCycles [maxRecentCycles]CycleSummary
	cycleIndex   int
}

// New builds an engine from a validated configuration and a store.
// An invalid configuration is rejected here; no partial engine exists.
func New(cfg *config.Config, store *TopicStore) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}
	if store == nil {
		store = NewTopicStore()
	}
	return &Engine{
		cfg:       cfg,
		store:     store,
		extractor: NewExtractor(cfg.MinKeywordLength, cfg.MaxKeywordLength, cfg.Stopwords),
		velocity:  NewVelocityScorer(cfg.ShortWindow, cfg.MediumWindow),
		scorer: NewTrendScorer(Weights{
			Velocity:    cfg.VelocityWeight,
			Volume:      cfg.VolumeWeight,
			Recency:     cfg.RecencyWeight,
			Credibility: cfg.CredibilityWeight,
		}, cfg.MediumWindow),
		clusterer: NewClusterer(cfg.SimilarityThreshold, cfg.MaxClusterSize),
		stats:     Stats{StartTime: time.Now()},
	}, nil
}

// Store returns the engine's topic store.
func (e *Engine) Store() *TopicStore {
	return e.store
}

// Analyze runs one synchronous analysis cycle over the given articles
// and returns a completed, immutable result. Empty input never fails:
// the result simply carries empty trending, cluster, and lifecycle
// data. Malformed articles are skipped individually and counted.
func (e *Engine) Analyze(ctx context.Context, articles []Article) (*AnalysisResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now()

	purged := e.store.Purge(now, e.cfg.LongWindow)

	keywords, skipped := e.extractAll(ctx, articles)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("trend: analyze: %w", err)
	}

	for i, a := range articles {
		for _, kw := range keywords[i] {
			e.store.Record(kw, Mention{
				Keyword:     kw,
				ArticleID:   a.ID,
				At:          a.PublishedAt,
				Credibility: clamp(a.SourceCredibility, 0, 1),
			})
		}
	}
	e.store.SortMentions()

	// Rescore every retained topic, not just touched ones: recency and
	// velocity decay between observations, and a quiet topic must be
	// allowed to slide toward Declining and Fading.
	active := e.store.All()
	for _, t := range active {
		raw, norm := e.velocity.Score(t, now)
		t.Scores.VelocityRaw = raw
		t.Scores.VelocityNorm = norm
		t.Scores = e.scorer.Score(t, now)
		t.Stage, t.Confidence = classifyStage(t)
		appendSnapshot(t, now)
	}

	trending := e.selectTrending(active)

	result := &AnalysisResult{
		ID:              uuid.NewString(),
		GeneratedAt:     now,
		Trending:        trending,
		Lifecycle:       map[Stage]int{},
		ArticlesSeen:    len(articles),
		ArticlesSkipped: skipped,
	}

	if e.cfg.IncludeClusters {
		result.Clusters = e.clusterer.Cluster(trending)
	}
	if e.cfg.IncludeLifecycle {
		for _, t := range active {
			result.Lifecycle[t.Stage]++
		}
	}
	result.Summary = summarize(trending)

	e.stats.Cycles++
	e.stats.ArticlesSeen += len(articles)
	e.stats.ArticlesSkipped += skipped
	e.stats.TopicsPurged += purged
	e.addCycle(CycleSummary{
		At:       now,
		Articles: len(articles),
		Skipped:  skipped,
		Topics:   len(active),
		Trending: len(trending),
	})

	logging.Info("trend: cycle complete",
		"articles", len(articles),
		"skipped", skipped,
		"topics", len(active),
		"purged", purged,
		"trending", len(trending),
		"clusters", len(result.Clusters))

	return result, nil
}

// extractAll runs keyword extraction across articles with bounded
// parallelism. Extraction is pure, so goroutines share nothing but the
// per-index result slot. Malformed articles (no timestamp, or no title
// and no text) are skipped and counted.
func (e *Engine) extractAll(ctx context.Context, articles []Article) ([][]string, int) {
	keywords := make([][]string, len(articles))
	skipped := 0

	var g errgroup.Group
	g.SetLimit(maxExtractWorkers)
	for i, a := range articles {
		i, a := i, a
		if a.PublishedAt.IsZero() || (a.Title == "" && a.Text == "") {
			skipped++
			logging.Debug("trend: skipping malformed article", "id", a.ID)
			continue
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			keywords[i] = e.extractor.Keywords(a.Title + " " + a.Text)
			return nil
		})
	}
	_ = g.Wait() // extraction never fails; errors are not possible

	return keywords, skipped
}

// selectTrending applies the mention and velocity gates, ranks by
// trend score, and caps at the configured limit.
func (e *Engine) selectTrending(active []*Topic) []Topic {
	var trending []Topic
	for _, t := range active {
		if len(t.Mentions) < e.cfg.MinMentions {
			continue
		}
		if t.Scores.VelocityNorm < e.cfg.MinVelocity {
			continue
		}
		trending = append(trending, t.clone())
	}

	sort.Slice(trending, func(i, j int) bool {
		if trending[i].Scores.Trend != trending[j].Scores.Trend {
			return trending[i].Scores.Trend > trending[j].Scores.Trend
		}
		return trending[i].Keyword < trending[j].Keyword
	})

	if e.cfg.Limit > 0 && len(trending) > e.cfg.Limit {
		trending = trending[:e.cfg.Limit]
	}
	return trending
}

func summarize(trending []Topic) Summary {
	if len(trending) == 0 {
		return Summary{}
	}
	var vel, trend float64
	for _, t := range trending {
		vel += t.Scores.VelocityRaw
		trend += t.Scores.Trend
	}
	n := float64(len(trending))
	return Summary{AvgVelocity: vel / n, AvgTrendScore: trend / n}
}

// addCycle adds a summary to the recent-cycle ring.
func (e *Engine) addCycle(c CycleSummary) {
	e.recentCycles[e.cycleIndex] = c
	e.cycleIndex = (e.cycleIndex + 1) % maxRecentCycles
}

// RecentCycles returns up to count recent cycle summaries, newest
// first.
func (e *Engine) RecentCycles(count int) []CycleSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	if count > maxRecentCycles {
		count = maxRecentCycles
	}
	result := make([]CycleSummary, 0, count)
	idx := (e.cycleIndex - 1 + maxRecentCycles) % maxRecentCycles
	for i := 0; i < count; i++ {
		c := e.recentCycles[idx]
		if c.At.IsZero() {
			break
		}
		result = append(result, c)
		idx = (idx - 1 + maxRecentCycles) % maxRecentCycles
	}
	return result
}

// GetStats returns current engine statistics.
func (e *Engine) GetStats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// Reset tears down the engine's state: all topics and their history
// are cleared. Idempotent; intended for process shutdown.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Reset()
	e.stats = Stats{StartTime: e.stats.StartTime}
	e.recentCycles = [maxRecentCycles]CycleSummary{}
	e.cycleIndex = 0
}
