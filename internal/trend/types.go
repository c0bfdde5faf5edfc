// Package trend detects trending topics in a stream of news articles:
// keyword extraction, time-windowed velocity, composite trend scoring,
// lifecycle staging, and edit-distance clustering. The engine performs
// no I/O; articles arrive precollected and source credibility arrives
// precomputed.
package trend

import "time"

// Article is the read-only input record. Credibility is supplied by an
// external scorer and must already be in [0,1].
type Article struct {
	ID                string    `json:"id"`
	PublishedAt       time.Time `json:"publishedAt"`
	Title             string    `json:"title"`
	Text              string    `json:"text"`
	SourceName        string    `json:"sourceName"`
	SourceCredibility float64   `json:"sourceCredibility"`
}

// Mention is one keyword occurrence in one article. Mentions exist only
// inside the engine's working set; they are never emitted on their own.
type Mention struct {
	Keyword     string    `json:"keyword"`
	ArticleID   string    `json:"articleId"`
	At          time.Time `json:"at"`
	Credibility float64   `json:"credibility"`
}

// Scores holds the per-topic score set. All fields except VelocityRaw
// are in [0,1]; VelocityRaw is mentions per hour and unbounded.
type Scores struct {
	VelocityRaw  float64 `json:"velocityRaw"`
	VelocityNorm float64 `json:"velocityNormalized"`
	Volume       float64 `json:"volumeScore"`
	Recency      float64 `json:"recencyScore"`
	Credibility  float64 `json:"credibilityScore"`
	Trend        float64 `json:"trendScore"`
}

// VelocitySnapshot records a topic's velocity at the end of one cycle.
type VelocitySnapshot struct {
	At           time.Time `json:"at"`
	VelocityRaw  float64   `json:"velocityRaw"`
	VelocityNorm float64   `json:"velocityNormalized"`
	Mentions     int       `json:"mentions"`
}

// Stage classifies a topic's trajectory.
type Stage string

const (
	StageEmerging  Stage = "emerging"
	StageRising    Stage = "rising"
	StagePeak      Stage = "peak"
	StageDeclining Stage = "declining"
	StageFading    Stage = "fading"
)

// Topic is the engine-owned record for one keyword. Mentions are pruned
// to the long window each cycle; History holds at most historyCap
// snapshots, oldest dropped first.
type Topic struct {
	Keyword    string             `json:"keyword"`
	Mentions   []Mention          `json:"mentions"`
	Scores     Scores             `json:"scores"`
	History    []VelocitySnapshot `json:"history"`
	FirstSeen  time.Time          `json:"firstSeen"`
	LastSeen   time.Time          `json:"lastSeen"`
	Stage      Stage              `json:"stage"`
	Confidence float64            `json:"stageConfidence"`
}

// clone returns a copy that shares no slices with the original, so
// results stay immutable after the next cycle mutates the store.
func (t *Topic) clone() Topic {
	c := *t
	c.Mentions = make([]Mention, len(t.Mentions))
	copy(c.Mentions, t.Mentions)
	c.History = make([]VelocitySnapshot, len(t.History))
	copy(c.History, t.History)
	return c
}

// Cluster groups trending topics whose keywords are similar enough to
// be one story. The representative is the highest-scored member.
type Cluster struct {
	ID             string  `json:"id"`
	Representative string  `json:"representative"`
	Members        []Topic `json:"members"`
}

// Summary holds aggregate statistics over the trending set.
type Summary struct {
	AvgVelocity   float64 `json:"avgVelocity"`
	AvgTrendScore float64 `json:"avgTrendScore"`
}

// AnalysisResult is the immutable output of one analysis cycle. It is
// safe to read concurrently and to serialize for storage or delivery.
type AnalysisResult struct {
	ID              string         `json:"id"`
	GeneratedAt     time.Time      `json:"generatedAt"`
	Trending        []Topic        `json:"trending"`
	Clusters        []Cluster      `json:"clusters"`
	Lifecycle       map[Stage]int  `json:"lifecycleDistribution"`
	Summary         Summary        `json:"summary"`
	ArticlesSeen    int            `json:"articlesSeen"`
	ArticlesSkipped int            `json:"articlesSkipped"`
}
