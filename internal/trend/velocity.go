package trend

import (
	"math"
	"time"
)

const (
	// epsilon guards divisions on sparse mention data.
	epsilon = 1e-6

	// maxAcceleration caps the short/medium ratio when the medium
	// window is empty. With the velocityDivisor of 5 the capped
	// product still clamps to 1.
	maxAcceleration = 5.0

	// velocityDivisor maps boosted velocity into [0,1].
	velocityDivisor = 5.0

	// historyCap bounds per-topic velocity history, oldest first out.
	historyCap = 24
)

// VelocityScorer computes raw and normalized mention velocity with an
// acceleration boost comparing the short window against the medium one.
type VelocityScorer struct {
	short  time.Duration
	medium time.Duration
}

// NewVelocityScorer builds a scorer for the given windows.
func NewVelocityScorer(short, medium time.Duration) *VelocityScorer {
	return &VelocityScorer{short: short, medium: medium}
}

// Score returns (raw, normalized) velocity for the topic at now.
// Raw velocity is short-window mentions per hour. A topic with zero
// short-window mentions always normalizes to 0, whatever the medium
// window holds.
func (v *VelocityScorer) Score(t *Topic, now time.Time) (float64, float64) {
	shortN := countSince(t.Mentions, now.Add(-v.short))
	mediumN := countSince(t.Mentions, now.Add(-v.medium))

	raw := float64(shortN) / v.short.Hours()
	if shortN == 0 {
		return 0, 0
	}

	mediumRate := float64(mediumN) / v.medium.Hours()
	var accel float64
	if mediumRate < epsilon {
		accel = maxAcceleration
	} else {
		accel = raw / mediumRate
	}

	norm := clamp(raw*accel/velocityDivisor, 0, 1)
	return raw, norm
}

// appendSnapshot records the topic's current velocity in its bounded
// history. Call after stage classification: the classifier must always
// compare against the prior cycle, never the current one.
func appendSnapshot(t *Topic, now time.Time) {
	t.History = append(t.History, VelocitySnapshot{
		At:           now,
		VelocityRaw:  t.Scores.VelocityRaw,
		VelocityNorm: t.Scores.VelocityNorm,
		Mentions:     len(t.Mentions),
	})
	if len(t.History) > historyCap {
		t.History = t.History[len(t.History)-historyCap:]
	}
}

func countSince(mentions []Mention, cutoff time.Time) int {
	n := 0
	for _, m := range mentions {
		if m.At.After(cutoff) {
			n++
		}
	}
	return n
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
