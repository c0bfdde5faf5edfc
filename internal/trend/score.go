package trend

import "time"

// volumeDivisor maps total mention count into a [0,1] volume score;
// ten or more mentions saturate it.
const volumeDivisor = 10.0

// Weights configures the trend-score composite. The weights are not
// required to sum to 1; the composite is clamped after summation.
type Weights struct {
	Velocity    float64
	Volume      float64
	Recency     float64
	Credibility float64
}

// TrendScorer combines velocity, volume, recency, and source
// credibility into one weighted score per topic.
type TrendScorer struct {
	weights Weights
	medium  time.Duration
}

// NewTrendScorer builds a scorer. The medium window sets the recency
// horizon: a topic whose average mention age reaches it scores 0.
func NewTrendScorer(w Weights, medium time.Duration) *TrendScorer {
	return &TrendScorer{weights: w, medium: medium}
}

// Score computes volume, recency, credibility, and the composite trend
// score. Velocity must already be filled in on the topic's Scores.
func (s *TrendScorer) Score(t *Topic, now time.Time) Scores {
	sc := t.Scores

	total := len(t.Mentions)
	sc.Volume = clamp(float64(total)/volumeDivisor, 0, 1)

	if total > 0 {
		var ageSum time.Duration
		var credSum float64
		for _, m := range t.Mentions {
			age := now.Sub(m.At)
			if age < 0 {
				age = 0 // future-dated mentions treated as brand new
			}
			ageSum += age
			credSum += m.Credibility
		}
		avgAge := ageSum / time.Duration(total)
		sc.Recency = clamp(1-avgAge.Hours()/s.medium.Hours(), 0, 1)
		sc.Credibility = clamp(credSum/float64(total), 0, 1)
	} else {
		sc.Recency = 0
		sc.Credibility = 0
	}

	sc.Trend = clamp(
		sc.VelocityNorm*s.weights.Velocity+
			sc.Volume*s.weights.Volume+
			sc.Recency*s.weights.Recency+
			sc.Credibility*s.weights.Credibility,
		0, 1)
	return sc
}
