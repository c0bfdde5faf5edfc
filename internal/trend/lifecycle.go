package trend

import "math"

// Stage transition thresholds on velocity percent change per cycle.
const (
	emergingChange  = 0.50
	risingChange    = 0.10
	decliningChange = -0.10
	fadingChange    = -0.50
)

// Confidence bounds for stage classification.
const (
	minStageConfidence = 0.3
	maxStageConfidence = 0.95
)

// classifyStage assigns a lifecycle stage by comparing the topic's
// current normalized velocity against the immediately preceding stored
// snapshot. Must run before this cycle's snapshot is appended.
//
// With fewer than two historical snapshots the topic reports Emerging
// at minimum confidence; confidence then grows with history depth.
func classifyStage(t *Topic) (Stage, float64) {
	if len(t.History) < 2 {
		return StageEmerging, minStageConfidence
	}

	prev := t.History[len(t.History)-1].VelocityNorm
	pct := (t.Scores.VelocityNorm - prev) / math.Max(prev, epsilon)

	var stage Stage
	switch {
	case pct >= emergingChange:
		stage = StageEmerging
	case pct >= risingChange:
		stage = StageRising
	case pct >= decliningChange:
		stage = StagePeak
	case pct > fadingChange:
		stage = StageDeclining
	default:
		stage = StageFading
	}

	return stage, stageConfidence(len(t.History))
}

// stageConfidence grows with the number of history points, capped.
func stageConfidence(historyLen int) float64 {
	conf := 0.5 + 0.05*float64(historyLen)
	if conf > maxStageConfidence {
		conf = maxStageConfidence
	}
	return conf
}
