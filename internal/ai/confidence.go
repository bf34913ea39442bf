package ai

import "smarttodos/internal/model"

// Confidence bounds.
const (
	MinConfidence = 25
	MaxConfidence = 95
)

// ConfidenceInput carries the signal-strength and input-quality features
// that feed the confidence formula.
type ConfidenceInput struct {
	KeywordMatches  int
	HasContext      bool
	TitleLength     int
	DescriptionLen  int
	TagCount        int
	ComplexityKnown bool // a complexity or quick signal was detected
}

// ScoreConfidence aggregates corroborating signals into a bounded score.
// Each contribution is capped so no single signal can dominate; keyword
// stuffing alone cannot push the score past the keyword cap. The result is
// integer-valued and always within [MinConfidence, MaxConfidence].
func ScoreConfidence(in ConfidenceInput) float64 {
	score := 20

	keywordScore := 5 * in.KeywordMatches
	if keywordScore > 25 {
		keywordScore = 25
	}
	score += keywordScore

	if in.HasContext {
		score += 20
	}
	if in.DescriptionLen > 20 {
		score += 15
	}
	if in.TitleLength > 10 {
		score += 10
	} else {
		score += 5
	}
	if in.TagCount > 2 {
		score += 10
	}
	if in.ComplexityKnown {
		score += 5
	}

	if score < MinConfidence {
		score = MinConfidence
	}
	if score > MaxConfidence {
		score = MaxConfidence
	}
	return float64(score)
}

// PriorityScore derives the task's 0..100 priority score deterministically
// from the resolved priority tier and the analysis confidence.
func PriorityScore(priority string, confidence float64) float64 {
	score := model.PriorityWeight(priority) * 25 * confidence / 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
