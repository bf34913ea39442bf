package ai

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"smarttodos/internal/model"
)

func TestScoreConfidenceBounds(t *testing.T) {
	for _, matches := range []int{0, 1, 3, 10, 100} {
		for _, ctx := range []bool{false, true} {
			for _, descLen := range []int{0, 21, 500} {
				for _, tags := range []int{0, 3, 5} {
					in := ConfidenceInput{
						KeywordMatches:  matches,
						HasContext:      ctx,
						TitleLength:     40,
						DescriptionLen:  descLen,
						TagCount:        tags,
						ComplexityKnown: true,
					}
					score := ScoreConfidence(in)
					name := fmt.Sprintf("m%d_ctx%t_d%d_t%d", matches, ctx, descLen, tags)
					assert.GreaterOrEqual(t, score, float64(MinConfidence), name)
					assert.LessOrEqual(t, score, float64(MaxConfidence), name)
					assert.Equal(t, float64(int(score)), score, "integer-valued: %s", name)
				}
			}
		}
	}
}

func TestScoreConfidenceContributions(t *testing.T) {
	base := ConfidenceInput{TitleLength: 5}
	assert.Equal(t, 25.0, ScoreConfidence(base), "floor applies with no signals")

	rich := ConfidenceInput{
		KeywordMatches:  4,
		HasContext:      true,
		TitleLength:     25,
		DescriptionLen:  80,
		TagCount:        4,
		ComplexityKnown: true,
	}
	// 20 + 20 + 20 + 15 + 10 + 10 + 5 = 100, clamped to 95.
	assert.Equal(t, 95.0, ScoreConfidence(rich))

	stuffed := ConfidenceInput{KeywordMatches: 50, TitleLength: 5}
	// Keyword contribution caps at 25: 20 + 25 + 5 = 50.
	assert.Equal(t, 50.0, ScoreConfidence(stuffed))
}

func TestPriorityScore(t *testing.T) {
	assert.Equal(t, 55.0, PriorityScore(model.PriorityUrgent, 55))
	assert.Equal(t, 75.0, PriorityScore(model.PriorityHigh, 100))
	assert.Equal(t, 12.5, PriorityScore(model.PriorityMedium, 25))
	assert.Equal(t, 23.75, PriorityScore(model.PriorityLow, 95))

	for _, p := range []string{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent} {
		for _, c := range []float64{MinConfidence, 50, MaxConfidence} {
			score := PriorityScore(p, c)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}
