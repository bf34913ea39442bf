package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttodos/internal/model"
)

func fixedAnalyzer() *Analyzer {
	a := NewAnalyzer(DefaultLexicon())
	a.now = func() time.Time {
		return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	}
	return a
}

func TestAnalyzeTaskWorkedExample(t *testing.T) {
	a := fixedAnalyzer()

	res, err := a.AnalyzeTask(TaskInput{Title: "Urgent: fix production bug"})
	require.NoError(t, err)

	assert.Equal(t, model.PriorityUrgent, res.SuggestedPriority)
	assert.Equal(t, "Work", res.SuggestedCategory)
	require.NotNil(t, res.SuggestedDeadline)
	assert.Equal(t, a.now().Add(24*time.Hour), *res.SuggestedDeadline)
	assert.Contains(t, res.SuggestedTags, "urgent")
	assert.Contains(t, res.SuggestedTags, "bugfix")
	assert.Contains(t, res.SuggestedTags, "work")

	// 20 base + 15 keywords + 10 title + 10 tags = 55.
	assert.Equal(t, 55.0, res.ConfidenceScore)
	assert.Equal(t, 55.0, res.AIPriorityScore)
	assert.NotEmpty(t, res.Reasoning)
	assert.NotEmpty(t, res.EnhancedDescription)
}

func TestAnalyzeTaskEmptyTitle(t *testing.T) {
	a := fixedAnalyzer()

	res, err := a.AnalyzeTask(TaskInput{Title: "   ", Description: "something"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, IsValidationError(err))
}

func TestAnalyzeTaskIdempotent(t *testing.T) {
	a := fixedAnalyzer()

	in := TaskInput{
		Title:       "Plan the database migration",
		Description: "requires research and a rollback strategy",
		Contexts: []model.ContextEntry{
			{UrgencyScore: 0.4, ExtractedKeywords: []string{"migration"}},
		},
	}

	first, err := a.AnalyzeTask(in)
	require.NoError(t, err)
	second, err := a.AnalyzeTask(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeTaskConfidenceWithinBounds(t *testing.T) {
	a := fixedAnalyzer()

	titles := []string{
		"x",
		"urgent important deadline critical asap emergency must required",
		"read a book sometime",
	}
	for _, title := range titles {
		res, err := a.AnalyzeTask(TaskInput{Title: title})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.ConfidenceScore, float64(MinConfidence))
		assert.LessOrEqual(t, res.ConfidenceScore, float64(MaxConfidence))
	}
}

func TestAnalyzeContext(t *testing.T) {
	a := fixedAnalyzer()

	insight, err := a.AnalyzeContext("Urgent deadline today, the deploy is blocked and everyone is stressed")
	require.NoError(t, err)

	assert.Contains(t, insight.Keywords, "deadline")
	assert.Contains(t, insight.Keywords, "deploy")
	assert.LessOrEqual(t, len(insight.Keywords), 10)

	// urgent, deadline, today: three urgency keywords at 0.2 each.
	assert.InDelta(t, 0.6, insight.UrgencyScore, 1e-9)
	assert.Less(t, insight.SentimentScore, 0.0, "blocked/stress lean negative")
	assert.Equal(t, 0.8, insight.Confidence)
	assert.NotEmpty(t, insight.Message)
}

func TestAnalyzeContextEmpty(t *testing.T) {
	a := fixedAnalyzer()

	insight, err := a.AnalyzeContext("  ")
	require.Error(t, err)
	assert.Nil(t, insight)
	assert.True(t, IsValidationError(err))
}

func TestAnalyzeContextUrgencyCapped(t *testing.T) {
	a := fixedAnalyzer()

	insight, err := a.AnalyzeContext("urgent asap immediately emergency critical deadline due today tomorrow now")
	require.NoError(t, err)
	assert.Equal(t, 1.0, insight.UrgencyScore)
}
