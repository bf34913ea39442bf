package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttodos/internal/model"
)

func TestProductivityScore(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		created   int
		want      float64
	}{
		{"no activity", 0, 0, 0},
		{"creations only", 0, 3, 15},
		{"completions only", 2, 0, 40},
		{"mixed day", 3, 4, 80},
		{"exactly at cap", 4, 4, 100},
		{"capped", 10, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductivityScore(tt.completed, tt.created))
		})
	}
}

func TestProductivityInsightBelowMark(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// 3 completed + 3 created = 75, below the mark
	assert.Nil(t, productivityInsight(7, day, 3, 3, ProductivityScore(3, 3)))
	assert.Nil(t, productivityInsight(7, day, 0, 0, 0))
}

func TestProductivityInsightAtMark(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	insight := productivityInsight(7, day, 4, 0, ProductivityScore(4, 0))
	require.NotNil(t, insight)
	assert.Equal(t, 7, insight.UserID)
	assert.Equal(t, model.InsightProductivity, insight.Kind)
	assert.Equal(t, "High productivity day", insight.Title)
	assert.Contains(t, insight.Description, "completed 4 tasks")
	assert.Contains(t, insight.Description, "2025-03-10")
	assert.Equal(t, 0.8, insight.ImpactScore)
	assert.False(t, insight.Actionable)
}

func TestProductivityScoreNeverExceedsCap(t *testing.T) {
	for completed := 0; completed <= 20; completed++ {
		for created := 0; created <= 20; created++ {
			score := ProductivityScore(completed, created)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}
