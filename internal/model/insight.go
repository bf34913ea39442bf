package model

import "time"

// Insight kinds.
const (
	InsightContextAnalysis = "context_analysis"
	InsightProductivity    = "productivity_pattern"
)

// Insight is a stored observation produced by the worker from context
// analysis or metric rollups.
type Insight struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	Kind            string    `json:"kind"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ConfidenceScore float64   `json:"confidence_score"`
	ImpactScore     float64   `json:"impact_score"`
	Actionable      bool      `json:"actionable"`
	CreatedAt       time.Time `json:"created_at"`
}
