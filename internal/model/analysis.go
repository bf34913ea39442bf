package model

import "time"

// AnalysisResult is the outcome of analyzing one task. Ephemeral: produced
// per call, persisted only as fields on the task by the caller.
type AnalysisResult struct {
	SuggestedCategory   string     `json:"suggested_category"`
	SuggestedPriority   string     `json:"suggested_priority"`
	SuggestedDeadline   *time.Time `json:"suggested_deadline,omitempty"`
	EnhancedDescription string     `json:"enhanced_description"`
	SuggestedTags       []string   `json:"suggested_tags"`
	Reasoning           string     `json:"reasoning"`
	ConfidenceScore     float64    `json:"confidence_score"` // integer-valued, 25..95
	AIPriorityScore     float64    `json:"ai_priority_score"`
	AnalyzedAt          time.Time  `json:"analyzed_at"`
}

// ContextInsight is the outcome of analyzing one context entry.
type ContextInsight struct {
	Keywords       []string `json:"keywords"`
	SentimentScore float64  `json:"sentiment_score"` // -1..1
	UrgencyScore   float64  `json:"urgency_score"`   // 0..1
	Message        string   `json:"message"`
	Confidence     float64  `json:"confidence"`
}
