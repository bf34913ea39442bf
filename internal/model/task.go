package model

import "time"

// Priority levels, lowest to highest.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task statuses.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// DefaultEstimatedDuration is assumed when a task carries no estimate (minutes).
const DefaultEstimatedDuration = 60

type Task struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CategoryID  *int       `json:"category_id,omitempty"`
	Category    string     `json:"category,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`

	// Time management (minutes)
	EstimatedDuration int  `json:"estimated_duration"`
	ActualDuration    *int `json:"actual_duration,omitempty"`

	// AI-derived fields, written back by the analysis pipeline
	AIPriorityScore       float64  `json:"ai_priority_score"`
	AIConfidenceScore     float64  `json:"ai_confidence_score"`
	AIReasoning           string   `json:"ai_reasoning,omitempty"`
	AIEnhancedDescription string   `json:"ai_enhanced_description,omitempty"`
	AISuggestedTags       []string `json:"ai_suggested_tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidPriority reports whether p is one of the four known levels.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// PriorityWeight maps a priority level to its scheduling weight.
// Unknown values weigh in as medium.
func PriorityWeight(p string) float64 {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}
