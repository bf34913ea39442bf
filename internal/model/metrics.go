package model

import "time"

// ProductivityMetrics is one user's rollup for a single day.
type ProductivityMetrics struct {
	UserID         int       `json:"user_id"`
	Date           time.Time `json:"date"`
	TasksCompleted int       `json:"tasks_completed"`
	TasksCreated   int       `json:"tasks_created"`
	Score          float64   `json:"score"`
}
