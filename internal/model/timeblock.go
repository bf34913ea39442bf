package model

import "time"

// Time block kinds.
const (
	BlockTask    = "task"
	BlockFocus   = "focus"
	BlockBreak   = "break"
	BlockMeeting = "meeting"
)

// TimeBlock is a scheduled interval on a single day's timeline.
// Invariant: StartTime < EndTime, and blocks produced for the same day
// never overlap.
type TimeBlock struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Kind      string    `json:"kind"`
	TaskID    *int      `json:"task_id,omitempty"`
}
