package model

import "time"

// Context entry sources.
const (
	SourceWhatsApp = "whatsapp"
	SourceEmail    = "email"
	SourceNotes    = "notes"
	SourceManual   = "manual"
	SourceCalendar = "calendar"
	SourceMeeting  = "meeting"
)

// ContextEntry is a piece of ambient signal (a message, note, calendar item)
// consumed read-only by the analysis core. Immutable once created except for
// the AI fields filled in by the worker.
type ContextEntry struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	Content string `json:"content"`
	Source  string `json:"source"`

	Processed         bool     `json:"processed"`
	ExtractedKeywords []string `json:"extracted_keywords,omitempty"`
	SentimentScore    float64  `json:"sentiment_score"` // -1..1
	UrgencyScore      float64  `json:"urgency_score"`   // 0..1

	CreatedAt time.Time `json:"created_at"`
}

// ValidSource reports whether s is a known context source.
func ValidSource(s string) bool {
	switch s {
	case SourceWhatsApp, SourceEmail, SourceNotes, SourceManual, SourceCalendar, SourceMeeting:
		return true
	}
	return false
}
