package ai

import (
	"strings"

	"smarttodos/internal/model"
)

// MaxContextEntries caps how many recent context entries feed the analysis.
const MaxContextEntries = 3

// Signals is the feature set extracted from one task's text plus recent
// context. It is the sole input to the classifiers downstream.
type Signals struct {
	// Text is the lower-cased concatenation of title and description.
	Text string

	UrgentHits int
	HighHits   int
	LowHits    int

	// CategoryHits maps a category label to its keyword hit count.
	CategoryHits map[string]int

	ComplexityHits int
	QuickHits      int

	// KeywordMatches is the total hit count across all dimensions,
	// feeding the confidence score.
	KeywordMatches int

	IsComplex bool
	IsQuick   bool

	HasContext        bool
	ContextUrgencyAvg float64
	ContextKeywords   []string
}

// ExtractSignals computes keyword-membership signals for a task. Matching is
// substring containment against each lexicon keyword rather than word
// boundary matching, so short fragments still match inside compound phrases.
// Contexts are expected most-recent first; at most MaxContextEntries are used.
func (lx *Lexicon) ExtractSignals(title, description string, contexts []model.ContextEntry) Signals {
	text := strings.ToLower(strings.TrimSpace(title + " " + description))

	sig := Signals{
		Text:         text,
		UrgentHits:   countHits(text, lx.Urgent),
		HighHits:     countHits(text, lx.High),
		LowHits:      countHits(text, lx.Low),
		CategoryHits: make(map[string]int, len(lx.Categories)),
	}

	for _, cat := range lx.Categories {
		hits := countHits(text, cat.Keywords)
		sig.CategoryHits[cat.Label] = hits
		sig.KeywordMatches += hits
	}

	sig.ComplexityHits = countHits(text, lx.Complexity)
	sig.QuickHits = countHits(text, lx.Quick)
	sig.IsComplex = sig.ComplexityHits > 0
	sig.IsQuick = sig.QuickHits > 0

	sig.KeywordMatches += sig.UrgentHits + sig.HighHits + sig.LowHits +
		sig.ComplexityHits + sig.QuickHits

	if len(contexts) > MaxContextEntries {
		contexts = contexts[:MaxContextEntries]
	}
	if len(contexts) > 0 {
		sig.HasContext = true
		var sum float64
		for _, entry := range contexts {
			sum += entry.UrgencyScore
			sig.ContextKeywords = append(sig.ContextKeywords, entry.ExtractedKeywords...)
		}
		sig.ContextUrgencyAvg = sum / float64(len(contexts))
	}

	return sig
}

// countHits counts how many keywords from the set occur in the text. Each
// keyword counts at most once regardless of repetition.
func countHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
