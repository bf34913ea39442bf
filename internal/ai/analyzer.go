package ai

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"smarttodos/internal/model"
)

// TaskInput is everything the analyzer needs to analyze one task. Contexts
// are expected most-recent first; FallbackCategory is the acting user's
// most-used category, used only when nothing else resolves.
type TaskInput struct {
	Title            string
	Description      string
	Category         string
	Priority         string
	FallbackCategory string
	Contexts         []model.ContextEntry
}

// Analyzer is the analysis facade. It is stateless apart from the shared
// lexicon and safe for concurrent use.
type Analyzer struct {
	lexicon *Lexicon
	now     func() time.Time
}

func NewAnalyzer(lx *Lexicon) *Analyzer {
	return &Analyzer{lexicon: lx, now: time.Now}
}

// AnalyzeTask runs the full pipeline for a single task: signal extraction,
// priority and category classification, deadline estimation, tag synthesis,
// confidence scoring and description enhancement. Identical inputs produce
// identical results.
func (a *Analyzer) AnalyzeTask(in TaskInput) (*model.AnalysisResult, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "must not be empty"}
	}

	sig := a.lexicon.ExtractSignals(title, in.Description, in.Contexts)

	priority := a.lexicon.ClassifyPriority(sig, in.Priority)
	category := a.lexicon.ClassifyCategory(sig, in.Category, in.FallbackCategory)

	now := a.now().UTC()
	deadline := EstimateDeadline(now, priority, sig)

	tags := a.lexicon.SynthesizeTags(sig)

	confidence := ScoreConfidence(ConfidenceInput{
		KeywordMatches:  sig.KeywordMatches,
		HasContext:      sig.HasContext,
		TitleLength:     len(title),
		DescriptionLen:  len(strings.TrimSpace(in.Description)),
		TagCount:        len(tags),
		ComplexityKnown: sig.IsComplex || sig.IsQuick,
	})

	return &model.AnalysisResult{
		SuggestedCategory:   category,
		SuggestedPriority:   priority,
		SuggestedDeadline:   &deadline,
		EnhancedDescription: EnhanceDescription(title, in.Description, category, priority, sig),
		SuggestedTags:       tags,
		Reasoning:           buildReasoning(sig, priority, category, deadline.Sub(now), confidence),
		ConfidenceScore:     confidence,
		AIPriorityScore:     PriorityScore(priority, confidence),
		AnalyzedAt:          now,
	}, nil
}

// AnalyzeContext extracts keywords, an urgency score and a sentiment score
// from a free-text context entry.
func (a *Analyzer) AnalyzeContext(content string) (*model.ContextInsight, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Field: "content", Message: "must not be empty"}
	}

	lowered := strings.ToLower(content)
	keywords := a.lexicon.extractKeywords(lowered, 10)

	urgency := 0.0
	for _, kw := range a.lexicon.ContextUrgency {
		if strings.Contains(lowered, kw) {
			urgency += 0.2
		}
	}
	if urgency > 1.0 {
		urgency = 1.0
	}

	pos := countHits(lowered, a.lexicon.Positive)
	neg := countHits(lowered, a.lexicon.Negative)
	sentiment := 0.0
	if pos+neg > 0 {
		sentiment = float64(pos-neg) / float64(pos+neg)
	}

	confidence := 0.5
	if len(keywords) > 0 {
		confidence = 0.8
	}

	return &model.ContextInsight{
		Keywords:       keywords,
		SentimentScore: sentiment,
		UrgencyScore:   urgency,
		Message: fmt.Sprintf("Analyzed %d words with %d key topics identified.",
			len(strings.Fields(content)), len(keywords)),
		Confidence: confidence,
	}, nil
}

// extractKeywords tokenizes lower-cased text and returns up to limit
// alphabetic non-stopword tokens ranked by frequency. Ties keep first
// appearance order so the result is stable across calls.
func (lx *Lexicon) extractKeywords(lowered string, limit int) []string {
	counts := make(map[string]int)
	var order []string

	tokens := strings.FieldsFunc(lowered, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	for _, tok := range tokens {
		if len(tok) <= 2 || !isAlpha(tok) {
			continue
		}
		if _, stop := lx.Stopwords[tok]; stop {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// buildReasoning assembles a short human-readable explanation from the
// decisive signals.
func buildReasoning(sig Signals, priority, category string, offset time.Duration, confidence float64) string {
	var parts []string

	urgency := sig.UrgentHits + sig.HighHits + sig.LowHits
	if urgency > 0 {
		parts = append(parts, fmt.Sprintf("Priority %s from %d urgency keyword match(es).", priority, urgency))
	} else {
		parts = append(parts, fmt.Sprintf("Priority %s (no urgency keywords detected).", priority))
	}

	if hits := sig.CategoryHits[category]; hits > 0 {
		parts = append(parts, fmt.Sprintf("Category %s from %d keyword match(es).", category, hits))
	} else {
		parts = append(parts, fmt.Sprintf("Category %s by fallback.", category))
	}

	if offset < 48*time.Hour {
		parts = append(parts, fmt.Sprintf("Deadline suggested in %d hour(s).", int(offset.Hours())))
	} else {
		parts = append(parts, fmt.Sprintf("Deadline suggested in %d day(s).", int(offset.Hours())/24))
	}

	if sig.HasContext {
		parts = append(parts, fmt.Sprintf("Recent context considered (avg urgency %.2f).", sig.ContextUrgencyAvg))
	}

	parts = append(parts, fmt.Sprintf("Confidence %d.", int(confidence)))

	return strings.Join(parts, " ")
}
