package ai

import (
	"fmt"
	"strings"

	"smarttodos/internal/model"
)

// Tag synthesis limits.
const (
	MaxTags      = 5
	minTagLength = 3
	maxTagLength = 14 // exclusive
)

// SynthesizeTags builds the suggested tag list for a task: rule-derived
// tags from keyword hits, one tag per matched category, the first two
// content words longer than three characters, and the first two keywords
// carried over from context entries. The union is deduplicated in synthesis
// order, length-filtered, and truncated to MaxTags.
func (lx *Lexicon) SynthesizeTags(sig Signals) []string {
	var candidates []string

	if sig.UrgentHits > 0 {
		candidates = append(candidates, "urgent")
	}
	if strings.Contains(sig.Text, "meeting") {
		candidates = append(candidates, "meeting")
	}
	if strings.Contains(sig.Text, "project") {
		candidates = append(candidates, "project")
	}
	if strings.Contains(sig.Text, "deadline") {
		candidates = append(candidates, "deadline")
	}
	if sig.IsComplex {
		candidates = append(candidates, "complex")
	}
	if sig.IsQuick {
		candidates = append(candidates, "quick")
	}
	if containsAny(sig.Text, "call", "email", "reply", "message") {
		candidates = append(candidates, "communication")
	}
	if strings.Contains(sig.Text, "review") {
		candidates = append(candidates, "review")
	}
	if containsAny(sig.Text, "bug", "fix") {
		candidates = append(candidates, "bugfix")
	}
	if strings.Contains(sig.Text, "feature") {
		candidates = append(candidates, "feature")
	}

	for _, cat := range lx.Categories {
		if sig.CategoryHits[cat.Label] > 0 {
			candidates = append(candidates, strings.ToLower(cat.Label))
		}
	}

	candidates = append(candidates, lx.contentWords(sig.Text, 2)...)

	for i, kw := range sig.ContextKeywords {
		if i >= 2 {
			break
		}
		candidates = append(candidates, strings.ToLower(kw))
	}

	seen := make(map[string]struct{}, len(candidates))
	tags := make([]string, 0, MaxTags)
	for _, tag := range candidates {
		if len(tag) < minTagLength || len(tag) >= maxTagLength {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}

// contentWords returns up to limit alphabetic words longer than three
// characters from the text, skipping stopwords, in order of appearance.
func (lx *Lexicon) contentWords(text string, limit int) []string {
	var words []string
	for _, field := range strings.Fields(text) {
		word := strings.Trim(field, ".,;:!?()[]{}\"'")
		if len(word) <= 3 || !isAlpha(word) {
			continue
		}
		if _, stop := lx.Stopwords[word]; stop {
			continue
		}
		words = append(words, word)
		if len(words) == limit {
			break
		}
	}
	return words
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}

// minDescriptionLength is the threshold below which a supplied description
// is replaced with a synthesized one.
const minDescriptionLength = 50

// EnhanceDescription returns the description to store for a task. A
// supplied description of reasonable length passes through untouched;
// short or missing ones are replaced with a template assembled from the
// resolved priority, category and complexity signals.
func EnhanceDescription(title, description, category, priority string, sig Signals) string {
	description = strings.TrimSpace(description)
	if len(description) >= minDescriptionLength {
		return description
	}

	parts := []string{fmt.Sprintf("Complete the task: %s.", strings.TrimSpace(title))}

	if priority == model.PriorityUrgent || priority == model.PriorityHigh {
		parts = append(parts, "This task requires prompt attention.")
	}

	switch category {
	case "Work":
		parts = append(parts, "Coordinate with the people involved and confirm the expected deliverable.")
	case "Health":
		parts = append(parts, "Schedule it around your regular routine so it actually happens.")
	case "Learning":
		parts = append(parts, "Set aside distraction-free time and keep notes as you go.")
	}

	if sig.IsComplex {
		parts = append(parts, "Break the work into smaller subtasks before starting.")
	} else if sig.IsQuick {
		parts = append(parts, "This should be quick to finish in a single sitting.")
	}

	parts = append(parts, "Prepare any resources you need in advance.")

	return strings.Join(parts, " ")
}
