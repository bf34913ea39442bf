package ai

import "smarttodos/internal/model"

// ClassifyPriority resolves a task's priority from its signals. Detected
// urgency always wins over an explicitly supplied lower priority; the
// cascade is urgent, high, low, then the supplied value, then medium.
// Total function: always returns one of the four levels.
func (lx *Lexicon) ClassifyPriority(sig Signals, supplied string) string {
	switch {
	case sig.UrgentHits > 0:
		return model.PriorityUrgent
	case sig.HighHits > 0:
		return model.PriorityHigh
	case sig.LowHits > 0:
		return model.PriorityLow
	}
	if model.ValidPriority(supplied) {
		return supplied
	}
	return model.PriorityMedium
}

// ClassifyCategory resolves a task's category. Categories are evaluated in
// fixed lexicon order and the first one with any keyword hit wins, making
// the tie-break positional rather than scored. With no hits the fallbacks
// are the supplied category, then the user's most-used category, then Work.
func (lx *Lexicon) ClassifyCategory(sig Signals, supplied, mostUsed string) string {
	for _, cat := range lx.Categories {
		if sig.CategoryHits[cat.Label] > 0 {
			return cat.Label
		}
	}
	if supplied != "" {
		return supplied
	}
	if mostUsed != "" {
		return mostUsed
	}
	return "Work"
}
