package ai

import (
	"time"

	"smarttodos/internal/model"
)

// EstimateDeadline maps resolved priority and complexity signals to an
// absolute deadline. The decision table:
//
//	urgent (or text mentions today/asap):  quick -> +4h,    else -> +24h
//	high (or context urgency avg > 0.7):   complex -> +5d,  else -> +3d
//	low:                                   complex -> +21d, else -> +14d
//	medium (default):                      complex -> +10d, else -> +7d
//
// Never returns a zero time once priority is resolved.
func EstimateDeadline(now time.Time, priority string, sig Signals) time.Time {
	switch {
	case priority == model.PriorityUrgent || containsAny(sig.Text, "today", "asap"):
		if sig.IsQuick {
			return now.Add(4 * time.Hour)
		}
		return now.Add(24 * time.Hour)

	case priority == model.PriorityHigh || sig.ContextUrgencyAvg > 0.7:
		if sig.IsComplex {
			return now.AddDate(0, 0, 5)
		}
		return now.AddDate(0, 0, 3)

	case priority == model.PriorityLow:
		if sig.IsComplex {
			return now.AddDate(0, 0, 21)
		}
		return now.AddDate(0, 0, 14)

	default:
		if sig.IsComplex {
			return now.AddDate(0, 0, 10)
		}
		return now.AddDate(0, 0, 7)
	}
}
