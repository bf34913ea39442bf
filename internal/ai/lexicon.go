// Package ai implements the keyword-heuristic analysis core: signal
// extraction, priority/category classification, deadline estimation,
// confidence scoring, tag synthesis and description enhancement. Everything
// in this package is a pure function of its inputs; no I/O happens here.
package ai

// CategoryKeywords pairs a category label with its keyword set. Order
// matters: classification walks categories front to back and the first
// match wins.
type CategoryKeywords struct {
	Label    string
	Keywords []string
}

// Lexicon holds the immutable keyword sets used for substring-containment
// classification. Built once at process start and shared by reference; it
// is never mutated after construction.
type Lexicon struct {
	Urgent []string
	High   []string
	Low    []string

	Categories []CategoryKeywords

	Complexity []string
	Quick      []string

	Positive []string
	Negative []string

	// ContextUrgency drives the 0..1 urgency score of context entries.
	ContextUrgency []string

	Stopwords map[string]struct{}
}

// DefaultLexicon returns the built-in keyword configuration.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Urgent: []string{
			"urgent", "asap", "emergency", "critical", "immediately", "right away",
		},
		High: []string{
			"important", "priority", "deadline", "due", "must", "required", "essential",
		},
		Low: []string{
			"sometime", "maybe", "consider", "eventually", "whenever", "someday", "optional",
		},
		Categories: []CategoryKeywords{
			{Label: "Work", Keywords: []string{
				"work", "meeting", "project", "client", "report", "presentation",
				"office", "interview", "standup", "review", "deploy", "release",
				"bug", "production", "sprint",
			}},
			{Label: "Health", Keywords: []string{
				"health", "doctor", "exercise", "gym", "workout", "medical",
				"dentist", "medicine", "yoga", "therapy", "checkup",
			}},
			{Label: "Personal", Keywords: []string{
				"personal", "family", "home", "friend", "birthday", "shopping",
				"clean", "grocery", "visit", "trip", "holiday",
			}},
			{Label: "Learning", Keywords: []string{
				"learn", "study", "course", "read", "book", "tutorial",
				"practice", "class", "lecture", "certification",
			}},
			{Label: "Finance", Keywords: []string{
				"finance", "budget", "pay", "bill", "invoice", "tax", "bank",
				"insurance", "salary", "investment", "rent",
			}},
		},
		Complexity: []string{
			"complex", "difficult", "research", "analyze", "design", "architecture",
			"refactor", "investigate", "plan", "strategy",
		},
		Quick: []string{
			"quick", "simple", "easy", "small", "minor", "call", "reply", "ping",
		},
		Positive: []string{
			"good", "great", "excellent", "happy", "excited", "love", "awesome",
			"progress", "success", "win", "done", "complete",
		},
		Negative: []string{
			"bad", "terrible", "stress", "worried", "angry", "frustrated",
			"problem", "fail", "blocked", "issue", "delay", "overwhelmed",
		},
		ContextUrgency: []string{
			"urgent", "asap", "immediately", "emergency", "critical",
			"deadline", "due", "today", "tomorrow", "now",
		},
		Stopwords: makeStopwords(),
	}
}

func makeStopwords() map[string]struct{} {
	words := []string{
		"the", "a", "an", "and", "or", "but", "for", "nor", "with", "about",
		"into", "over", "after", "before", "from", "this", "that", "these",
		"those", "then", "than", "them", "they", "their", "there", "here",
		"have", "has", "had", "was", "were", "been", "being", "are", "is",
		"will", "would", "should", "could", "can", "may", "might", "not",
		"what", "when", "where", "which", "who", "whom", "why", "how",
		"all", "any", "both", "each", "few", "more", "most", "some", "such",
		"only", "own", "same", "very", "just", "because", "while", "during",
		"you", "your", "our", "out", "off", "too", "also", "its", "it's",
		"need", "needs", "get", "got", "make", "made",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
