package ai

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"smarttodos/internal/model"
)

func TestClassifyPriorityCascade(t *testing.T) {
	lx := DefaultLexicon()

	tests := []struct {
		name     string
		title    string
		supplied string
		want     string
	}{
		{"urgent keyword wins", "urgent server outage", "", model.PriorityUrgent},
		{"urgent beats supplied low", "asap fix the build", model.PriorityLow, model.PriorityUrgent},
		{"high keyword", "important quarterly report", "", model.PriorityHigh},
		{"high beats supplied low", "deadline for submission", model.PriorityLow, model.PriorityHigh},
		{"low keyword", "maybe reorganize the shelf", "", model.PriorityLow},
		{"supplied value honored", "water the plants", model.PriorityHigh, model.PriorityHigh},
		{"invalid supplied falls back", "water the plants", "extreme", model.PriorityMedium},
		{"no signal no supplied", "water the plants", "", model.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := lx.ExtractSignals(tt.title, "", nil)
			assert.Equal(t, tt.want, lx.ClassifyPriority(sig, tt.supplied))
		})
	}
}

func TestClassifyPriorityAlwaysValid(t *testing.T) {
	lx := DefaultLexicon()

	titles := []string{
		"", "urgent", "whenever", "deadline asap maybe",
		"completely unrelated text", "123 456", "称号",
	}
	supplied := []string{"", "low", "medium", "high", "urgent", "bogus", "URGENT"}

	for _, title := range titles {
		for _, sup := range supplied {
			t.Run(fmt.Sprintf("%q/%q", title, sup), func(t *testing.T) {
				sig := lx.ExtractSignals(title, "", nil)
				got := lx.ClassifyPriority(sig, sup)
				assert.True(t, model.ValidPriority(got), "got %q", got)
			})
		}
	}
}

func TestClassifyCategoryPrecedence(t *testing.T) {
	lx := DefaultLexicon()

	tests := []struct {
		name     string
		title    string
		supplied string
		mostUsed string
		want     string
	}{
		{"work keyword", "prepare the client presentation", "", "", "Work"},
		{"health keyword", "book a dentist appointment", "", "", "Health"},
		{"health beats learning", "study for the medical exam at the gym", "", "", "Health"},
		{"work beats everything", "meeting about the gym membership budget", "", "", "Work"},
		{"supplied fallback", "do the thing", "Errands", "", "Errands"},
		{"most used fallback", "do the thing", "", "Personal", "Personal"},
		{"default fallback", "do the thing", "", "", "Work"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := lx.ExtractSignals(tt.title, "", nil)
			assert.Equal(t, tt.want, lx.ClassifyCategory(sig, tt.supplied, tt.mostUsed))
		})
	}
}
