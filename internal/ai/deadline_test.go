package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smarttodos/internal/model"
)

func TestEstimateDeadline(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		priority string
		sig      Signals
		want     time.Time
	}{
		{"urgent quick", model.PriorityUrgent, Signals{IsQuick: true}, now.Add(4 * time.Hour)},
		{"urgent not quick", model.PriorityUrgent, Signals{}, now.Add(24 * time.Hour)},
		{"asap text forces short window", model.PriorityMedium, Signals{Text: "finish this asap"}, now.Add(24 * time.Hour)},
		{"high complex", model.PriorityHigh, Signals{IsComplex: true}, now.AddDate(0, 0, 5)},
		{"high simple", model.PriorityHigh, Signals{}, now.AddDate(0, 0, 3)},
		{"context urgency escalates", model.PriorityMedium, Signals{ContextUrgencyAvg: 0.8}, now.AddDate(0, 0, 3)},
		{"low complex", model.PriorityLow, Signals{IsComplex: true}, now.AddDate(0, 0, 21)},
		{"low simple", model.PriorityLow, Signals{}, now.AddDate(0, 0, 14)},
		{"medium complex", model.PriorityMedium, Signals{IsComplex: true}, now.AddDate(0, 0, 10)},
		{"medium simple", model.PriorityMedium, Signals{}, now.AddDate(0, 0, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateDeadline(now, tt.priority, tt.sig)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.After(now))
		})
	}
}
