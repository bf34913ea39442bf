// Package schedule packs a day's tasks into ordered, non-overlapping time
// blocks. The algorithm is a single greedy pass over weight-ranked tasks
// with fixed focus and lunch blocks; no backtracking, no reordering after
// placement.
package schedule

import (
	"math"
	"sort"
	"time"

	"smarttodos/internal/model"
)

// Day layout constants, in fractional hours from midnight.
const (
	dayStartHour  = 9.0
	focusEndHour  = 10.5
	dayEndHour    = 18.0
	breakHours    = 0.25
	lunchHours    = 1.0
	lunchEarliest = 11.0
	lunchLatest   = 13.0
	lunchAnchor   = 12.0
)

// taskWeight ranks tasks for packing: normalized AI score plus the priority
// tier weight, so tier dominates and the score breaks ties within a tier.
func taskWeight(t model.Task) float64 {
	return t.AIPriorityScore/100 + float64(model.PriorityWeight(t.Priority))
}

// BuildDayPlan schedules tasks onto the given date and returns the emitted
// blocks in timeline order. The day opens with a fixed focus block, tasks
// are placed by descending weight (stable on ties), long tasks are followed
// by a short break, and a one-hour lunch block is inserted once when the
// cursor passes midday. Tasks that would start at or after the day-end
// cutoff are dropped, not rescheduled. Input tasks are never mutated.
func BuildDayPlan(tasks []model.Task, date time.Time) []model.TimeBlock {
	ranked := make([]model.Task, len(tasks))
	copy(ranked, tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return taskWeight(ranked[i]) > taskWeight(ranked[j])
	})

	blocks := []model.TimeBlock{{
		Title:     "Morning Focus",
		StartTime: hourToTime(date, dayStartHour),
		EndTime:   hourToTime(date, focusEndHour),
		Kind:      model.BlockFocus,
	}}

	cursor := focusEndHour
	lunchPlaced := false

	for _, task := range ranked {
		if cursor >= dayEndHour {
			break
		}

		duration := float64(task.EstimatedDuration) / 60
		if task.EstimatedDuration <= 0 {
			duration = float64(model.DefaultEstimatedDuration) / 60
		}

		taskID := task.ID
		blocks = append(blocks, model.TimeBlock{
			Title:     task.Title,
			StartTime: hourToTime(date, cursor),
			EndTime:   hourToTime(date, capHour(cursor+duration)),
			Kind:      model.BlockTask,
			TaskID:    &taskID,
		})
		cursor = capHour(cursor + duration)

		if duration > 1 && cursor < dayEndHour {
			blocks = append(blocks, model.TimeBlock{
				Title:     "Short Break",
				StartTime: hourToTime(date, cursor),
				EndTime:   hourToTime(date, capHour(cursor+breakHours)),
				Kind:      model.BlockBreak,
			})
			cursor = capHour(cursor + breakHours)
		}

		if !lunchPlaced && cursor >= lunchEarliest && cursor <= lunchLatest {
			// Anchored at noon but pushed to the cursor when the morning
			// ran long, so the block never overlaps an earlier one.
			start := math.Max(lunchAnchor, cursor)
			blocks = append(blocks, model.TimeBlock{
				Title:     "Lunch",
				StartTime: hourToTime(date, start),
				EndTime:   hourToTime(date, capHour(start+lunchHours)),
				Kind:      model.BlockBreak,
			})
			cursor = capHour(start + lunchHours)
			lunchPlaced = true
		}
	}

	return blocks
}

func capHour(h float64) float64 {
	if h > 24.0 {
		return 24.0
	}
	return h
}

// hourToTime converts a fractional hour to a concrete instant on the target
// date. Rounding to whole minutes keeps block boundaries clean.
func hourToTime(date time.Time, hour float64) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(math.Round(hour*60)) * time.Minute)
}
