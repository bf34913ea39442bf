package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttodos/internal/model"
)

var planDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func taskOf(id int, title, priority string, score float64, minutes int) model.Task {
	return model.Task{
		ID:                id,
		Title:             title,
		Priority:          priority,
		AIPriorityScore:   score,
		EstimatedDuration: minutes,
	}
}

func TestBuildDayPlanEmpty(t *testing.T) {
	blocks := BuildDayPlan(nil, planDate)

	require.Len(t, blocks, 1)
	assert.Equal(t, model.BlockFocus, blocks[0].Kind)
	assert.Equal(t, at(9, 0), blocks[0].StartTime)
	assert.Equal(t, at(10, 30), blocks[0].EndTime)
}

func TestBuildDayPlanFiveLongTasks(t *testing.T) {
	tasks := []model.Task{
		taskOf(1, "first", model.PriorityUrgent, 90, 120),
		taskOf(2, "second", model.PriorityUrgent, 80, 120),
		taskOf(3, "third", model.PriorityHigh, 70, 120),
		taskOf(4, "fourth", model.PriorityHigh, 60, 120),
		taskOf(5, "fifth", model.PriorityMedium, 50, 120),
	}

	blocks := BuildDayPlan(tasks, planDate)

	var titles []string
	for _, b := range blocks {
		titles = append(titles, b.Title)
	}
	assert.Equal(t, []string{
		"Morning Focus", "first", "Short Break", "Lunch",
		"second", "Short Break", "third",
	}, titles)

	// Highest weight lands right after the focus block.
	assert.Equal(t, at(10, 30), blocks[1].StartTime)
	assert.Equal(t, at(12, 30), blocks[1].EndTime)

	// Lunch shifts to the cursor because the morning ran past noon.
	assert.Equal(t, model.BlockBreak, blocks[3].Kind)
	assert.Equal(t, at(12, 45), blocks[3].StartTime)
	assert.Equal(t, at(13, 45), blocks[3].EndTime)

	// Fourth and fifth would start at or past 18:00 and are dropped.
	for _, b := range blocks {
		if b.TaskID != nil {
			assert.NotEqual(t, 4, *b.TaskID)
			assert.NotEqual(t, 5, *b.TaskID)
		}
	}
}

func TestBuildDayPlanStableTieBreak(t *testing.T) {
	tasks := []model.Task{
		taskOf(1, "alpha", model.PriorityMedium, 50, 30),
		taskOf(2, "beta", model.PriorityMedium, 50, 30),
		taskOf(3, "gamma", model.PriorityMedium, 50, 30),
	}

	blocks := BuildDayPlan(tasks, planDate)

	require.Len(t, blocks, 5)
	assert.Equal(t, "alpha", blocks[1].Title)
	assert.Equal(t, "Lunch", blocks[2].Title)
	assert.Equal(t, "beta", blocks[3].Title)
	assert.Equal(t, "gamma", blocks[4].Title)
}

func TestBuildDayPlanPriorityTierBeatsScore(t *testing.T) {
	tasks := []model.Task{
		taskOf(1, "scored-low-tier", model.PriorityLow, 100, 30),
		taskOf(2, "urgent-tier", model.PriorityUrgent, 0, 30),
	}

	blocks := BuildDayPlan(tasks, planDate)

	require.Len(t, blocks, 4)
	assert.Equal(t, "urgent-tier", blocks[1].Title)
	assert.Equal(t, "Lunch", blocks[2].Title)
	assert.Equal(t, "scored-low-tier", blocks[3].Title)
}

func TestBuildDayPlanDefaultDuration(t *testing.T) {
	tasks := []model.Task{taskOf(1, "no duration", model.PriorityMedium, 50, 0)}

	blocks := BuildDayPlan(tasks, planDate)

	// Missing duration defaults to one hour; the 11:30 cursor then pulls in
	// the lunch block.
	require.Len(t, blocks, 3)
	assert.Equal(t, at(10, 30), blocks[1].StartTime)
	assert.Equal(t, at(11, 30), blocks[1].EndTime)
	assert.Equal(t, "Lunch", blocks[2].Title)
}

func TestBuildDayPlanShortTasksGetLunchAtNoon(t *testing.T) {
	tasks := []model.Task{
		taskOf(1, "a", model.PriorityMedium, 50, 30),
		taskOf(2, "b", model.PriorityMedium, 50, 30),
	}

	blocks := BuildDayPlan(tasks, planDate)

	// a ends at 11:00 which trips the midday check, so lunch lands at its
	// noon anchor and b resumes after it.
	require.Len(t, blocks, 4)
	lunch := blocks[2]
	assert.Equal(t, model.BlockBreak, lunch.Kind)
	assert.Equal(t, "Lunch", lunch.Title)
	assert.Equal(t, at(12, 0), lunch.StartTime)
	assert.Equal(t, at(13, 0), lunch.EndTime)

	assert.Equal(t, "b", blocks[3].Title)
	assert.Equal(t, at(13, 0), blocks[3].StartTime)
}

func TestBuildDayPlanInvariants(t *testing.T) {
	cases := [][]model.Task{
		nil,
		{taskOf(1, "one", model.PriorityUrgent, 95, 480)},
		{
			taskOf(1, "a", model.PriorityUrgent, 90, 45),
			taskOf(2, "b", model.PriorityHigh, 10, 200),
			taskOf(3, "c", model.PriorityLow, 5, 15),
			taskOf(4, "d", model.PriorityMedium, 70, 90),
			taskOf(5, "e", model.PriorityHigh, 55, 60),
			taskOf(6, "f", model.PriorityLow, 0, 0),
		},
		{
			taskOf(1, "x", model.PriorityMedium, 50, 600),
			taskOf(2, "y", model.PriorityMedium, 50, 600),
			taskOf(3, "z", model.PriorityMedium, 50, 600),
		},
	}

	dayStart := at(0, 0)
	dayEnd := dayStart.Add(24 * time.Hour)

	for _, tasks := range cases {
		blocks := BuildDayPlan(tasks, planDate)

		for i, b := range blocks {
			assert.True(t, b.StartTime.Before(b.EndTime), "block %d start before end", i)
			assert.False(t, b.StartTime.Before(dayStart), "block %d within day", i)
			assert.False(t, b.EndTime.After(dayEnd), "block %d within day", i)
		}

		for i := 1; i < len(blocks); i++ {
			assert.False(t, blocks[i].StartTime.Before(blocks[i-1].EndTime),
				"blocks %d and %d overlap", i-1, i)
		}
	}
}

func TestBuildDayPlanDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		taskOf(1, "low", model.PriorityLow, 10, 30),
		taskOf(2, "urgent", model.PriorityUrgent, 90, 30),
	}

	BuildDayPlan(tasks, planDate)

	assert.Equal(t, "low", tasks[0].Title)
	assert.Equal(t, "urgent", tasks[1].Title)
}
