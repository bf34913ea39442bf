package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"smarttodos/internal/model"
	"smarttodos/internal/repository"
)

// highProductivityScore is the daily score at which a productivity insight
// is recorded for the user.
const highProductivityScore = 80

type MetricsService struct {
	userRepo    *repository.UserRepository
	taskRepo    *repository.TaskRepository
	metricsRepo *repository.MetricsRepository
	insightRepo *repository.InsightRepository
	logger      *zap.Logger
}

func NewMetricsService(
	userRepo *repository.UserRepository,
	taskRepo *repository.TaskRepository,
	metricsRepo *repository.MetricsRepository,
	insightRepo *repository.InsightRepository,
	logger *zap.Logger,
) *MetricsService {
	return &MetricsService{
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		metricsRepo: metricsRepo,
		insightRepo: insightRepo,
		logger:      logger,
	}
}

// ProductivityScore weighs completions over creations, capped at 100.
func ProductivityScore(completed, created int) float64 {
	score := float64(completed*20 + created*5)
	if score > 100 {
		return 100
	}
	return score
}

// productivityInsight builds the insight recorded when a day's score
// reaches the high-productivity mark. Returns nil below it.
func productivityInsight(userID int, day time.Time, completed, created int, score float64) *model.Insight {
	if score < highProductivityScore {
		return nil
	}
	return &model.Insight{
		UserID: userID,
		Kind:   model.InsightProductivity,
		Title:  "High productivity day",
		Description: fmt.Sprintf(
			"You completed %d tasks and created %d on %s. Keep the momentum going.",
			completed, created, day.Format("2006-01-02"),
		),
		ConfidenceScore: 0.9,
		ImpactScore:     score / 100,
		Actionable:      false,
	}
}

// RollupDay recomputes every active user's productivity metrics for one
// day. Per-user failures are logged and skipped so one bad row cannot stall
// the whole rollup.
func (s *MetricsService) RollupDay(ctx context.Context, day time.Time) error {
	userIDs, err := s.userRepo.ListActiveIDs(ctx)
	if err != nil {
		return err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	var failed int

	for _, userID := range userIDs {
		prevScore, err := s.metricsRepo.GetScore(ctx, userID, dayStart)
		if err != nil {
			s.logger.Error("Failed to read previous productivity score",
				zap.Int("user_id", userID),
				zap.Error(err),
			)
			failed++
			continue
		}

		completed, err := s.taskRepo.CountCompletedOn(ctx, userID, dayStart)
		if err != nil {
			s.logger.Error("Failed to count completed tasks",
				zap.Int("user_id", userID),
				zap.Error(err),
			)
			failed++
			continue
		}

		created, err := s.taskRepo.CountCreatedOn(ctx, userID, dayStart)
		if err != nil {
			s.logger.Error("Failed to count created tasks",
				zap.Int("user_id", userID),
				zap.Error(err),
			)
			failed++
			continue
		}

		m := &model.ProductivityMetrics{
			UserID:         userID,
			Date:           dayStart,
			TasksCompleted: completed,
			TasksCreated:   created,
			Score:          ProductivityScore(completed, created),
		}
		if err := s.metricsRepo.Upsert(ctx, m); err != nil {
			s.logger.Error("Failed to upsert productivity metrics",
				zap.Int("user_id", userID),
				zap.Error(err),
			)
			failed++
			continue
		}

		// Record the insight once per day, on the rollup that crosses the mark.
		if prevScore < highProductivityScore {
			if insight := productivityInsight(userID, dayStart, completed, created, m.Score); insight != nil {
				if _, err := s.insightRepo.Insert(ctx, insight); err != nil {
					s.logger.Error("Failed to insert productivity insight",
						zap.Int("user_id", userID),
						zap.Error(err),
					)
					failed++
				}
			}
		}
	}

	s.logger.Info("Productivity rollup finished",
		zap.Time("day", dayStart),
		zap.Int("users", len(userIDs)),
		zap.Int("failed", failed),
	)
	return nil
}
