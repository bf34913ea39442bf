package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smarttodos/internal/model"
	"smarttodos/internal/repository"
	"smarttodos/internal/schedule"
	"smarttodos/pkg/metrics"
)

type ScheduleService struct {
	taskRepo  *repository.TaskRepository
	blockRepo *repository.TimeBlockRepository
	logger    *zap.Logger
}

func NewScheduleService(
	taskRepo *repository.TaskRepository,
	blockRepo *repository.TimeBlockRepository,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		taskRepo:  taskRepo,
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// PlanDay builds the user's schedule for the given date from open tasks due
// that day, persists it, and returns the stored blocks. Replanning the same
// day replaces the previous schedule.
func (s *ScheduleService) PlanDay(ctx context.Context, userID int, date time.Time) ([]model.TimeBlock, error) {
	tasks, err := s.taskRepo.ListDueOn(ctx, userID, date)
	if err != nil {
		metrics.IncrementScheduleBuild("failed")
		return nil, err
	}

	blocks := schedule.BuildDayPlan(tasks, date)
	for i := range blocks {
		blocks[i].UserID = userID
	}

	if err := s.blockRepo.ReplaceForDay(ctx, userID, date, blocks); err != nil {
		metrics.IncrementScheduleBuild("failed")
		return nil, err
	}

	metrics.IncrementScheduleBuild("success")
	s.logger.Info("Day plan built",
		zap.Int("user_id", userID),
		zap.Time("date", date),
		zap.Int("tasks", len(tasks)),
		zap.Int("blocks", len(blocks)),
	)

	return s.blockRepo.ListForDay(ctx, userID, date)
}

// GetDay returns the stored schedule for a date without rebuilding it.
func (s *ScheduleService) GetDay(ctx context.Context, userID int, date time.Time) ([]model.TimeBlock, error) {
	return s.blockRepo.ListForDay(ctx, userID, date)
}
