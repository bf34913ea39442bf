package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smarttodos/contracts/mq"
	"smarttodos/internal/ai"
	"smarttodos/internal/model"
	"smarttodos/internal/repository"
	pkgmq "smarttodos/pkg/mq"
	"smarttodos/pkg/outbox"
)

// CreateTaskInput is the user-supplied portion of a new task.
type CreateTaskInput struct {
	Title             string
	Description       string
	Category          string
	Priority          string
	Deadline          *time.Time
	EstimatedDuration int
}

type TaskService struct {
	taskRepo           *repository.TaskRepository
	categoryRepo       *repository.CategoryRepository
	analysis           *AnalysisService
	publisher          *pkgmq.Publisher
	outboxRepo         *outbox.Repository
	overrideConfidence float64
	logger             *zap.Logger
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	categoryRepo *repository.CategoryRepository,
	analysis *AnalysisService,
	publisher *pkgmq.Publisher,
	outboxRepo *outbox.Repository,
	overrideConfidence float64,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:           taskRepo,
		categoryRepo:       categoryRepo,
		analysis:           analysis,
		publisher:          publisher,
		outboxRepo:         outboxRepo,
		overrideConfidence: overrideConfidence,
		logger:             logger,
	}
}

// Create stores a new task and emits a task.created event so the worker can
// analyze it asynchronously. The task is returned immediately with its AI
// fields still empty.
func (s *TaskService) Create(ctx context.Context, userID int, in CreateTaskInput) (*model.Task, error) {
	if in.Title == "" {
		return nil, &ai.ValidationError{Field: "title", Message: "must not be empty"}
	}

	priority := in.Priority
	if !model.ValidPriority(priority) {
		priority = model.PriorityMedium
	}

	duration := in.EstimatedDuration
	if duration <= 0 {
		duration = model.DefaultEstimatedDuration
	}

	t := &model.Task{
		UserID:            userID,
		Title:             in.Title,
		Description:       in.Description,
		Priority:          priority,
		Status:            model.StatusTodo,
		Deadline:          in.Deadline,
		EstimatedDuration: duration,
	}

	if in.Category != "" {
		cat, err := s.categoryRepo.GetOrCreate(ctx, userID, in.Category)
		if err != nil {
			return nil, err
		}
		t.CategoryID = &cat.ID
		t.Category = cat.Name
		if err := s.categoryRepo.IncrementUsage(ctx, cat.ID); err != nil {
			s.logger.Warn("Failed to bump category usage",
				zap.Int("category_id", cat.ID),
				zap.Error(err),
			)
		}
	}

	id, err := s.taskRepo.Insert(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id

	s.publishTaskCreated(ctx, t)
	return t, nil
}

// publishTaskCreated emits the event. A broker outage must not fail the
// create request, so a failed publish parks the event in the outbox for the
// dispatcher to retry.
func (s *TaskService) publishTaskCreated(ctx context.Context, t *model.Task) {
	payload := mq.TaskCreatedPayload{TaskID: t.ID, UserID: t.UserID}
	if err := s.publisher.Publish(ctx, mq.RoutingKeyTaskCreated, payload); err != nil {
		s.logger.Warn("Failed to publish task.created, parking in outbox",
			zap.Int("task_id", t.ID),
			zap.Error(err),
		)
		if parkErr := s.outboxRepo.Park(ctx, mq.RoutingKeyTaskCreated, payload); parkErr != nil {
			s.logger.Error("Failed to park task.created event",
				zap.Int("task_id", t.ID),
				zap.Error(parkErr),
			)
		}
		return
	}
	s.logger.Info("Published task.created", zap.Int("task_id", t.ID))
}

func (s *TaskService) Get(ctx context.Context, taskID, userID int) (*model.Task, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, ErrNotOwner
	}
	return t, nil
}

func (s *TaskService) List(ctx context.Context, userID int) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

func (s *TaskService) Update(ctx context.Context, userID int, t *model.Task) error {
	t.UserID = userID
	return s.taskRepo.Update(ctx, t)
}

func (s *TaskService) Complete(ctx context.Context, taskID, userID int) error {
	return s.taskRepo.MarkCompleted(ctx, taskID, userID)
}

func (s *TaskService) Delete(ctx context.Context, taskID, userID int) error {
	return s.taskRepo.Delete(ctx, taskID, userID)
}

// Analyze runs the analysis pipeline for a stored task and writes the
// outcome back. Suggested priority and deadline only override what the user
// set when the analysis is confident enough; the other AI fields are always
// stored.
func (s *TaskService) Analyze(ctx context.Context, taskID int, trigger string) (*model.Task, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	mostUsed, err := s.categoryRepo.MostUsedName(ctx, t.UserID)
	if err != nil {
		s.logger.Warn("Proceeding without most-used category",
			zap.Int("user_id", t.UserID),
			zap.Error(err),
		)
	}

	result, err := s.analysis.AnalyzeTask(ctx, t.UserID, ai.TaskInput{
		Title:            t.Title,
		Description:      t.Description,
		Category:         t.Category,
		Priority:         t.Priority,
		FallbackCategory: mostUsed,
	}, trigger)
	if err != nil {
		return nil, err
	}

	t.AIPriorityScore = result.AIPriorityScore
	t.AIConfidenceScore = result.ConfidenceScore
	t.AIReasoning = result.Reasoning
	t.AIEnhancedDescription = result.EnhancedDescription
	t.AISuggestedTags = result.SuggestedTags

	if result.ConfidenceScore > s.overrideConfidence {
		t.Priority = result.SuggestedPriority
	}
	if t.Deadline == nil {
		t.Deadline = result.SuggestedDeadline
	}

	// A task created without a category adopts the suggested one.
	if result.SuggestedCategory != "" && t.CategoryID == nil {
		cat, catErr := s.categoryRepo.GetOrCreate(ctx, t.UserID, result.SuggestedCategory)
		if catErr != nil {
			s.logger.Warn("Failed to resolve suggested category",
				zap.Int("task_id", t.ID),
				zap.String("category", result.SuggestedCategory),
				zap.Error(catErr),
			)
		} else {
			t.CategoryID = &cat.ID
			t.Category = cat.Name
			if err := s.taskRepo.Update(ctx, t); err != nil {
				return nil, err
			}
		}
	}

	if err := s.taskRepo.UpdateAIFields(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}
