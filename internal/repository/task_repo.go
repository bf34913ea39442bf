package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"smarttodos/internal/model"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

func (r *TaskRepository) Insert(ctx context.Context, t *model.Task) (int, error) {
	r.logger.Debug("Inserting task",
		zap.Int("user_id", t.UserID),
		zap.String("title", t.Title),
		zap.String("priority", t.Priority),
	)
	query := `
        INSERT INTO tasks (user_id, category_id, title, description, priority, status,
                           deadline, estimated_duration, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query,
		t.UserID,
		t.CategoryID,
		t.Title,
		t.Description,
		t.Priority,
		t.Status,
		t.Deadline,
		t.EstimatedDuration,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Error(err),
			zap.Int("user_id", t.UserID),
		)
		return 0, err
	}
	r.logger.Info("Task inserted successfully",
		zap.Int("task_id", id),
		zap.Int("user_id", t.UserID),
	)
	return id, nil
}

const taskColumns = `
        t.id, t.user_id, t.title, t.description, t.category_id, COALESCE(c.name, ''),
        t.priority, t.status, t.deadline, t.estimated_duration, t.actual_duration,
        t.ai_priority_score, t.ai_confidence_score, t.ai_reasoning,
        t.ai_enhanced_description, t.ai_suggested_tags, t.created_at, t.updated_at
`

func scanTask(row interface{ Scan(dest ...any) error }, t *model.Task) error {
	return row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.CategoryID,
		&t.Category,
		&t.Priority,
		&t.Status,
		&t.Deadline,
		&t.EstimatedDuration,
		&t.ActualDuration,
		&t.AIPriorityScore,
		&t.AIConfidenceScore,
		&t.AIReasoning,
		&t.AIEnhancedDescription,
		&t.AISuggestedTags,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID int) (*model.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks t
        LEFT JOIN categories c ON c.id = t.category_id
        WHERE t.id = $1
    `
	var t model.Task
	if err := scanTask(r.db.QueryRow(ctx, query, taskID), &t); err != nil {
		r.logger.Error("Failed to get task",
			zap.Error(err),
			zap.Int("task_id", taskID),
		)
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int) ([]model.Task, error) {
	r.logger.Debug("Listing tasks for user", zap.Int("user_id", userID))
	query := `
        SELECT ` + taskColumns + `
        FROM tasks t
        LEFT JOIN categories c ON c.id = t.category_id
        WHERE t.user_id = $1
        ORDER BY t.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to query tasks",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := scanTask(rows, &t); err != nil {
			r.logger.Error("Failed to scan task row",
				zap.Error(err),
				zap.Int("user_id", userID),
			)
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListDueOn returns the user's open tasks whose deadline falls on the given
// day, the input set for the day scheduler.
func (r *TaskRepository) ListDueOn(ctx context.Context, userID int, day time.Time) ([]model.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks t
        LEFT JOIN categories c ON c.id = t.category_id
        WHERE t.user_id = $1
          AND t.status IN ('todo', 'in_progress')
          AND t.deadline >= $2 AND t.deadline < $3
        ORDER BY t.created_at
    `
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	rows, err := r.db.Query(ctx, query, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		r.logger.Error("Failed to query due tasks",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Time("day", dayStart),
		)
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, t *model.Task) error {
	query := `
        UPDATE tasks
        SET title = $1, description = $2, category_id = $3, priority = $4,
            status = $5, deadline = $6, estimated_duration = $7, updated_at = NOW()
        WHERE id = $8 AND user_id = $9
    `
	result, err := r.db.Exec(ctx, query,
		t.Title,
		t.Description,
		t.CategoryID,
		t.Priority,
		t.Status,
		t.Deadline,
		t.EstimatedDuration,
		t.ID,
		t.UserID,
	)
	if err != nil {
		r.logger.Error("Failed to update task",
			zap.Error(err),
			zap.Int("task_id", t.ID),
		)
		return err
	}
	r.logger.Info("Task updated",
		zap.Int("task_id", t.ID),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// UpdateAIFields writes the analysis outcome back onto the task row.
// Priority and deadline are included because a confident analysis is allowed
// to override them.
func (r *TaskRepository) UpdateAIFields(ctx context.Context, t *model.Task) error {
	query := `
        UPDATE tasks
        SET priority = $1, deadline = $2, ai_priority_score = $3,
            ai_confidence_score = $4, ai_reasoning = $5,
            ai_enhanced_description = $6, ai_suggested_tags = $7, updated_at = NOW()
        WHERE id = $8
    `
	_, err := r.db.Exec(ctx, query,
		t.Priority,
		t.Deadline,
		t.AIPriorityScore,
		t.AIConfidenceScore,
		t.AIReasoning,
		t.AIEnhancedDescription,
		t.AISuggestedTags,
		t.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update task AI fields",
			zap.Error(err),
			zap.Int("task_id", t.ID),
		)
		return err
	}
	r.logger.Info("Task AI fields updated",
		zap.Int("task_id", t.ID),
		zap.Float64("ai_priority_score", t.AIPriorityScore),
	)
	return nil
}

func (r *TaskRepository) MarkCompleted(ctx context.Context, taskID, userID int) error {
	r.logger.Debug("Marking task as completed", zap.Int("task_id", taskID))
	query := `
        UPDATE tasks
        SET status = 'completed', updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	result, err := r.db.Exec(ctx, query, taskID, userID)
	if err != nil {
		r.logger.Error("Failed to mark task as completed",
			zap.Error(err),
			zap.Int("task_id", taskID),
		)
		return err
	}
	r.logger.Info("Task marked as completed",
		zap.Int("task_id", taskID),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID, userID int) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, taskID, userID)
	if err != nil {
		r.logger.Error("Failed to delete task",
			zap.Error(err),
			zap.Int("task_id", taskID),
		)
		return err
	}
	r.logger.Info("Task deleted",
		zap.Int("task_id", taskID),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// CountCompletedOn counts tasks the user completed on the given day.
func (r *TaskRepository) CountCompletedOn(ctx context.Context, userID int, day time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM tasks
        WHERE user_id = $1 AND status = 'completed'
          AND updated_at >= $2 AND updated_at < $3
    `
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	var count int
	err := r.db.QueryRow(ctx, query, userID, dayStart, dayStart.AddDate(0, 0, 1)).Scan(&count)
	return count, err
}

// CountCreatedOn counts tasks the user created on the given day.
func (r *TaskRepository) CountCreatedOn(ctx context.Context, userID int, day time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM tasks
        WHERE user_id = $1
          AND created_at >= $2 AND created_at < $3
    `
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	var count int
	err := r.db.QueryRow(ctx, query, userID, dayStart, dayStart.AddDate(0, 0, 1)).Scan(&count)
	return count, err
}
