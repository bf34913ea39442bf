package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"smarttodos/internal/model"
)

type MetricsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewMetricsRepository(db *pgxpool.Pool, logger *zap.Logger) *MetricsRepository {
	return &MetricsRepository{db: db, logger: logger}
}

// GetScore returns the stored score for one user and day, 0 when no rollup
// has run yet.
func (r *MetricsRepository) GetScore(ctx context.Context, userID int, date time.Time) (float64, error) {
	var score float64
	err := r.db.QueryRow(ctx, `
        SELECT score FROM productivity_metrics WHERE user_id = $1 AND date = $2
    `, userID, date).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		r.logger.Error("Failed to get productivity score",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Time("date", date),
		)
		return 0, err
	}
	return score, nil
}

// Upsert writes one user's daily rollup; reruns overwrite the same row so
// the job stays idempotent.
func (r *MetricsRepository) Upsert(ctx context.Context, m *model.ProductivityMetrics) error {
	query := `
        INSERT INTO productivity_metrics (user_id, date, tasks_completed, tasks_created, score)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id, date) DO UPDATE
        SET tasks_completed = EXCLUDED.tasks_completed,
            tasks_created = EXCLUDED.tasks_created,
            score = EXCLUDED.score
    `
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Date,
		m.TasksCompleted,
		m.TasksCreated,
		m.Score,
	)
	if err != nil {
		r.logger.Error("Failed to upsert productivity metrics",
			zap.Error(err),
			zap.Int("user_id", m.UserID),
			zap.Time("date", m.Date),
		)
		return err
	}
	r.logger.Debug("Productivity metrics upserted",
		zap.Int("user_id", m.UserID),
		zap.Time("date", m.Date),
		zap.Float64("score", m.Score),
	)
	return nil
}
