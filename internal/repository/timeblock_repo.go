package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"smarttodos/internal/model"
)

type TimeBlockRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTimeBlockRepository(db *pgxpool.Pool, logger *zap.Logger) *TimeBlockRepository {
	return &TimeBlockRepository{db: db, logger: logger}
}

// ReplaceForDay swaps the user's schedule for one day atomically: the old
// blocks are removed and the new plan inserted in a single transaction, so
// readers never observe a half-built schedule.
func (r *TimeBlockRepository) ReplaceForDay(ctx context.Context, userID int, day time.Time, blocks []model.TimeBlock) error {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.Error("Failed to begin schedule transaction",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return err
	}
	defer tx.Rollback(ctx)

	deleteQuery := `
        DELETE FROM time_blocks
        WHERE user_id = $1 AND start_time >= $2 AND start_time < $3
    `
	if _, err := tx.Exec(ctx, deleteQuery, userID, dayStart, dayEnd); err != nil {
		r.logger.Error("Failed to clear day schedule",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Time("day", dayStart),
		)
		return err
	}

	insertQuery := `
        INSERT INTO time_blocks (user_id, title, start_time, end_time, kind, task_id)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	for _, b := range blocks {
		if _, err := tx.Exec(ctx, insertQuery,
			userID, b.Title, b.StartTime, b.EndTime, b.Kind, b.TaskID,
		); err != nil {
			r.logger.Error("Failed to insert time block",
				zap.Error(err),
				zap.Int("user_id", userID),
				zap.String("title", b.Title),
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit schedule transaction",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return err
	}

	r.logger.Info("Day schedule replaced",
		zap.Int("user_id", userID),
		zap.Time("day", dayStart),
		zap.Int("blocks", len(blocks)),
	)
	return nil
}

func (r *TimeBlockRepository) ListForDay(ctx context.Context, userID int, day time.Time) ([]model.TimeBlock, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	query := `
        SELECT id, user_id, title, start_time, end_time, kind, task_id
        FROM time_blocks
        WHERE user_id = $1 AND start_time >= $2 AND start_time < $3
        ORDER BY start_time
    `
	rows, err := r.db.Query(ctx, query, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		r.logger.Error("Failed to query time blocks",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Time("day", dayStart),
		)
		return nil, err
	}
	defer rows.Close()

	blocks := []model.TimeBlock{}
	for rows.Next() {
		var b model.TimeBlock
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Title,
			&b.StartTime,
			&b.EndTime,
			&b.Kind,
			&b.TaskID,
		); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}
