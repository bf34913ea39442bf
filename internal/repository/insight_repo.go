package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"smarttodos/internal/model"
)

type InsightRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInsightRepository(db *pgxpool.Pool, logger *zap.Logger) *InsightRepository {
	return &InsightRepository{db: db, logger: logger}
}

func (r *InsightRepository) Insert(ctx context.Context, in *model.Insight) (int, error) {
	query := `
        INSERT INTO insights (user_id, kind, title, description,
                              confidence_score, impact_score, actionable, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query,
		in.UserID,
		in.Kind,
		in.Title,
		in.Description,
		in.ConfidenceScore,
		in.ImpactScore,
		in.Actionable,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert insight",
			zap.Error(err),
			zap.Int("user_id", in.UserID),
			zap.String("kind", in.Kind),
		)
		return 0, err
	}
	r.logger.Info("Insight inserted",
		zap.Int("insight_id", id),
		zap.Int("user_id", in.UserID),
		zap.String("kind", in.Kind),
	)
	return id, nil
}

func (r *InsightRepository) ListByUser(ctx context.Context, userID, limit int) ([]model.Insight, error) {
	query := `
        SELECT id, user_id, kind, title, description,
               confidence_score, impact_score, actionable, created_at
        FROM insights
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.logger.Error("Failed to query insights",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, err
	}
	defer rows.Close()

	insights := []model.Insight{}
	for rows.Next() {
		var in model.Insight
		if err := rows.Scan(
			&in.ID,
			&in.UserID,
			&in.Kind,
			&in.Title,
			&in.Description,
			&in.ConfidenceScore,
			&in.ImpactScore,
			&in.Actionable,
			&in.CreatedAt,
		); err != nil {
			return nil, err
		}
		insights = append(insights, in)
	}
	return insights, rows.Err()
}
