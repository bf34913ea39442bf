package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"smarttodos/internal/model"
)

type ContextRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewContextRepository(db *pgxpool.Pool, logger *zap.Logger) *ContextRepository {
	return &ContextRepository{db: db, logger: logger}
}

func (r *ContextRepository) Insert(ctx context.Context, e *model.ContextEntry) (int, error) {
	r.logger.Debug("Inserting context entry",
		zap.Int("user_id", e.UserID),
		zap.String("source", e.Source),
	)
	query := `
        INSERT INTO context_entries (user_id, content, source, processed, created_at)
        VALUES ($1, $2, $3, FALSE, NOW())
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, e.UserID, e.Content, e.Source).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert context entry",
			zap.Error(err),
			zap.Int("user_id", e.UserID),
		)
		return 0, err
	}
	r.logger.Info("Context entry inserted",
		zap.Int("entry_id", id),
		zap.Int("user_id", e.UserID),
	)
	return id, nil
}

func (r *ContextRepository) GetByID(ctx context.Context, entryID int) (*model.ContextEntry, error) {
	query := `
        SELECT id, user_id, content, source, processed,
               extracted_keywords, sentiment_score, urgency_score, created_at
        FROM context_entries
        WHERE id = $1
    `
	var e model.ContextEntry
	err := r.db.QueryRow(ctx, query, entryID).Scan(
		&e.ID,
		&e.UserID,
		&e.Content,
		&e.Source,
		&e.Processed,
		&e.ExtractedKeywords,
		&e.SentimentScore,
		&e.UrgencyScore,
		&e.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to get context entry",
			zap.Error(err),
			zap.Int("entry_id", entryID),
		)
		return nil, err
	}
	return &e, nil
}

// ListRecentByUser returns the newest entries first, at most limit of them.
func (r *ContextRepository) ListRecentByUser(ctx context.Context, userID, limit int) ([]model.ContextEntry, error) {
	query := `
        SELECT id, user_id, content, source, processed,
               extracted_keywords, sentiment_score, urgency_score, created_at
        FROM context_entries
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.logger.Error("Failed to query context entries",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, err
	}
	defer rows.Close()

	entries := []model.ContextEntry{}
	for rows.Next() {
		var e model.ContextEntry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Content,
			&e.Source,
			&e.Processed,
			&e.ExtractedKeywords,
			&e.SentimentScore,
			&e.UrgencyScore,
			&e.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan context entry row",
				zap.Error(err),
				zap.Int("user_id", userID),
			)
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpdateAnalysis writes the worker's analysis outcome and flips the
// processed flag.
func (r *ContextRepository) UpdateAnalysis(ctx context.Context, e *model.ContextEntry) error {
	query := `
        UPDATE context_entries
        SET processed = TRUE, extracted_keywords = $1,
            sentiment_score = $2, urgency_score = $3
        WHERE id = $4
    `
	result, err := r.db.Exec(ctx, query,
		e.ExtractedKeywords,
		e.SentimentScore,
		e.UrgencyScore,
		e.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update context entry analysis",
			zap.Error(err),
			zap.Int("entry_id", e.ID),
		)
		return err
	}
	r.logger.Info("Context entry analysis stored",
		zap.Int("entry_id", e.ID),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}
