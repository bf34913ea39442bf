package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"smarttodos/internal/model"
)

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{db: db, logger: logger}
}

// GetOrCreate resolves a category by name for the user, creating it on
// first use. The upsert keeps concurrent creates from racing.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, userID int, name string) (*model.Category, error) {
	query := `
        INSERT INTO categories (user_id, name, color, usage_count, created_at)
        VALUES ($1, $2, '#808080', 0, NOW())
        ON CONFLICT (user_id, name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id, user_id, name, color, usage_count, created_at
    `
	var c model.Category
	err := r.db.QueryRow(ctx, query, userID, name).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Color, &c.UsageCount, &c.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to get or create category",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.String("name", name),
		)
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) IncrementUsage(ctx context.Context, categoryID int) error {
	query := `UPDATE categories SET usage_count = usage_count + 1 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, categoryID)
	if err != nil {
		r.logger.Error("Failed to increment category usage",
			zap.Error(err),
			zap.Int("category_id", categoryID),
		)
	}
	return err
}

// MostUsedName returns the user's most-used category name, or "" when the
// user has no categories yet.
func (r *CategoryRepository) MostUsedName(ctx context.Context, userID int) (string, error) {
	query := `
        SELECT name
        FROM categories
        WHERE user_id = $1
        ORDER BY usage_count DESC, id
        LIMIT 1
    `
	var name string
	err := r.db.QueryRow(ctx, query, userID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.logger.Error("Failed to query most used category",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return "", err
	}
	return name, nil
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID int) ([]model.Category, error) {
	query := `
        SELECT id, user_id, name, color, usage_count, created_at
        FROM categories
        WHERE user_id = $1
        ORDER BY usage_count DESC, name
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to query categories",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, err
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.UsageCount, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
