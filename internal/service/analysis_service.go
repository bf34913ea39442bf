package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"smarttodos/internal/ai"
	"smarttodos/internal/model"
	"smarttodos/internal/repository"
	"smarttodos/pkg/metrics"
)

const recentContextCacheTTL = 10 * time.Minute

// AnalysisService fronts the pure analysis core with context loading, a
// Redis cache for the recent-context window, and metrics.
type AnalysisService struct {
	analyzer     *ai.Analyzer
	contextRepo  *repository.ContextRepository
	rdb          *redis.Client
	contextLimit int
	logger       *zap.Logger
}

func NewAnalysisService(
	analyzer *ai.Analyzer,
	contextRepo *repository.ContextRepository,
	rdb *redis.Client,
	contextLimit int,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		analyzer:     analyzer,
		contextRepo:  contextRepo,
		rdb:          rdb,
		contextLimit: contextLimit,
		logger:       logger,
	}
}

func recentContextKey(userID int) string {
	return fmt.Sprintf("ctx:recent:%d", userID)
}

// RecentContexts returns the user's newest context entries, serving from
// Redis when possible. Cache failures degrade to a DB read, never an error.
func (s *AnalysisService) RecentContexts(ctx context.Context, userID int) ([]model.ContextEntry, error) {
	key := recentContextKey(userID)

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var entries []model.ContextEntry
		if jsonErr := json.Unmarshal([]byte(cached), &entries); jsonErr == nil {
			return entries, nil
		}
		s.logger.Warn("Dropping unreadable context cache entry", zap.String("key", key))
		s.rdb.Del(ctx, key)
	}

	entries, err := s.contextRepo.ListRecentByUser(ctx, userID, s.contextLimit)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(entries); err == nil {
		if err := s.rdb.Set(ctx, key, raw, recentContextCacheTTL).Err(); err != nil {
			s.logger.Warn("Failed to cache recent contexts",
				zap.Int("user_id", userID),
				zap.Error(err),
			)
		}
	}

	return entries, nil
}

// InvalidateContextCache drops the cached window after a new entry arrives.
func (s *AnalysisService) InvalidateContextCache(ctx context.Context, userID int) {
	if err := s.rdb.Del(ctx, recentContextKey(userID)).Err(); err != nil {
		s.logger.Warn("Failed to invalidate context cache",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
	}
}

// AnalyzeTask loads the user's recent context window and runs the analysis
// pipeline over the task fields.
func (s *AnalysisService) AnalyzeTask(ctx context.Context, userID int, in ai.TaskInput, trigger string) (*model.AnalysisResult, error) {
	start := time.Now()

	contexts, err := s.RecentContexts(ctx, userID)
	if err != nil {
		s.logger.Warn("Proceeding without context entries",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		contexts = nil
	}
	in.Contexts = contexts

	result, err := s.analyzer.AnalyzeTask(in)
	if err != nil {
		return nil, err
	}

	metrics.RecordAnalysisLatency("task", time.Since(start))
	metrics.IncrementAnalysis("task", trigger)

	s.logger.Info("Task analyzed",
		zap.Int("user_id", userID),
		zap.String("priority", result.SuggestedPriority),
		zap.String("category", result.SuggestedCategory),
		zap.Float64("confidence", result.ConfidenceScore),
		zap.String("trigger", trigger),
	)
	return result, nil
}

// AnalyzeContext runs keyword, sentiment and urgency extraction over one
// piece of context text.
func (s *AnalysisService) AnalyzeContext(content, trigger string) (*model.ContextInsight, error) {
	start := time.Now()

	insight, err := s.analyzer.AnalyzeContext(content)
	if err != nil {
		return nil, err
	}

	metrics.RecordAnalysisLatency("context", time.Since(start))
	metrics.IncrementAnalysis("context", trigger)
	return insight, nil
}
