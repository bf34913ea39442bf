package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"smarttodos/contracts/mq"
	"smarttodos/internal/ai"
	"smarttodos/internal/model"
	"smarttodos/internal/repository"
	pkgmq "smarttodos/pkg/mq"
	"smarttodos/pkg/outbox"
)

// actionableUrgency is the urgency threshold above which a context insight
// is flagged as actionable.
const actionableUrgency = 0.5

type ContextService struct {
	contextRepo *repository.ContextRepository
	insightRepo *repository.InsightRepository
	analysis    *AnalysisService
	publisher   *pkgmq.Publisher
	outboxRepo  *outbox.Repository
	logger      *zap.Logger
}

func NewContextService(
	contextRepo *repository.ContextRepository,
	insightRepo *repository.InsightRepository,
	analysis *AnalysisService,
	publisher *pkgmq.Publisher,
	outboxRepo *outbox.Repository,
	logger *zap.Logger,
) *ContextService {
	return &ContextService{
		contextRepo: contextRepo,
		insightRepo: insightRepo,
		analysis:    analysis,
		publisher:   publisher,
		outboxRepo:  outboxRepo,
		logger:      logger,
	}
}

// Create stores a new context entry and emits context.created for the
// worker. The entry is returned unprocessed.
func (s *ContextService) Create(ctx context.Context, userID int, content, source string) (*model.ContextEntry, error) {
	if content == "" {
		return nil, &ai.ValidationError{Field: "content", Message: "must not be empty"}
	}
	if !model.ValidSource(source) {
		return nil, &ai.ValidationError{Field: "source", Message: "unknown source"}
	}

	e := &model.ContextEntry{
		UserID:  userID,
		Content: content,
		Source:  source,
	}

	id, err := s.contextRepo.Insert(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id

	s.analysis.InvalidateContextCache(ctx, userID)

	payload := mq.ContextCreatedPayload{ContextEntryID: id, UserID: userID}
	if err := s.publisher.Publish(ctx, mq.RoutingKeyContextCreated, payload); err != nil {
		s.logger.Warn("Failed to publish context.created, parking in outbox",
			zap.Int("entry_id", id),
			zap.Error(err),
		)
		if parkErr := s.outboxRepo.Park(ctx, mq.RoutingKeyContextCreated, payload); parkErr != nil {
			s.logger.Error("Failed to park context.created event",
				zap.Int("entry_id", id),
				zap.Error(parkErr),
			)
		}
	}

	return e, nil
}

func (s *ContextService) ListRecent(ctx context.Context, userID, limit int) ([]model.ContextEntry, error) {
	return s.contextRepo.ListRecentByUser(ctx, userID, limit)
}

// ProcessEntry is the worker-side half of context ingestion: analyze the
// entry, store the extraction, and record an insight when there is one.
func (s *ContextService) ProcessEntry(ctx context.Context, entryID int) error {
	e, err := s.contextRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}

	insight, err := s.analysis.AnalyzeContext(e.Content, "worker")
	if err != nil {
		return err
	}

	e.ExtractedKeywords = insight.Keywords
	e.SentimentScore = insight.SentimentScore
	e.UrgencyScore = insight.UrgencyScore

	if err := s.contextRepo.UpdateAnalysis(ctx, e); err != nil {
		return err
	}

	s.analysis.InvalidateContextCache(ctx, e.UserID)

	stored := &model.Insight{
		UserID:          e.UserID,
		Kind:            model.InsightContextAnalysis,
		Title:           fmt.Sprintf("Context analysis (%s)", e.Source),
		Description:     insight.Message,
		ConfidenceScore: insight.Confidence,
		ImpactScore:     insight.UrgencyScore,
		Actionable:      insight.UrgencyScore > actionableUrgency,
	}
	if _, err := s.insightRepo.Insert(ctx, stored); err != nil {
		return err
	}

	return nil
}

func (s *ContextService) ListInsights(ctx context.Context, userID, limit int) ([]model.Insight, error) {
	return s.insightRepo.ListByUser(ctx, userID, limit)
}
