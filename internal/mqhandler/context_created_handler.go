package mqhandler

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	contracts "smarttodos/contracts/mq"
	"smarttodos/internal/service"
	"smarttodos/internal/util"
	"smarttodos/pkg/metrics"
	pkgmq "smarttodos/pkg/mq"
)

// QueueContextAnalysis is the queue bound to context.created.
const QueueContextAnalysis = "context.analysis"

type ContextCreatedHandler struct {
	contextService *service.ContextService
	deduper        *util.Deduper
	publisher      *pkgmq.Publisher
	logger         *zap.Logger
}

func NewContextCreatedHandler(
	contextService *service.ContextService,
	deduper *util.Deduper,
	publisher *pkgmq.Publisher,
	logger *zap.Logger,
) *ContextCreatedHandler {
	return &ContextCreatedHandler{
		contextService: contextService,
		deduper:        deduper,
		publisher:      publisher,
		logger:         logger,
	}
}

// Handle extracts keywords, sentiment and urgency from a new context entry
// and stores the resulting insight. Same ack/nack contract as the task
// handler.
func (h *ContextCreatedHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	start := time.Now()
	defer func() {
		metrics.RecordMQConsumeLatency(contracts.RoutingKeyContextCreated, QueueContextAnalysis, time.Since(start))
	}()

	var p contracts.ContextCreatedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal context.created payload, sending to DLQ",
			zap.Error(err),
			zap.String("raw_payload", string(raw)),
		)
		h.sendToDLQ(raw, "json_decode_error: "+err.Error())
		return nil
	}

	h.logger.Info("Processing context analysis",
		zap.Int("entry_id", p.ContextEntryID),
		zap.Int("user_id", p.UserID),
	)

	if !h.deduper.AcquireOnce(ctx, "context_analysis", p.ContextEntryID) {
		return nil
	}

	if err := h.contextService.ProcessEntry(ctx, p.ContextEntryID); err != nil {
		isRetryable, errType := util.IsRetryableError(err)
		h.logger.Error("Context analysis failed",
			zap.Int("entry_id", p.ContextEntryID),
			zap.String("error_type", errType),
			zap.Bool("retryable", isRetryable),
			zap.Error(err),
		)

		if !isRetryable {
			h.sendToDLQ(raw, errType+": "+err.Error())
			return nil
		}
		return err
	}

	h.logger.Info("Context analysis stored", zap.Int("entry_id", p.ContextEntryID))
	return nil
}

func (h *ContextCreatedHandler) sendToDLQ(raw json.RawMessage, reason string) {
	if err := h.publisher.PublishToDLQ(contracts.RoutingKeyContextCreated, raw, reason); err != nil {
		h.logger.Error("Failed to publish to DLQ",
			zap.String("routing_key", contracts.RoutingKeyContextCreated),
			zap.Error(err),
		)
	}
}
