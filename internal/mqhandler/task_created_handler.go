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

// QueueTaskAnalysis is the queue bound to task.created.
const QueueTaskAnalysis = "task.analysis"

type TaskCreatedHandler struct {
	taskService *service.TaskService
	deduper     *util.Deduper
	publisher   *pkgmq.Publisher
	logger      *zap.Logger
}

func NewTaskCreatedHandler(
	taskService *service.TaskService,
	deduper *util.Deduper,
	publisher *pkgmq.Publisher,
	logger *zap.Logger,
) *TaskCreatedHandler {
	return &TaskCreatedHandler{
		taskService: taskService,
		deduper:     deduper,
		publisher:   publisher,
		logger:      logger,
	}
}

// Handle analyzes a freshly created task. Returning nil acks the message;
// returning an error nacks it back onto the queue, so only retryable
// failures may propagate out. Everything else is parked in the DLQ.
func (h *TaskCreatedHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	start := time.Now()
	defer func() {
		metrics.RecordMQConsumeLatency(contracts.RoutingKeyTaskCreated, QueueTaskAnalysis, time.Since(start))
	}()

	var p contracts.TaskCreatedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal task.created payload, sending to DLQ",
			zap.Error(err),
			zap.String("raw_payload", string(raw)),
		)
		h.sendToDLQ(raw, "json_decode_error: "+err.Error())
		return nil
	}

	h.logger.Info("Processing task analysis",
		zap.Int("task_id", p.TaskID),
		zap.Int("user_id", p.UserID),
	)

	// Redis 去重：避免重复分析
	if !h.deduper.AcquireOnce(ctx, "task_analysis", p.TaskID) {
		return nil
	}

	if _, err := h.taskService.Analyze(ctx, p.TaskID, "worker"); err != nil {
		isRetryable, errType := util.IsRetryableError(err)
		h.logger.Error("Task analysis failed",
			zap.Int("task_id", p.TaskID),
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

	h.logger.Info("Task analysis stored", zap.Int("task_id", p.TaskID))
	return nil
}

func (h *TaskCreatedHandler) sendToDLQ(raw json.RawMessage, reason string) {
	if err := h.publisher.PublishToDLQ(contracts.RoutingKeyTaskCreated, raw, reason); err != nil {
		h.logger.Error("Failed to publish to DLQ",
			zap.String("routing_key", contracts.RoutingKeyTaskCreated),
			zap.Error(err),
		)
	}
}
